package models

// GrowthRecord is a dated set of measurements. At least one measurement is
// required by the input form, not by the store.
type GrowthRecord struct {
	ID       int64    `json:"id"`
	Date     string   `json:"date"` // YYYY-MM-DD
	WeightKg *float64 `json:"weightKg,omitempty"`
	HeightCm *float64 `json:"heightCm,omitempty"`
	HeadCm   *float64 `json:"headCm,omitempty"`
	Note     string   `json:"note"`
}

// VaccineRecord is a single vaccination with any observed reaction.
type VaccineRecord struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Name     string `json:"name"`
	Reaction string `json:"reaction"`
	Note     string `json:"note"`
}

// Milestone marks a developmental first (rolled over, first word, ...).
type Milestone struct {
	ID          int64    `json:"id"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
