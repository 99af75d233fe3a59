package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Profile is the baby being tracked. The store permits multiple rows but the
// application works against the first one (upsert in place).
type Profile struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname,omitempty"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
	BirthTime string `json:"birthTime,omitempty"` // HH:MM
	Gender    Gender `json:"gender,omitempty"`
	Photo     string `json:"photo,omitempty"` // data URI or file path
}
