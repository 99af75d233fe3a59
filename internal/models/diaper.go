package models

type DiaperKind string

const (
	DiaperStool DiaperKind = "stool"
	DiaperUrine DiaperKind = "urine"
)

type StoolTexture string

const (
	TextureWatery StoolTexture = "watery"
	TextureMushy  StoolTexture = "mushy"
	TextureFormed StoolTexture = "formed"
	TextureHard   StoolTexture = "hard"
)

type StoolColor string

const (
	ColorYellow StoolColor = "yellow"
	ColorGreen  StoolColor = "green"
	ColorBlack  StoolColor = "black"
	ColorRed    StoolColor = "red"
)

// DiaperEvent is one diaper change. PoopTexture and PoopColor are only
// meaningful for stool changes and stay nil for urine-only ones.
type DiaperEvent struct {
	ID          int64         `json:"id"`
	Datetime    string        `json:"datetime"` // YYYY-MM-DDTHH:MM
	Kind        DiaperKind    `json:"kind"`
	PoopTexture *StoolTexture `json:"poopTexture,omitempty"`
	PoopColor   *StoolColor   `json:"poopColor,omitempty"`
	Note        string        `json:"note"`
}

// Date returns the calendar date this change falls on.
func (d DiaperEvent) Date() string {
	return datePrefix(d.Datetime)
}
