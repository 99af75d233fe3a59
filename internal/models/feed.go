package models

type FeedType string

const (
	FeedBreast  FeedType = "breast"
	FeedFormula FeedType = "formula"
	FeedMixed   FeedType = "mixed"
)

type FeedSide string

const (
	SideLeft  FeedSide = "left"
	SideRight FeedSide = "right"
	SideBoth  FeedSide = "both"
	SideNone  FeedSide = "none"
)

// FeedEvent is a single feeding. AmountMl and DurationMin are optional;
// an absent amount counts as 0 ml toward the daily total.
type FeedEvent struct {
	ID          int64    `json:"id"`
	Datetime    string   `json:"datetime"` // YYYY-MM-DDTHH:MM
	Type        FeedType `json:"type"`
	AmountMl    *int     `json:"amountMl,omitempty"`
	DurationMin *int     `json:"durationMin,omitempty"`
	Side        FeedSide `json:"side"`
	SpitUp      bool     `json:"spitUp"`
	BurpOk      bool     `json:"burpOk"`
	Note        string   `json:"note"`
}

// Date returns the calendar date this feed falls on.
func (f FeedEvent) Date() string {
	return datePrefix(f.Datetime)
}

// datePrefix extracts the YYYY-MM-DD prefix of an event timestamp.
func datePrefix(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}
