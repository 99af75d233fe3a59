package models

// JournalEntry is a structured free-text note: the situation, what was
// tried, how it went, and what to try next time.
type JournalEntry struct {
	ID       int64    `json:"id"`
	Datetime string   `json:"datetime"` // YYYY-MM-DDTHH:MM
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Context  string   `json:"context"`
	Action   string   `json:"action"`
	Result   string   `json:"result"`
	Next     string   `json:"next"`
	Mood     string   `json:"mood,omitempty"`
}

// Date returns the calendar date this entry falls on.
func (j JournalEntry) Date() string {
	return datePrefix(j.Datetime)
}
