package models

// DailyLog is the per-calendar-date summary derived from that day's feed,
// sleep, and diaper events. Note and SymptomsTags are the only user-entered
// fields; the aggregator preserves them across recomputation.
type DailyLog struct {
	Date         string   `json:"date"` // YYYY-MM-DD, natural key
	MilkTimes    int      `json:"milkTimes"`
	MilkTotalMl  int      `json:"milkTotalMl"`
	PoopTimes    int      `json:"poopTimes"`
	PeeTimes     int      `json:"peeTimes"`
	SleepHours   float64  `json:"sleepHours"` // one decimal place
	Note         string   `json:"note"`
	SymptomsTags []string `json:"symptomsTags"`
}
