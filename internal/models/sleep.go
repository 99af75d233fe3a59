package models

import (
	"time"

	"github.com/babylog/babylog/internal/constants"
)

type SleepPlace string

const (
	PlaceCrib     SleepPlace = "crib"
	PlaceHeld     SleepPlace = "held"
	PlaceStroller SleepPlace = "stroller"
	PlaceOther    SleepPlace = "other"
)

type SleepMethod string

const (
	MethodFedToSleep  SleepMethod = "fed-to-sleep"
	MethodHeldToSleep SleepMethod = "held-to-sleep"
	MethodSelfSoothed SleepMethod = "self-soothed"
	MethodOther       SleepMethod = "other"
)

// SleepEvent is one sleep interval. End is never earlier than Start (input
// validation at the CLI boundary). The interval may cross midnight and then
// contributes to both calendar dates it touches.
type SleepEvent struct {
	ID     int64       `json:"id"`
	Start  string      `json:"start"` // YYYY-MM-DDTHH:MM
	End    string      `json:"end"`
	Place  SleepPlace  `json:"place"`
	Method SleepMethod `json:"method"`
	Note   string      `json:"note"`
}

// DatesTouched returns every calendar date the interval overlaps, in order
// from the start date to the end date inclusive.
func (s SleepEvent) DatesTouched() []string {
	startDay := datePrefix(s.Start)
	endDay := datePrefix(s.End)

	start, err := time.Parse(constants.DateFormat, startDay)
	if err != nil {
		return []string{startDay}
	}
	end, err := time.Parse(constants.DateFormat, endDay)
	if err != nil || end.Before(start) {
		return []string{startDay}
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constants.DateFormat))
	}
	return dates
}
