package utils

import (
	"fmt"
	"time"

	"github.com/babylog/babylog/internal/constants"
)

// ParseTimestamp parses an event timestamp. Minute precision is the stored
// form; seconds and RFC3339 are accepted on input.
func ParseTimestamp(ts string) (time.Time, error) {
	for _, layout := range []string{
		constants.TimestampFormat,
		constants.TimestampSecondsFormat,
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (expected YYYY-MM-DDTHH:MM)", ts)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return TodayIn(time.Local)
}

// TodayIn returns today's date string in the given location.
func TodayIn(loc *time.Location) string {
	return time.Now().In(loc).Format(constants.DateFormat)
}

// NowStamp returns the current local time as an event timestamp.
func NowStamp() string {
	return NowStampIn(time.Local)
}

// NowStampIn returns the current time in the given location as an event
// timestamp.
func NowStampIn(loc *time.Location) string {
	return time.Now().In(loc).Format(constants.TimestampFormat)
}

// ValidDate reports whether the string is a well-formed calendar date.
func ValidDate(date string) bool {
	_, err := ParseDate(date)
	return err == nil
}

// ValidTimestamp reports whether the string is a well-formed event timestamp.
func ValidTimestamp(ts string) bool {
	_, err := ParseTimestamp(ts)
	return err == nil
}

// DayWindow returns the [00:00:00, 23:59:59] bounds of a calendar date,
// the window sleep intervals are clipped to.
func DayWindow(date string) (start, end time.Time, err error) {
	start, err = time.Parse(constants.TimestampSecondsFormat, date+"T00:00:00")
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	end, err = time.Parse(constants.TimestampSecondsFormat, date+"T23:59:59")
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return start, end, nil
}
