package models

import (
	"reflect"
	"testing"
)

func TestDatesTouched(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "single day",
			start: "2024-03-01T13:00",
			end:   "2024-03-01T15:00",
			want:  []string{"2024-03-01"},
		},
		{
			name:  "crosses midnight",
			start: "2024-03-01T23:00",
			end:   "2024-03-02T01:00",
			want:  []string{"2024-03-01", "2024-03-02"},
		},
		{
			name:  "spans three days",
			start: "2024-02-28T22:00",
			end:   "2024-03-01T06:00",
			want:  []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name:  "ends exactly at midnight",
			start: "2024-03-01T22:00",
			end:   "2024-03-02T00:00",
			want:  []string{"2024-03-01", "2024-03-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := SleepEvent{Start: tt.start, End: tt.end}
			if got := ev.DatesTouched(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DatesTouched() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventDateDerivation(t *testing.T) {
	if got := (FeedEvent{Datetime: "2024-03-01T09:30"}).Date(); got != "2024-03-01" {
		t.Errorf("FeedEvent.Date() = %s", got)
	}
	if got := (DiaperEvent{Datetime: "2024-03-01T08:00"}).Date(); got != "2024-03-01" {
		t.Errorf("DiaperEvent.Date() = %s", got)
	}
	if got := (JournalEntry{Datetime: "2024-03-01T21:00"}).Date(); got != "2024-03-01" {
		t.Errorf("JournalEntry.Date() = %s", got)
	}
}
