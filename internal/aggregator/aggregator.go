// Package aggregator keeps each daily log consistent with the raw feed,
// sleep, and diaper events of its calendar date.
package aggregator

import (
	"errors"
	"fmt"
	"math"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage"
	"github.com/babylog/babylog/internal/utils"
)

type Aggregator struct {
	store storage.Provider
}

func New(store storage.Provider) *Aggregator {
	return &Aggregator{store: store}
}

// Subscribe registers the aggregator for raw-event change notifications, so
// every committed feed/sleep/diaper write resyncs the dates it touched.
func (a *Aggregator) Subscribe(b *bus.Bus) {
	b.Subscribe(a.onEvent, bus.FeedEvents, bus.SleepEvents, bus.DiaperEvents)
}

func (a *Aggregator) onEvent(e bus.Event) error {
	for _, date := range e.Dates {
		if err := a.Resync(date); err != nil {
			return fmt.Errorf("failed to resync daily log for %s: %w", date, err)
		}
	}
	return nil
}

// Resync recomputes the daily log for date from that day's raw events.
// The existing log's note and symptom tags are user-entered and carried
// over; everything else is derived. A date with no events at all still
// produces a zero-valued log once resynced.
func (a *Aggregator) Resync(date string) error {
	feeds, err := a.store.GetFeedEventsForDate(date)
	if err != nil {
		return err
	}
	diapers, err := a.store.GetDiaperEventsForDate(date)
	if err != nil {
		return err
	}
	sleeps, err := a.store.GetSleepEventsOverlapping(date)
	if err != nil {
		return err
	}

	milkTotal := 0
	for _, f := range feeds {
		if f.AmountMl != nil {
			milkTotal += *f.AmountMl
		}
	}

	poops, pees := 0, 0
	for _, d := range diapers {
		switch d.Kind {
		case models.DiaperStool:
			poops++
		case models.DiaperUrine:
			pees++
		}
	}

	sleepHours, err := sleepHoursOn(date, sleeps)
	if err != nil {
		return err
	}

	log := models.DailyLog{
		Date:         date,
		MilkTimes:    len(feeds),
		MilkTotalMl:  milkTotal,
		PoopTimes:    poops,
		PeeTimes:     pees,
		SleepHours:   sleepHours,
		Note:         "",
		SymptomsTags: []string{},
	}

	existing, err := a.store.GetDailyLog(date)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if err == nil {
		log.Note = existing.Note
		log.SymptomsTags = existing.SymptomsTags
	}

	return a.store.PutDailyLog(log)
}

// Rebuild resyncs every date that has at least one raw event. Used by
// doctor to repair drifted aggregates.
func (a *Aggregator) Rebuild() (int, error) {
	dates, err := a.store.EventDates()
	if err != nil {
		return 0, err
	}
	for i, date := range dates {
		if err := a.Resync(date); err != nil {
			return i, err
		}
	}
	return len(dates), nil
}

// sleepHoursOn clips every interval to the date's [00:00:00, 23:59:59]
// window, sums the clipped durations in milliseconds, and rounds the total
// to one decimal place, half away from zero. Non-overlapping clips
// contribute zero.
func sleepHoursOn(date string, sleeps []models.SleepEvent) (float64, error) {
	dayStart, dayEnd, err := utils.DayWindow(date)
	if err != nil {
		return 0, err
	}

	var totalMs int64
	for _, ev := range sleeps {
		start, err := utils.ParseTimestamp(ev.Start)
		if err != nil {
			return 0, fmt.Errorf("sleep event %d: %w", ev.ID, err)
		}
		end, err := utils.ParseTimestamp(ev.End)
		if err != nil {
			return 0, fmt.Errorf("sleep event %d: %w", ev.ID, err)
		}

		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}
		if ms := end.Sub(start).Milliseconds(); ms > 0 {
			totalMs += ms
		}
	}

	hours := float64(totalMs) / 3_600_000
	return math.Round(hours*10) / 10, nil
}
