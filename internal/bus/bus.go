// Package bus carries change notifications from the entity store to
// interested consumers. The daily aggregator subscribes to raw-event
// collections so every committed feed/sleep/diaper write is followed by a
// resync of the touched dates, without each mutation site calling the
// aggregator itself.
package bus

import (
	"errors"
	"sync"
)

// Collection names match the backup document keys.
type Collection string

const (
	Profiles       Collection = "profiles"
	DailyLogs      Collection = "dailyLogs"
	FeedEvents     Collection = "feedEvents"
	SleepEvents    Collection = "sleepEvents"
	DiaperEvents   Collection = "diaperEvents"
	GrowthRecords  Collection = "growthRecords"
	VaccineRecords Collection = "vaccineRecords"
	Milestones     Collection = "milestones"
	JournalEntries Collection = "journalEntries"
)

// Event is published after a write to Collection has been committed.
// Dates lists every calendar date the write touched (both the old and new
// interval's dates for an edit).
type Event struct {
	Collection Collection
	Dates      []string
}

// Handler consumes an event. A returned error propagates to the publisher,
// so a failed resync surfaces to whoever performed the triggering write.
type Handler func(Event) error

// Bus dispatches events synchronously, in subscription order, on the
// publisher's goroutine. A subscriber therefore always observes the
// committed write that triggered the event.
type Bus struct {
	mu   sync.Mutex
	subs map[Collection][]Handler
}

func New() *Bus {
	return &Bus{subs: make(map[Collection][]Handler)}
}

// Subscribe registers fn for every event published to the given collections.
func (b *Bus) Subscribe(fn Handler, collections ...Collection) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range collections {
		b.subs[c] = append(b.subs[c], fn)
	}
}

// Publish delivers e to every subscriber of its collection. All handlers
// run even when one fails; their errors are joined.
func (b *Bus) Publish(e Event) error {
	b.mu.Lock()
	subs := append([]Handler{}, b.subs[e.Collection]...)
	b.mu.Unlock()

	var errs []error
	for _, fn := range subs {
		if err := fn(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Watch runs query immediately and again after every event published to
// collection, handing each result to fn. This is the live-query contract
// consumed by summary views.
func Watch[T any](b *Bus, collection Collection, query func() (T, error), fn func(T, error)) {
	fn(query())
	b.Subscribe(func(Event) error {
		fn(query())
		return nil
	}, collection)
}
