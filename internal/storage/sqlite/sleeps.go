package sqlite

import (
	"database/sql"
	"errors"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
)

func (s *Store) AddSleepEvent(ev models.SleepEvent) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO sleep_events (start_at, end_at, place, method, note)
		VALUES (?, ?, ?, ?, ?)`,
		ev.Start, ev.End, ev.Place, ev.Method, ev.Note)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, s.publish(bus.SleepEvents, ev.DatesTouched()...)
}

func (s *Store) GetSleepEvent(id int64) (models.SleepEvent, error) {
	row := s.db.QueryRow(`
		SELECT id, start_at, end_at, place, method, note
		FROM sleep_events WHERE id = ?`, id)
	return scanSleepEvent(row)
}

// UpdateSleepEvent replaces the record by id. Every date touched by the old
// or the new interval is published, so a midnight-spanning edit leaves no
// stale aggregate behind.
func (s *Store) UpdateSleepEvent(ev models.SleepEvent) error {
	prev, err := s.GetSleepEvent(ev.ID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE sleep_events SET start_at = ?, end_at = ?, place = ?, method = ?, note = ?
		WHERE id = ?`,
		ev.Start, ev.End, ev.Place, ev.Method, ev.Note, ev.ID)
	if err != nil {
		return err
	}
	return s.publish(bus.SleepEvents, append(prev.DatesTouched(), ev.DatesTouched()...)...)
}

// DeleteSleepEvent is a no-op when the id is absent.
func (s *Store) DeleteSleepEvent(id int64) error {
	prev, err := s.GetSleepEvent(id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM sleep_events WHERE id = ?", id); err != nil {
		return err
	}
	return s.publish(bus.SleepEvents, prev.DatesTouched()...)
}

// GetSleepEventsOverlapping selects intervals with start.date <= date <=
// end.date, so a sleep straddling midnight shows up on both days.
func (s *Store) GetSleepEventsOverlapping(date string) ([]models.SleepEvent, error) {
	return s.querySleepEvents(
		"WHERE substr(start_at, 1, 10) <= ? AND substr(end_at, 1, 10) >= ? ORDER BY start_at",
		date, date)
}

func (s *Store) GetAllSleepEvents() ([]models.SleepEvent, error) {
	return s.querySleepEvents("ORDER BY id")
}

func (s *Store) querySleepEvents(clause string, args ...any) ([]models.SleepEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, start_at, end_at, place, method, note
		FROM sleep_events `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sleeps []models.SleepEvent
	for rows.Next() {
		ev, err := scanSleepEvent(rows)
		if err != nil {
			return nil, err
		}
		sleeps = append(sleeps, ev)
	}
	return sleeps, rows.Err()
}

func scanSleepEvent(row rowScanner) (models.SleepEvent, error) {
	var ev models.SleepEvent
	err := row.Scan(&ev.ID, &ev.Start, &ev.End, &ev.Place, &ev.Method, &ev.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SleepEvent{}, ErrNotFound
	}
	if err != nil {
		return models.SleepEvent{}, err
	}
	return ev, nil
}
