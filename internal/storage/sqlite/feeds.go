package sqlite

import (
	"database/sql"
	"errors"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
)

func (s *Store) AddFeedEvent(f models.FeedEvent) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO feed_events (datetime, type, amount_ml, duration_min, side, spit_up, burp_ok, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		f.Datetime, f.Type, nullableInt(f.AmountMl), nullableInt(f.DurationMin), f.Side, f.SpitUp, f.BurpOk, f.Note)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, s.publish(bus.FeedEvents, f.Date())
}

func (s *Store) GetFeedEvent(id int64) (models.FeedEvent, error) {
	row := s.db.QueryRow(`
		SELECT id, datetime, type, amount_ml, duration_min, side, spit_up, burp_ok, note
		FROM feed_events WHERE id = ?`, id)
	return scanFeedEvent(row)
}

// UpdateFeedEvent replaces the record by id. The dates of both the previous
// and the new timestamp are published, so moving a feed across days resyncs
// the day it left as well.
func (s *Store) UpdateFeedEvent(f models.FeedEvent) error {
	prev, err := s.GetFeedEvent(f.ID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE feed_events
		SET datetime = ?, type = ?, amount_ml = ?, duration_min = ?, side = ?, spit_up = ?, burp_ok = ?, note = ?
		WHERE id = ?`,
		f.Datetime, f.Type, nullableInt(f.AmountMl), nullableInt(f.DurationMin), f.Side, f.SpitUp, f.BurpOk, f.Note, f.ID)
	if err != nil {
		return err
	}
	return s.publish(bus.FeedEvents, prev.Date(), f.Date())
}

// DeleteFeedEvent is a no-op when the id is absent.
func (s *Store) DeleteFeedEvent(id int64) error {
	prev, err := s.GetFeedEvent(id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM feed_events WHERE id = ?", id); err != nil {
		return err
	}
	return s.publish(bus.FeedEvents, prev.Date())
}

// GetFeedEventsForDate matches events by the date prefix of their timestamp.
func (s *Store) GetFeedEventsForDate(date string) ([]models.FeedEvent, error) {
	return s.queryFeedEvents("WHERE datetime LIKE ? || '%' ORDER BY datetime", date)
}

func (s *Store) GetAllFeedEvents() ([]models.FeedEvent, error) {
	return s.queryFeedEvents("ORDER BY id")
}

func (s *Store) queryFeedEvents(clause string, args ...any) ([]models.FeedEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, datetime, type, amount_ml, duration_min, side, spit_up, burp_ok, note
		FROM feed_events `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feeds []models.FeedEvent
	for rows.Next() {
		f, err := scanFeedEvent(rows)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, f)
	}
	return feeds, rows.Err()
}

func scanFeedEvent(row rowScanner) (models.FeedEvent, error) {
	var f models.FeedEvent
	var amount, duration sql.NullInt64
	err := row.Scan(&f.ID, &f.Datetime, &f.Type, &amount, &duration, &f.Side, &f.SpitUp, &f.BurpOk, &f.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FeedEvent{}, ErrNotFound
	}
	if err != nil {
		return models.FeedEvent{}, err
	}
	if amount.Valid {
		v := int(amount.Int64)
		f.AmountMl = &v
	}
	if duration.Valid {
		v := int(duration.Int64)
		f.DurationMin = &v
	}
	return f, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
