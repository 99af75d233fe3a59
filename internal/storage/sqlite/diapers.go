package sqlite

import (
	"database/sql"
	"errors"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
)

func (s *Store) AddDiaperEvent(d models.DiaperEvent) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO diaper_events (datetime, kind, poop_texture, poop_color, note)
		VALUES (?, ?, ?, ?, ?)`,
		d.Datetime, d.Kind, nullableTexture(d.PoopTexture), nullableColor(d.PoopColor), d.Note)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, s.publish(bus.DiaperEvents, d.Date())
}

func (s *Store) GetDiaperEvent(id int64) (models.DiaperEvent, error) {
	row := s.db.QueryRow(`
		SELECT id, datetime, kind, poop_texture, poop_color, note
		FROM diaper_events WHERE id = ?`, id)
	return scanDiaperEvent(row)
}

func (s *Store) UpdateDiaperEvent(d models.DiaperEvent) error {
	prev, err := s.GetDiaperEvent(d.ID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE diaper_events SET datetime = ?, kind = ?, poop_texture = ?, poop_color = ?, note = ?
		WHERE id = ?`,
		d.Datetime, d.Kind, nullableTexture(d.PoopTexture), nullableColor(d.PoopColor), d.Note, d.ID)
	if err != nil {
		return err
	}
	return s.publish(bus.DiaperEvents, prev.Date(), d.Date())
}

// DeleteDiaperEvent is a no-op when the id is absent.
func (s *Store) DeleteDiaperEvent(id int64) error {
	prev, err := s.GetDiaperEvent(id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM diaper_events WHERE id = ?", id); err != nil {
		return err
	}
	return s.publish(bus.DiaperEvents, prev.Date())
}

// GetDiaperEventsForDate matches events by the date prefix of their timestamp.
func (s *Store) GetDiaperEventsForDate(date string) ([]models.DiaperEvent, error) {
	return s.queryDiaperEvents("WHERE datetime LIKE ? || '%' ORDER BY datetime", date)
}

func (s *Store) GetAllDiaperEvents() ([]models.DiaperEvent, error) {
	return s.queryDiaperEvents("ORDER BY id")
}

func (s *Store) queryDiaperEvents(clause string, args ...any) ([]models.DiaperEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, datetime, kind, poop_texture, poop_color, note
		FROM diaper_events `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diapers []models.DiaperEvent
	for rows.Next() {
		d, err := scanDiaperEvent(rows)
		if err != nil {
			return nil, err
		}
		diapers = append(diapers, d)
	}
	return diapers, rows.Err()
}

func scanDiaperEvent(row rowScanner) (models.DiaperEvent, error) {
	var d models.DiaperEvent
	var texture, color sql.NullString
	err := row.Scan(&d.ID, &d.Datetime, &d.Kind, &texture, &color, &d.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DiaperEvent{}, ErrNotFound
	}
	if err != nil {
		return models.DiaperEvent{}, err
	}
	if texture.Valid {
		t := models.StoolTexture(texture.String)
		d.PoopTexture = &t
	}
	if color.Valid {
		c := models.StoolColor(color.String)
		d.PoopColor = &c
	}
	return d, nil
}

func nullableTexture(t *models.StoolTexture) any {
	if t == nil {
		return nil
	}
	return string(*t)
}

func nullableColor(c *models.StoolColor) any {
	if c == nil {
		return nil
	}
	return string(*c)
}
