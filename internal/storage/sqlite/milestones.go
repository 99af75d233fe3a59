package sqlite

import (
	"database/sql"
	"errors"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
)

func (s *Store) AddMilestone(m models.Milestone) (int64, error) {
	tags, err := encodeTags(m.Tags)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(`
		INSERT INTO milestones (date, title, description, tags)
		VALUES (?, ?, ?, ?)`,
		m.Date, m.Title, m.Description, tags)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, s.publish(bus.Milestones, m.Date)
}

func (s *Store) GetMilestone(id int64) (models.Milestone, error) {
	row := s.db.QueryRow(`
		SELECT id, date, title, description, tags
		FROM milestones WHERE id = ?`, id)
	return scanMilestone(row)
}

func (s *Store) UpdateMilestone(m models.Milestone) error {
	prev, err := s.GetMilestone(m.ID)
	if err != nil {
		return err
	}

	tags, err := encodeTags(m.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE milestones SET date = ?, title = ?, description = ?, tags = ?
		WHERE id = ?`,
		m.Date, m.Title, m.Description, tags, m.ID)
	if err != nil {
		return err
	}
	return s.publish(bus.Milestones, prev.Date, m.Date)
}

// DeleteMilestone is a no-op when the id is absent.
func (s *Store) DeleteMilestone(id int64) error {
	prev, err := s.GetMilestone(id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM milestones WHERE id = ?", id); err != nil {
		return err
	}
	return s.publish(bus.Milestones, prev.Date)
}

func (s *Store) GetAllMilestones() ([]models.Milestone, error) {
	rows, err := s.db.Query(`
		SELECT id, date, title, description, tags
		FROM milestones ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func scanMilestone(row rowScanner) (models.Milestone, error) {
	var m models.Milestone
	var tags string
	err := row.Scan(&m.ID, &m.Date, &m.Title, &m.Description, &tags)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Milestone{}, ErrNotFound
	}
	if err != nil {
		return models.Milestone{}, err
	}
	m.Tags = decodeTags(tags)
	return m, nil
}
