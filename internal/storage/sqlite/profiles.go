package sqlite

import (
	"database/sql"
	"errors"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
)

// GetProfile returns the first profile. The store permits multiple rows but
// the application only ever uses one.
func (s *Store) GetProfile() (models.Profile, error) {
	row := s.db.QueryRow(`
		SELECT id, name, nickname, birth_date, birth_time, gender, photo
		FROM profiles ORDER BY id LIMIT 1`)

	var p models.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Nickname, &p.BirthDate, &p.BirthTime, &p.Gender, &p.Photo)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrNotFound
	}
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *Store) GetAllProfiles() ([]models.Profile, error) {
	rows, err := s.db.Query(`
		SELECT id, name, nickname, birth_date, birth_time, gender, photo
		FROM profiles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Nickname, &p.BirthDate, &p.BirthTime, &p.Gender, &p.Photo); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// PutProfile upserts the profile. A zero ID inserts and returns the new id;
// a nonzero ID replaces the existing row in place.
func (s *Store) PutProfile(p models.Profile) (int64, error) {
	if p.ID == 0 {
		res, err := s.db.Exec(`
			INSERT INTO profiles (name, nickname, birth_date, birth_time, gender, photo)
			VALUES (?, ?, ?, ?, ?, ?)`,
			p.Name, p.Nickname, p.BirthDate, p.BirthTime, p.Gender, p.Photo)
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		return id, s.publish(bus.Profiles)
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO profiles (id, name, nickname, birth_date, birth_time, gender, photo)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Nickname, p.BirthDate, p.BirthTime, p.Gender, p.Photo)
	if err != nil {
		return 0, err
	}
	return p.ID, s.publish(bus.Profiles)
}
