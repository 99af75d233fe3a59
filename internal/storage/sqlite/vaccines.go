package sqlite

import (
	"database/sql"
	"errors"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
)

func (s *Store) AddVaccineRecord(v models.VaccineRecord) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO vaccine_records (date, name, reaction, note)
		VALUES (?, ?, ?, ?)`,
		v.Date, v.Name, v.Reaction, v.Note)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, s.publish(bus.VaccineRecords, v.Date)
}

func (s *Store) GetVaccineRecord(id int64) (models.VaccineRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, date, name, reaction, note
		FROM vaccine_records WHERE id = ?`, id)
	return scanVaccineRecord(row)
}

func (s *Store) UpdateVaccineRecord(v models.VaccineRecord) error {
	prev, err := s.GetVaccineRecord(v.ID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE vaccine_records SET date = ?, name = ?, reaction = ?, note = ?
		WHERE id = ?`,
		v.Date, v.Name, v.Reaction, v.Note, v.ID)
	if err != nil {
		return err
	}
	return s.publish(bus.VaccineRecords, prev.Date, v.Date)
}

// DeleteVaccineRecord is a no-op when the id is absent.
func (s *Store) DeleteVaccineRecord(id int64) error {
	prev, err := s.GetVaccineRecord(id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM vaccine_records WHERE id = ?", id); err != nil {
		return err
	}
	return s.publish(bus.VaccineRecords, prev.Date)
}

func (s *Store) GetAllVaccineRecords() ([]models.VaccineRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, date, name, reaction, note
		FROM vaccine_records ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.VaccineRecord
	for rows.Next() {
		v, err := scanVaccineRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, v)
	}
	return records, rows.Err()
}

func scanVaccineRecord(row rowScanner) (models.VaccineRecord, error) {
	var v models.VaccineRecord
	err := row.Scan(&v.ID, &v.Date, &v.Name, &v.Reaction, &v.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaccineRecord{}, ErrNotFound
	}
	if err != nil {
		return models.VaccineRecord{}, err
	}
	return v, nil
}
