package sqlite

import (
	"database/sql"
	"errors"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
)

func (s *Store) AddGrowthRecord(g models.GrowthRecord) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO growth_records (date, weight_kg, height_cm, head_cm, note)
		VALUES (?, ?, ?, ?, ?)`,
		g.Date, nullableFloat(g.WeightKg), nullableFloat(g.HeightCm), nullableFloat(g.HeadCm), g.Note)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, s.publish(bus.GrowthRecords, g.Date)
}

func (s *Store) GetGrowthRecord(id int64) (models.GrowthRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, date, weight_kg, height_cm, head_cm, note
		FROM growth_records WHERE id = ?`, id)
	return scanGrowthRecord(row)
}

func (s *Store) UpdateGrowthRecord(g models.GrowthRecord) error {
	prev, err := s.GetGrowthRecord(g.ID)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE growth_records SET date = ?, weight_kg = ?, height_cm = ?, head_cm = ?, note = ?
		WHERE id = ?`,
		g.Date, nullableFloat(g.WeightKg), nullableFloat(g.HeightCm), nullableFloat(g.HeadCm), g.Note, g.ID)
	if err != nil {
		return err
	}
	return s.publish(bus.GrowthRecords, prev.Date, g.Date)
}

// DeleteGrowthRecord is a no-op when the id is absent.
func (s *Store) DeleteGrowthRecord(id int64) error {
	prev, err := s.GetGrowthRecord(id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM growth_records WHERE id = ?", id); err != nil {
		return err
	}
	return s.publish(bus.GrowthRecords, prev.Date)
}

func (s *Store) GetAllGrowthRecords() ([]models.GrowthRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, date, weight_kg, height_cm, head_cm, note
		FROM growth_records ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.GrowthRecord
	for rows.Next() {
		g, err := scanGrowthRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, g)
	}
	return records, rows.Err()
}

func scanGrowthRecord(row rowScanner) (models.GrowthRecord, error) {
	var g models.GrowthRecord
	var weight, height, head sql.NullFloat64
	err := row.Scan(&g.ID, &g.Date, &weight, &height, &head, &g.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return models.GrowthRecord{}, ErrNotFound
	}
	if err != nil {
		return models.GrowthRecord{}, err
	}
	if weight.Valid {
		g.WeightKg = &weight.Float64
	}
	if height.Valid {
		g.HeightCm = &height.Float64
	}
	if head.Valid {
		g.HeadCm = &head.Float64
	}
	return g, nil
}
