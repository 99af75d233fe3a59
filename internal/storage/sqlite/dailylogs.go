package sqlite

import (
	"database/sql"
	"errors"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
)

func (s *Store) GetDailyLog(date string) (models.DailyLog, error) {
	row := s.db.QueryRow(`
		SELECT date, milk_times, milk_total_ml, poop_times, pee_times, sleep_hours, note, symptoms_tags
		FROM daily_logs WHERE date = ?`, date)
	return scanDailyLog(row)
}

// AddDailyLog inserts a new daily log and fails with ErrDuplicateKey when
// one already exists for the date. Use PutDailyLog for upserts.
func (s *Store) AddDailyLog(d models.DailyLog) error {
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM daily_logs WHERE date = ?", d.Date).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateKey
	}
	return s.PutDailyLog(d)
}

// PutDailyLog upserts the daily log for its date.
func (s *Store) PutDailyLog(d models.DailyLog) error {
	tags, err := encodeTags(d.SymptomsTags)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO daily_logs (date, milk_times, milk_total_ml, poop_times, pee_times, sleep_hours, note, symptoms_tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Date, d.MilkTimes, d.MilkTotalMl, d.PoopTimes, d.PeeTimes, d.SleepHours, d.Note, tags)
	if err != nil {
		return err
	}
	return s.publish(bus.DailyLogs, d.Date)
}

func (s *Store) DeleteDailyLog(date string) error {
	_, err := s.db.Exec("DELETE FROM daily_logs WHERE date = ?", date)
	if err != nil {
		return err
	}
	return s.publish(bus.DailyLogs, date)
}

// GetDailyLogs returns the logs between from and to inclusive, ordered by
// date. Empty bounds are open-ended.
func (s *Store) GetDailyLogs(from, to string, descending bool) ([]models.DailyLog, error) {
	query := `
		SELECT date, milk_times, milk_total_ml, poop_times, pee_times, sleep_hours, note, symptoms_tags
		FROM daily_logs WHERE 1=1`
	var args []any
	if from != "" {
		query += " AND date >= ?"
		args = append(args, from)
	}
	if to != "" {
		query += " AND date <= ?"
		args = append(args, to)
	}
	if descending {
		query += " ORDER BY date DESC"
	} else {
		query += " ORDER BY date"
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.DailyLog
	for rows.Next() {
		d, err := scanDailyLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, d)
	}
	return logs, rows.Err()
}

func (s *Store) GetAllDailyLogs() ([]models.DailyLog, error) {
	return s.GetDailyLogs("", "", false)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDailyLog(row rowScanner) (models.DailyLog, error) {
	var d models.DailyLog
	var tags string
	err := row.Scan(&d.Date, &d.MilkTimes, &d.MilkTotalMl, &d.PoopTimes, &d.PeeTimes, &d.SleepHours, &d.Note, &tags)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyLog{}, ErrNotFound
	}
	if err != nil {
		return models.DailyLog{}, err
	}
	d.SymptomsTags = decodeTags(tags)
	return d, nil
}
