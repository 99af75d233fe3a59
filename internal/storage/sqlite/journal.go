package sqlite

import (
	"database/sql"
	"errors"

	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/models"
)

func (s *Store) AddJournalEntry(j models.JournalEntry) (int64, error) {
	tags, err := encodeTags(j.Tags)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(`
		INSERT INTO journal_entries (datetime, title, tags, context, action, result, next, mood)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.Datetime, j.Title, tags, j.Context, j.Action, j.Result, j.Next, j.Mood)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, s.publish(bus.JournalEntries, j.Date())
}

func (s *Store) GetJournalEntry(id int64) (models.JournalEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, datetime, title, tags, context, action, result, next, mood
		FROM journal_entries WHERE id = ?`, id)
	return scanJournalEntry(row)
}

func (s *Store) UpdateJournalEntry(j models.JournalEntry) error {
	prev, err := s.GetJournalEntry(j.ID)
	if err != nil {
		return err
	}

	tags, err := encodeTags(j.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE journal_entries
		SET datetime = ?, title = ?, tags = ?, context = ?, action = ?, result = ?, next = ?, mood = ?
		WHERE id = ?`,
		j.Datetime, j.Title, tags, j.Context, j.Action, j.Result, j.Next, j.Mood, j.ID)
	if err != nil {
		return err
	}
	return s.publish(bus.JournalEntries, prev.Date(), j.Date())
}

// DeleteJournalEntry is a no-op when the id is absent.
func (s *Store) DeleteJournalEntry(id int64) error {
	prev, err := s.GetJournalEntry(id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.db.Exec("DELETE FROM journal_entries WHERE id = ?", id); err != nil {
		return err
	}
	return s.publish(bus.JournalEntries, prev.Date())
}

// GetJournalEntries returns entries whose timestamp date falls between from
// and to inclusive, ordered by timestamp. Empty bounds are open-ended.
func (s *Store) GetJournalEntries(from, to string, descending bool) ([]models.JournalEntry, error) {
	query := `
		SELECT id, datetime, title, tags, context, action, result, next, mood
		FROM journal_entries WHERE 1=1`
	var args []any
	if from != "" {
		query += " AND substr(datetime, 1, 10) >= ?"
		args = append(args, from)
	}
	if to != "" {
		query += " AND substr(datetime, 1, 10) <= ?"
		args = append(args, to)
	}
	if descending {
		query += " ORDER BY datetime DESC"
	} else {
		query += " ORDER BY datetime"
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		j, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, j)
	}
	return entries, rows.Err()
}

func (s *Store) GetAllJournalEntries() ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, datetime, title, tags, context, action, result, next, mood
		FROM journal_entries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		j, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, j)
	}
	return entries, rows.Err()
}

func scanJournalEntry(row rowScanner) (models.JournalEntry, error) {
	var j models.JournalEntry
	var tags string
	err := row.Scan(&j.ID, &j.Datetime, &j.Title, &tags, &j.Context, &j.Action, &j.Result, &j.Next, &j.Mood)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntry{}, ErrNotFound
	}
	if err != nil {
		return models.JournalEntry{}, err
	}
	j.Tags = decodeTags(tags)
	return j, nil
}
