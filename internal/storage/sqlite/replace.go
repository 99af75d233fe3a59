package sqlite

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/babylog/babylog/internal/models"
)

// ReplaceAll clears every collection and bulk-inserts the document's records
// with their ids preserved, all inside a single transaction. If anything
// fails the transaction rolls back and the store is left untouched. No
// change events are published and the aggregator is not invoked: imported
// daily logs are trusted to match the imported events, since export and
// import always move the whole store together.
func (s *Store) ReplaceAll(doc models.BackupDocument) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}

	if err := replaceAllIn(tx, doc); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func replaceAllIn(tx *sql.Tx, doc models.BackupDocument) error {
	tables := []string{
		"profiles", "daily_logs", "feed_events", "sleep_events", "diaper_events",
		"growth_records", "vaccine_records", "milestones", "journal_entries",
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, p := range doc.Profiles {
		_, err := tx.Exec(`
			INSERT INTO profiles (id, name, nickname, birth_date, birth_time, gender, photo)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Nickname, p.BirthDate, p.BirthTime, p.Gender, p.Photo)
		if err != nil {
			return fmt.Errorf("failed to insert profile %d: %w", p.ID, err)
		}
	}

	for _, d := range doc.DailyLogs {
		tags, err := encodeTags(d.SymptomsTags)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO daily_logs (date, milk_times, milk_total_ml, poop_times, pee_times, sleep_hours, note, symptoms_tags)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.Date, d.MilkTimes, d.MilkTotalMl, d.PoopTimes, d.PeeTimes, d.SleepHours, d.Note, tags)
		if err != nil {
			return fmt.Errorf("failed to insert daily log %s: %w", d.Date, err)
		}
	}

	for _, f := range doc.FeedEvents {
		_, err := tx.Exec(`
			INSERT INTO feed_events (id, datetime, type, amount_ml, duration_min, side, spit_up, burp_ok, note)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			f.ID, f.Datetime, f.Type, nullableInt(f.AmountMl), nullableInt(f.DurationMin), f.Side, f.SpitUp, f.BurpOk, f.Note)
		if err != nil {
			return fmt.Errorf("failed to insert feed event %d: %w", f.ID, err)
		}
	}

	for _, ev := range doc.SleepEvents {
		_, err := tx.Exec(`
			INSERT INTO sleep_events (id, start_at, end_at, place, method, note)
			VALUES (?, ?, ?, ?, ?, ?)`,
			ev.ID, ev.Start, ev.End, ev.Place, ev.Method, ev.Note)
		if err != nil {
			return fmt.Errorf("failed to insert sleep event %d: %w", ev.ID, err)
		}
	}

	for _, d := range doc.DiaperEvents {
		_, err := tx.Exec(`
			INSERT INTO diaper_events (id, datetime, kind, poop_texture, poop_color, note)
			VALUES (?, ?, ?, ?, ?, ?)`,
			d.ID, d.Datetime, d.Kind, nullableTexture(d.PoopTexture), nullableColor(d.PoopColor), d.Note)
		if err != nil {
			return fmt.Errorf("failed to insert diaper event %d: %w", d.ID, err)
		}
	}

	for _, g := range doc.GrowthRecords {
		_, err := tx.Exec(`
			INSERT INTO growth_records (id, date, weight_kg, height_cm, head_cm, note)
			VALUES (?, ?, ?, ?, ?, ?)`,
			g.ID, g.Date, nullableFloat(g.WeightKg), nullableFloat(g.HeightCm), nullableFloat(g.HeadCm), g.Note)
		if err != nil {
			return fmt.Errorf("failed to insert growth record %d: %w", g.ID, err)
		}
	}

	for _, v := range doc.VaccineRecords {
		_, err := tx.Exec(`
			INSERT INTO vaccine_records (id, date, name, reaction, note)
			VALUES (?, ?, ?, ?, ?)`,
			v.ID, v.Date, v.Name, v.Reaction, v.Note)
		if err != nil {
			return fmt.Errorf("failed to insert vaccine record %d: %w", v.ID, err)
		}
	}

	for _, m := range doc.Milestones {
		tags, err := encodeTags(m.Tags)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO milestones (id, date, title, description, tags)
			VALUES (?, ?, ?, ?, ?)`,
			m.ID, m.Date, m.Title, m.Description, tags)
		if err != nil {
			return fmt.Errorf("failed to insert milestone %d: %w", m.ID, err)
		}
	}

	for _, j := range doc.JournalEntries {
		tags, err := encodeTags(j.Tags)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO journal_entries (id, datetime, title, tags, context, action, result, next, mood)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			j.ID, j.Datetime, j.Title, tags, j.Context, j.Action, j.Result, j.Next, j.Mood)
		if err != nil {
			return fmt.Errorf("failed to insert journal entry %d: %w", j.ID, err)
		}
	}

	return nil
}

// EventDates returns every calendar date touched by at least one feed,
// sleep, or diaper event, ascending. Sleep intervals contribute every date
// they overlap.
func (s *Store) EventDates() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT substr(datetime, 1, 10) AS d FROM feed_events
		UNION
		SELECT DISTINCT substr(datetime, 1, 10) FROM diaper_events`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		seen[d] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sleeps, err := s.GetAllSleepEvents()
	if err != nil {
		return nil, err
	}
	for _, ev := range sleeps {
		for _, d := range ev.DatesTouched() {
			seen[d] = true
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}
