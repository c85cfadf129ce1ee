// Package store persists a built catalog and its year index to SQLite.
// It is a snapshot store: every save replaces the previous contents in
// one transaction, mirroring the wholesale-rebuild ingestion model.
package store

import (
	"database/sql"
	"strconv"

	"go.uber.org/zap"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
	"github.com/giovannicoppola/alfred-WhoWasWhen/yearindex"
)

// Query constants
const (
	rulerInsertQuery = `
		INSERT INTO rulers (id, seq, name, personal_name, epithet, link, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	titleInsertQuery = `
		INSERT INTO titles (name, max_ordinal, plural)
		VALUES (?, ?, ?)`

	reignInsertQuery = `
		INSERT INTO reigns (seq, ruler_id, title, start_year, end_year, raw_period, ordinal, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	eventInsertQuery = `
		INSERT INTO events (seq, name, start_year, end_year, raw_period, notes, link)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	yearInsertQuery      = `INSERT INTO years (year) VALUES (?)`
	yearReignInsertQuery = `INSERT INTO year_reigns (year, reign_seq) VALUES (?, ?)`
	yearEventInsertQuery = `INSERT INTO year_events (year, event_seq) VALUES (?, ?)`
)

// SQLStore persists catalog snapshots to a SQLite backend.
type SQLStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewSQLStore creates a new SQL-backed snapshot store
func NewSQLStore(db *sql.DB, logger *zap.SugaredLogger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: logger,
	}
}

// SaveSnapshot replaces the stored catalog and year index with the given
// build, atomically. Readers either see the old snapshot or the new one,
// never a mix.
func (s *SQLStore) SaveSnapshot(c *catalog.Catalog, idx *yearindex.Index) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "begin snapshot tx")
	}
	defer tx.Rollback()

	// Child tables cascade from rulers/events; years cascades its own
	// children. Delete order respects the foreign keys.
	for _, table := range []string{"year_reigns", "year_events", "years", "reigns", "events", "titles", "rulers"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return errors.Wrapf(err, "clear %s", table)
		}
	}

	// seq preserves sheet order; ids are whatever the sheet assigned and
	// carry no ordering guarantee.
	for i, ruler := range c.Rulers() {
		if _, err := tx.Exec(rulerInsertQuery,
			ruler.ID, i, ruler.Name, ruler.PersonalName, ruler.Epithet, ruler.Link, ruler.Notes); err != nil {
			return errors.Wrapf(err, "insert ruler %d", ruler.ID)
		}
	}

	for _, title := range c.Titles() {
		if _, err := tx.Exec(titleInsertQuery, title.Name, title.MaxOrdinal, title.Plural); err != nil {
			return errors.Wrapf(err, "insert title %s", title.Name)
		}
	}

	for _, reign := range c.Reigns() {
		if _, err := tx.Exec(reignInsertQuery,
			reign.Seq, reign.Ruler.ID, reign.Title.Name,
			int(reign.Period.Start), int(reign.Period.End),
			reign.Raw, reign.Ordinal, reign.Notes); err != nil {
			return errors.Wrapf(err, "insert reign %d", reign.Seq)
		}
	}

	for i, event := range c.Events() {
		if _, err := tx.Exec(eventInsertQuery,
			i, event.Name, int(event.Period.Start), int(event.Period.End),
			event.Raw, event.Notes, event.Link); err != nil {
			return errors.Wrapf(err, "insert event %q", event.Name)
		}
	}

	eventSeq := make(map[*catalog.Event]int, len(c.Events()))
	for i, event := range c.Events() {
		eventSeq[event] = i
	}

	for _, year := range idx.Years() {
		if _, err := tx.Exec(yearInsertQuery, int(year)); err != nil {
			return errors.Wrapf(err, "insert year %d", int(year))
		}
		entry := idx.Lookup(year)
		for _, reign := range entry.Reigns {
			if _, err := tx.Exec(yearReignInsertQuery, int(year), reign.Seq); err != nil {
				return errors.Wrapf(err, "insert year %d reign %d", int(year), reign.Seq)
			}
		}
		for _, event := range entry.Events {
			if _, err := tx.Exec(yearEventInsertQuery, int(year), eventSeq[event]); err != nil {
				return errors.Wrapf(err, "insert year %d event %q", int(year), event.Name)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit snapshot")
	}

	if s.logger != nil {
		s.logger.Infow("Snapshot saved",
			"rulers", len(c.Rulers()),
			"titles", len(c.Titles()),
			"reigns", len(c.Reigns()),
			"events", len(c.Events()),
			"years", idx.Len(),
		)
	}
	return nil
}

// LoadRows reads the stored catalog back as source rows, in ingestion
// order. Callers rebuild the in-memory catalog from them; the raw period
// notation is stored precisely so the round trip goes through the same
// parser as a fresh ingest.
func (s *SQLStore) LoadRows() ([]catalog.RulerRow, []catalog.ReignRow, []catalog.EventRow, error) {
	rulerRows, err := s.loadRulerRows()
	if err != nil {
		return nil, nil, nil, err
	}
	reignRows, err := s.loadReignRows()
	if err != nil {
		return nil, nil, nil, err
	}
	eventRows, err := s.loadEventRows()
	if err != nil {
		return nil, nil, nil, err
	}

	if s.logger != nil {
		s.logger.Debugw("Snapshot loaded",
			"rulers", len(rulerRows), "reigns", len(reignRows), "events", len(eventRows))
	}
	return rulerRows, reignRows, eventRows, nil
}

func (s *SQLStore) loadRulerRows() ([]catalog.RulerRow, error) {
	rows, err := s.db.Query(`SELECT id, name, personal_name, epithet, link, notes FROM rulers ORDER BY seq`)
	if err != nil {
		return nil, errors.Wrap(err, "query rulers")
	}
	defer rows.Close()

	var out []catalog.RulerRow
	for rows.Next() {
		var id int
		var r catalog.RulerRow
		if err := rows.Scan(&id, &r.Name, &r.PersonalName, &r.Epithet, &r.Link, &r.Notes); err != nil {
			return nil, errors.Wrap(err, "scan ruler")
		}
		r.RulerID = strconv.Itoa(id)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) loadReignRows() ([]catalog.ReignRow, error) {
	rows, err := s.db.Query(`SELECT ruler_id, title, raw_period, notes FROM reigns ORDER BY seq`)
	if err != nil {
		return nil, errors.Wrap(err, "query reigns")
	}
	defer rows.Close()

	var out []catalog.ReignRow
	for rows.Next() {
		var rulerID int
		var r catalog.ReignRow
		if err := rows.Scan(&rulerID, &r.Title, &r.Period, &r.Notes); err != nil {
			return nil, errors.Wrap(err, "scan reign")
		}
		r.RulerID = strconv.Itoa(rulerID)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) loadEventRows() ([]catalog.EventRow, error) {
	rows, err := s.db.Query(`SELECT name, raw_period, notes, link FROM events ORDER BY seq`)
	if err != nil {
		return nil, errors.Wrap(err, "query events")
	}
	defer rows.Close()

	var out []catalog.EventRow
	for rows.Next() {
		var e catalog.EventRow
		if err := rows.Scan(&e.Name, &e.Period, &e.Notes, &e.Link); err != nil {
			return nil, errors.Wrap(err, "scan event")
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
