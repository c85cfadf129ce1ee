package store

import (
	"database/sql"

	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
)

// Stats summarizes the stored snapshot.
type Stats struct {
	Rulers int
	Titles int
	Reigns int
	Events int
	Years  int

	// EarliestYear and LatestYear bound the indexed span. Both are zero
	// when the index is empty.
	EarliestYear int
	LatestYear   int
}

// Stats reports record counts and the indexed year span.
func (s *SQLStore) Stats() (*Stats, error) {
	stats := &Stats{}

	counts := []struct {
		table string
		dest  *int
	}{
		{"rulers", &stats.Rulers},
		{"titles", &stats.Titles},
		{"reigns", &stats.Reigns},
		{"events", &stats.Events},
		{"years", &stats.Years},
	}
	for _, c := range counts {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dest); err != nil {
			return nil, errors.Wrapf(err, "count %s", c.table)
		}
	}

	var earliest, latest sql.NullInt64
	if err := s.db.QueryRow("SELECT MIN(year), MAX(year) FROM years").Scan(&earliest, &latest); err != nil {
		return nil, errors.Wrap(err, "year span")
	}
	if earliest.Valid {
		stats.EarliestYear = int(earliest.Int64)
		stats.LatestYear = int(latest.Int64)
	}

	return stats, nil
}
