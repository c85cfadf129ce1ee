package store

import (
	"strconv"
	"strings"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
)

// SearchRulers matches stored rulers against whitespace-separated terms.
// Every term must appear in at least one searchable column (name,
// personal name, epithet, notes, or a held title). The link column is
// never searched. Matching is case-insensitive substring, the SQL
// counterpart of the in-memory text search.
func (s *SQLStore) SearchRulers(input string, limit int) ([]catalog.RulerRow, error) {
	terms := strings.Fields(strings.TrimSpace(input))
	if len(terms) == 0 {
		return nil, nil
	}

	qb := &queryBuilder{}
	for _, term := range terms {
		pattern := "%" + escapeLikePattern(term) + "%"
		qb.addClause(`(name LIKE ? COLLATE NOCASE ESCAPE '\'
			OR personal_name LIKE ? COLLATE NOCASE ESCAPE '\'
			OR epithet LIKE ? COLLATE NOCASE ESCAPE '\'
			OR notes LIKE ? COLLATE NOCASE ESCAPE '\'
			OR EXISTS (
				SELECT 1 FROM reigns
				WHERE reigns.ruler_id = rulers.id
				AND reigns.title LIKE ? COLLATE NOCASE ESCAPE '\'
			))`,
			pattern, pattern, pattern, pattern, pattern)
	}

	query := `SELECT id, name, personal_name, epithet, link, notes FROM rulers WHERE ` +
		qb.build() + ` ORDER BY id`
	args := qb.args
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "search rulers")
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

	if s.logger != nil {
		s.logger.Debugw("Ruler search complete", "terms", terms, "hits", len(out))
	}
	return out, rows.Err()
}
