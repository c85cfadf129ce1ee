package store

import (
	"strings"
)

// queryBuilder accumulates SQL WHERE clauses and bound parameters for
// ruler queries. Search terms are always bound, never spliced into the
// query text.
type queryBuilder struct {
	whereClauses []string
	args         []interface{}
}

// addClause appends a WHERE clause with its arguments
func (qb *queryBuilder) addClause(clause string, args ...interface{}) {
	qb.whereClauses = append(qb.whereClauses, clause)
	qb.args = append(qb.args, args...)
}

// build returns the WHERE clauses joined with AND
func (qb *queryBuilder) build() string {
	return strings.Join(qb.whereClauses, " AND ")
}

// buildTermFilter adds one clause per term: the term must appear in at
// least one of the columns (OR within a term, AND across terms).
func (qb *queryBuilder) buildTermFilter(terms []string, columns []string) {
	for _, term := range terms {
		clauses := make([]string, len(columns))
		for i, column := range columns {
			clauses[i] = column + " LIKE ? COLLATE NOCASE ESCAPE '\\'"
			qb.args = append(qb.args, "%"+escapeLikePattern(term)+"%")
		}
		qb.whereClauses = append(qb.whereClauses, "("+strings.Join(clauses, " OR ")+")")
	}
}

// escapeLikePattern escapes special characters in LIKE patterns for SQL ESCAPE clause
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
