package query

import "strings"

// Matching is expressed as a fixed pair of combinator rules over record
// fields — terms are never spliced into query text:
//
//	term-AND:  a record matches only if every term matches it
//	field-OR:  a term matches a record if it appears in any one field
//
// All matching is case-insensitive substring; fields are lowercased
// once by the caller, terms arrive lowercased from tokenization.

// termMatchesAnyField reports whether the term appears as a substring
// in at least one field (field-OR).
func termMatchesAnyField(term string, fields []string) bool {
	for _, f := range fields {
		if strings.Contains(f, term) {
			return true
		}
	}
	return false
}

// allTermsMatch reports whether every term matches at least one field
// (term-AND over field-OR).
func allTermsMatch(terms []string, fields []string) bool {
	for _, term := range terms {
		if !termMatchesAnyField(term, fields) {
			return false
		}
	}
	return true
}
