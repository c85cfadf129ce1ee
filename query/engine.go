// Package query answers the three query shapes against a built
// catalog and year index: free-text ruler search, temporal search with
// exact/wildcard/range years, and lineage windowing.
//
// All operations are pure reads. Once an Engine is constructed over an
// immutable catalog/index pair it is safe for concurrent callers
// without locking.
package query

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/yearindex"
)

// numberLikePattern matches a year term: an optional sign, digits,
// optional trailing wildcards, or two such tokens joined by a range
// separator.
var numberLikePattern = regexp.MustCompile(`^-?\d*\**$|^-?\d*\**--?\d*\**$`)

// Options configures an Engine.
type Options struct {
	// IncludeEvents adds event hits to text and temporal searches.
	IncludeEvents bool

	// Logger receives query dispatch diagnostics. Nil operates silently.
	Logger *zap.SugaredLogger
}

// Engine serves queries over an immutable catalog/index snapshot.
type Engine struct {
	catalog       *catalog.Catalog
	index         *yearindex.Index
	includeEvents bool
	logger        *zap.SugaredLogger
}

// New builds an engine over a catalog and its derived year index.
func New(c *catalog.Catalog, idx *yearindex.Index, opts Options) *Engine {
	return &Engine{
		catalog:       c,
		index:         idx,
		includeEvents: opts.IncludeEvents,
		logger:        opts.Logger,
	}
}

// Search dispatches an input string by its lexical shape: if any
// whitespace-delimited token looks numeric (digits, a trailing
// wildcard, or a year range), the query is temporal; otherwise it is a
// free-text search. Lineage is a separate entry point — see Lineage.
func (e *Engine) Search(input string) Results {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(tokens) == 0 {
		return Results{Mode: ModeText}
	}

	yearTerm := ""
	textTerms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if yearTerm == "" && isNumberLike(token) {
			yearTerm = token
			continue
		}
		textTerms = append(textTerms, token)
	}

	if yearTerm != "" {
		if e.logger != nil {
			e.logger.Debugw("Dispatching temporal search", "year_term", yearTerm, "text_terms", textTerms)
		}
		return e.temporalSearch(yearTerm, textTerms)
	}

	if e.logger != nil {
		e.logger.Debugw("Dispatching text search", "terms", textTerms)
	}
	return e.textSearch(textTerms)
}

// isNumberLike reports whether a token is a year, a BC (negative) year,
// a trailing-wildcard year prefix, or a year range.
func isNumberLike(token string) bool {
	return numberLikePattern.MatchString(token)
}
