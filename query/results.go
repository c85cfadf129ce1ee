package query

import (
	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/chron"
)

// Mode identifies which query shape an input dispatched to.
type Mode int

const (
	// ModeText is free-text ruler/event search.
	ModeText Mode = iota
	// ModeTemporal is year-based search (exact, wildcard, or range).
	ModeTemporal
)

// TitlePeriod pairs a title name with the raw period notation of one
// reign under it, for display.
type TitlePeriod struct {
	Title  string
	Period string
}

// TextMatch is one ruler matched by free-text search.
type TextMatch struct {
	Ruler *catalog.Ruler

	// MatchedTitles lists every reign of the matched ruler as
	// (title, period) pairs, in ingestion order.
	MatchedTitles []TitlePeriod

	Notes string
}

// TemporalResult is one (year, reign) or (year, event) hit from a
// temporal search. Exactly one of Reign and Event is set.
type TemporalResult struct {
	Year  chron.Year
	Reign *catalog.Reign
	Event *catalog.Event

	// Position and Total give the 1-based result counter ("i/N") for
	// display.
	Position int
	Total    int
}

// LineageEntry is one reign in a lineage window.
type LineageEntry struct {
	Reign *catalog.Reign

	// Highlighted marks the entry whose ruler matches the caller's
	// highlight identifier. The identifier is an opaque pass-through;
	// the engine attaches no meaning to it.
	Highlighted bool
}

// Results is the outcome of a dispatched search. An empty result list
// is a well-formed response, not a failure.
type Results struct {
	Mode     Mode
	Text     []TextMatch
	Events   []*catalog.Event
	Temporal []TemporalResult
}

// Len returns the total number of hits across the populated mode.
func (r Results) Len() int {
	if r.Mode == ModeTemporal {
		return len(r.Temporal)
	}
	return len(r.Text) + len(r.Events)
}
