// Package yearindex materializes, for every year touched by any reign,
// the set of reigns active that year. The index is derived state: it is
// entirely recomputable from the catalog and rebuilt in full whenever
// the reign set changes. No incremental maintenance is attempted.
package yearindex

import (
	"sort"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/chron"
)

// Entry holds everything active in a single calendar year.
type Entry struct {
	Year chron.Year

	// Reigns active this year, in ingestion order. Overlapping reigns
	// under one title (co-rulers, antipopes, disputed successions) all
	// appear; the index is multi-valued per (year, title).
	Reigns []*catalog.Reign

	// Events spanning this year, in ingestion order.
	Events []*catalog.Event

	byTitle map[string][]*catalog.Reign
}

// ByTitle returns the reigns under the named title active this year.
func (e *Entry) ByTitle(title string) []*catalog.Reign {
	return e.byTitle[title]
}

// Index maps calendar years to their active reigns and events. Built
// once, then shared read-only with the query engine.
type Index struct {
	entries map[chron.Year]*Entry
	years   []chron.Year // ascending
}

// Build derives the index from the catalog. Total time is proportional
// to the sum of span lengths across all reigns and events.
func Build(c *catalog.Catalog) *Index {
	idx := &Index{entries: make(map[chron.Year]*Entry)}

	for _, reign := range c.Reigns() {
		for _, year := range reign.Period.Years() {
			entry := idx.entry(year)
			entry.Reigns = append(entry.Reigns, reign)
			entry.byTitle[reign.Title.Name] = append(entry.byTitle[reign.Title.Name], reign)
		}
	}

	for _, event := range c.Events() {
		for _, year := range event.Period.Years() {
			idx.entry(year).Events = append(idx.entry(year).Events, event)
		}
	}

	idx.years = make([]chron.Year, 0, len(idx.entries))
	for year := range idx.entries {
		idx.years = append(idx.years, year)
	}
	sort.Slice(idx.years, func(i, j int) bool { return idx.years[i] < idx.years[j] })

	return idx
}

func (idx *Index) entry(year chron.Year) *Entry {
	e, ok := idx.entries[year]
	if !ok {
		e = &Entry{Year: year, byTitle: make(map[string][]*catalog.Reign)}
		idx.entries[year] = e
	}
	return e
}

// Lookup returns the entry for a year, or nil if nothing was active.
func (idx *Index) Lookup(year chron.Year) *Entry {
	return idx.entries[year]
}

// Years returns every indexed year in ascending order.
func (idx *Index) Years() []chron.Year {
	return idx.years
}

// Len returns the number of indexed years.
func (idx *Index) Len() int {
	return len(idx.entries)
}
