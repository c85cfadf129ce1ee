// Package catalog holds the normalized ruler/title/reign records built
// from source rows. The catalog is written once by Ingest and read-only
// afterward; queries never mutate it, so it is safe to share across
// concurrent readers. Rebuilds replace the whole catalog, never patch it.
package catalog

import (
	"github.com/giovannicoppola/alfred-WhoWasWhen/chron"
)

// Ruler is an identity record, immutable once ingested.
type Ruler struct {
	ID           int
	Name         string
	PersonalName string
	Epithet      string
	Link         string // external reference, excluded from text search
	Notes        string

	// Reigns held by this ruler, in ingestion order.
	Reigns []*Reign
}

// Title is a named office. Titles are created lazily the first time a
// reign references them.
type Title struct {
	Name string

	// MaxOrdinal is the count of reigns ever recorded under this title,
	// the final ordinal assigned during ingestion.
	MaxOrdinal int

	// Plural is the registered display plural, empty if none.
	Plural string
}

// PluralLabel returns the display plural for the title. Titles without a
// registered plural display as themselves; there is deliberately no
// automatic "+s" inference.
func (t *Title) PluralLabel() string {
	if t.Plural != "" {
		return t.Plural
	}
	return t.Name
}

// Reign is the central interval fact: one ruler holding one title over
// one normalized period.
type Reign struct {
	Ruler  *Ruler
	Title  *Title
	Period chron.Period

	// Raw is the source notation the period was parsed from.
	Raw string

	// Ordinal is the 1-based position of this reign within its title's
	// ingestion-order sequence, the basis for lineage windowing.
	Ordinal int

	// Seq is the global ingestion sequence number, used to keep result
	// ordering stable within a year.
	Seq int

	Notes string
}

// Event is a named historical interval, searchable alongside reigns.
type Event struct {
	Name   string
	Period chron.Period
	Raw    string
	Notes  string
	Link   string
}

// Catalog owns the full record set. Single writer during build,
// read-only afterward.
type Catalog struct {
	rulers     map[int]*Ruler
	rulerOrder []*Ruler
	titles     map[string]*Title
	titleOrder []*Title
	reigns     []*Reign
	events     []*Event
	diags      Diagnostics
}

// Rulers returns all rulers in catalog iteration order (source order).
func (c *Catalog) Rulers() []*Ruler { return c.rulerOrder }

// Titles returns all titles in first-reference order.
func (c *Catalog) Titles() []*Title { return c.titleOrder }

// Reigns returns all reigns in ingestion order.
func (c *Catalog) Reigns() []*Reign { return c.reigns }

// Events returns all events in ingestion order.
func (c *Catalog) Events() []*Event { return c.events }

// Ruler looks up a ruler by identifier.
func (c *Catalog) Ruler(id int) (*Ruler, bool) {
	r, ok := c.rulers[id]
	return r, ok
}

// Title looks up a title by name.
func (c *Catalog) Title(name string) (*Title, bool) {
	t, ok := c.titles[name]
	return t, ok
}

// Diagnostics reports the rows skipped during ingestion.
func (c *Catalog) Diagnostics() Diagnostics { return c.diags }
