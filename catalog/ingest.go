package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/giovannicoppola/alfred-WhoWasWhen/chron"
	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
)

// Diagnostics counts the rows skipped during ingestion, with the
// per-row reasons. A skipped row never aborts the batch.
type Diagnostics struct {
	SkippedRulers int
	SkippedReigns int
	SkippedEvents int
	Messages      []string
}

func (d *Diagnostics) skip(counter *int, format string, args ...interface{}) {
	*counter++
	d.Messages = append(d.Messages, fmt.Sprintf(format, args...))
}

// Options configures an ingestion run.
type Options struct {
	// Plurals maps title names to display plurals. Nil means
	// DefaultPlurals().
	Plurals map[string]string

	// Logger receives per-row skip diagnostics and the final summary.
	// Nil operates silently.
	Logger *zap.SugaredLogger
}

// Ingest builds a fresh catalog from source rows. The build is
// deterministic and wholesale: it never merges into an existing catalog.
//
// Rows that fail validation or period parsing are skipped individually
// and recorded in Diagnostics. Ingest fails only when zero valid rulers
// or zero valid reigns survive, in which case it returns an error
// wrapping errors.ErrEmptyCatalog.
func Ingest(rulerRows []RulerRow, reignRows []ReignRow, eventRows []EventRow, opts Options) (*Catalog, error) {
	plurals := opts.Plurals
	if plurals == nil {
		plurals = DefaultPlurals()
	}

	c := &Catalog{
		rulers: make(map[int]*Ruler),
		titles: make(map[string]*Title),
	}

	for i, row := range rulerRows {
		id, err := parseRulerID(row.RulerID)
		if err != nil {
			c.diags.skip(&c.diags.SkippedRulers, "ruler row %d (%s): %v", i+1, row.Name, err)
			if opts.Logger != nil {
				opts.Logger.Debugw("Skipping ruler row", "row", i+1, "name", row.Name, "error", err)
			}
			continue
		}
		if _, exists := c.rulers[id]; exists {
			c.diags.skip(&c.diags.SkippedRulers, "ruler row %d (%s): duplicate id %d", i+1, row.Name, id)
			continue
		}
		ruler := &Ruler{
			ID:           id,
			Name:         row.Name,
			PersonalName: row.PersonalName,
			Epithet:      row.Epithet,
			Link:         row.Link,
			Notes:        row.Notes,
		}
		c.rulers[id] = ruler
		c.rulerOrder = append(c.rulerOrder, ruler)
	}

	for i, row := range reignRows {
		period, err := chron.ParsePeriod(row.Period)
		if err != nil {
			c.diags.skip(&c.diags.SkippedReigns, "reign row %d (%s): %v", i+1, row.Title, err)
			if opts.Logger != nil {
				opts.Logger.Debugw("Skipping reign row", "row", i+1, "title", row.Title, "error", err)
			}
			continue
		}
		id, err := parseRulerID(row.RulerID)
		if err != nil {
			c.diags.skip(&c.diags.SkippedReigns, "reign row %d (%s): %v", i+1, row.Title, err)
			continue
		}
		ruler, ok := c.rulers[id]
		if !ok {
			c.diags.skip(&c.diags.SkippedReigns, "reign row %d (%s): unknown ruler id %d", i+1, row.Title, id)
			continue
		}

		title, ok := c.titles[row.Title]
		if !ok {
			title = &Title{Name: row.Title, Plural: plurals[row.Title]}
			c.titles[row.Title] = title
			c.titleOrder = append(c.titleOrder, title)
		}
		title.MaxOrdinal++

		reign := &Reign{
			Ruler:   ruler,
			Title:   title,
			Period:  period,
			Raw:     strings.TrimSpace(row.Period),
			Ordinal: title.MaxOrdinal,
			Seq:     len(c.reigns),
			Notes:   row.Notes,
		}
		c.reigns = append(c.reigns, reign)
		ruler.Reigns = append(ruler.Reigns, reign)
	}

	for i, row := range eventRows {
		period, err := chron.ParsePeriod(row.Period)
		if err != nil {
			c.diags.skip(&c.diags.SkippedEvents, "event row %d (%s): %v", i+1, row.Name, err)
			continue
		}
		c.events = append(c.events, &Event{
			Name:   row.Name,
			Period: period,
			Raw:    strings.TrimSpace(row.Period),
			Notes:  row.Notes,
			Link:   row.Link,
		})
	}

	if len(c.rulerOrder) == 0 || len(c.reigns) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyCatalog,
			"no valid records survived ingestion (%d rulers skipped, %d reigns skipped)",
			c.diags.SkippedRulers, c.diags.SkippedReigns)
	}

	if opts.Logger != nil {
		opts.Logger.Infow("Catalog ingested",
			"rulers", len(c.rulerOrder),
			"titles", len(c.titleOrder),
			"reigns", len(c.reigns),
			"events", len(c.events),
			"skipped_rulers", c.diags.SkippedRulers,
			"skipped_reigns", c.diags.SkippedReigns,
			"skipped_events", c.diags.SkippedEvents,
		)
	}

	return c, nil
}

// parseRulerID validates a source ruler identifier. Missing or
// non-numeric identifiers are validation errors.
func parseRulerID(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.NewValidationError("missing ruler id")
	}
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.NewValidationError("ruler id %q is not numeric", trimmed)
	}
	return id, nil
}
