package query

import (
	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
)

// Lineage returns the succession window around one reign of a title:
// every reign whose ordinal falls in [max(1, center-2), maxOrdinal],
// in ordinal order. Co-rulers sharing an ordinal position all appear.
//
// highlightRulerID marks the entry the caller navigated from; it is an
// opaque pass-through and an unknown identifier simply highlights
// nothing. An unknown title returns an error wrapping errors.ErrNotFound.
func (e *Engine) Lineage(titleName string, center int, highlightRulerID int) ([]LineageEntry, error) {
	title, ok := e.catalog.Title(titleName)
	if !ok {
		return nil, errors.NewNotFoundError("title %q", titleName)
	}

	floor := center - 2
	if floor < 1 {
		floor = 1
	}

	var entries []LineageEntry
	for _, reign := range e.catalog.Reigns() {
		if reign.Title != title {
			continue
		}
		if reign.Ordinal < floor || reign.Ordinal > title.MaxOrdinal {
			continue
		}
		entries = append(entries, LineageEntry{
			Reign:       reign,
			Highlighted: reign.Ruler.ID == highlightRulerID,
		})
	}

	if e.logger != nil {
		e.logger.Debugw("Lineage window built",
			"title", titleName, "center", center, "floor", floor, "entries", len(entries))
	}
	return entries, nil
}
