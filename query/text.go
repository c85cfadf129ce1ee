package query

import (
	"strings"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
)

// textSearch matches rulers (and events, when enabled) against the
// given lowercase terms. A ruler matches when every term (term-AND)
// appears in at least one of its searchable fields (field-OR): name,
// personal name, epithet, notes, or any held title name. The external
// link field is never searched.
//
// Results keep catalog iteration order; matched rulers carry every one
// of their reigns, not only reigns whose title matched.
func (e *Engine) textSearch(terms []string) Results {
	res := Results{Mode: ModeText}

	for _, ruler := range e.catalog.Rulers() {
		if !allTermsMatch(terms, rulerFields(ruler)) {
			continue
		}
		match := TextMatch{
			Ruler: ruler,
			Notes: ruler.Notes,
		}
		for _, reign := range ruler.Reigns {
			match.MatchedTitles = append(match.MatchedTitles, TitlePeriod{
				Title:  reign.Title.Name,
				Period: reign.Period.String(),
			})
		}
		res.Text = append(res.Text, match)
	}

	if e.includeEvents {
		for _, event := range e.catalog.Events() {
			if allTermsMatch(terms, eventFields(event)) {
				res.Events = append(res.Events, event)
			}
		}
	}

	if e.logger != nil {
		e.logger.Debugw("Text search complete", "terms", terms, "rulers", len(res.Text), "events", len(res.Events))
	}
	return res
}

// rulerFields lowercases the searchable fields of a ruler. Link is
// intentionally absent.
func rulerFields(r *catalog.Ruler) []string {
	fields := []string{
		strings.ToLower(r.Name),
		strings.ToLower(r.PersonalName),
		strings.ToLower(r.Epithet),
		strings.ToLower(r.Notes),
	}
	for _, reign := range r.Reigns {
		fields = append(fields, strings.ToLower(reign.Title.Name))
	}
	return fields
}

func eventFields(ev *catalog.Event) []string {
	return []string{
		strings.ToLower(ev.Name),
		strings.ToLower(ev.Notes),
	}
}
