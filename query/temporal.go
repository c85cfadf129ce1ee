package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/giovannicoppola/alfred-WhoWasWhen/chron"
)

// rangePattern splits a year range term into its two signed endpoints.
// The leading sign of each endpoint belongs to the endpoint, so
// "-50--40" parses as (-50, -40).
var rangePattern = regexp.MustCompile(`^(-?\d+)-(-?\d+)$`)

// yearMatcher decides whether an indexed year satisfies the year term.
type yearMatcher func(chron.Year) bool

// temporalSearch walks the index in ascending year order and collects
// every (year, reign) pair whose year satisfies the year term and whose
// reign satisfies the remaining text terms. Event hits are interleaved
// after the reigns of their year when events are enabled.
//
// The year term supports three shapes:
//
//	exact:     "1509", "-44"
//	wildcard:  "19*" — prefix match on the signed decimal form
//	range:     "1500-1510", "-50--40" — inclusive, endpoints in either order
//
// A bare year with no text terms matches loosely (substring of the
// decimal form, so "15" also hits 1509); combined with text terms the
// year must match exactly. Results carry 1-based Position/Total
// counters assigned after collection.
func (e *Engine) temporalSearch(yearTerm string, textTerms []string) Results {
	res := Results{Mode: ModeTemporal}

	matches := e.yearMatcher(yearTerm, len(textTerms) > 0)
	if matches == nil {
		return res
	}

	for _, year := range e.index.Years() {
		if !matches(year) {
			continue
		}
		entry := e.index.Lookup(year)

		for _, reign := range entry.Reigns {
			fields := []string{
				strings.ToLower(reign.Ruler.Name),
				strings.ToLower(reign.Title.Name),
			}
			if !allTermsMatch(textTerms, fields) {
				continue
			}
			res.Temporal = append(res.Temporal, TemporalResult{
				Year:  year,
				Reign: reign,
			})
		}

		if e.includeEvents {
			for _, event := range entry.Events {
				if !allTermsMatch(textTerms, eventFields(event)) {
					continue
				}
				res.Temporal = append(res.Temporal, TemporalResult{
					Year:  year,
					Event: event,
				})
			}
		}
	}

	total := len(res.Temporal)
	for i := range res.Temporal {
		res.Temporal[i].Position = i + 1
		res.Temporal[i].Total = total
	}

	if e.logger != nil {
		e.logger.Debugw("Temporal search complete", "year_term", yearTerm, "hits", total)
	}
	return res
}

// yearMatcher compiles a year term into a predicate. Returns nil for
// terms that cannot match anything (e.g. a bare "-").
func (e *Engine) yearMatcher(term string, strict bool) yearMatcher {
	if m := rangePattern.FindStringSubmatch(term); m != nil {
		a, err1 := strconv.Atoi(m[1])
		b, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return nil
		}
		lo, hi := chron.Year(a), chron.Year(b)
		if lo > hi {
			lo, hi = hi, lo
		}
		return func(y chron.Year) bool { return lo <= y && y <= hi }
	}

	if strings.HasSuffix(term, "*") {
		// A bare "*" is the empty prefix and matches every year; "-*"
		// matches every BC year.
		prefix := strings.TrimRight(term, "*")
		return func(y chron.Year) bool { return strings.HasPrefix(y.Decimal(), prefix) }
	}

	if term == "" || term == "-" {
		return nil
	}

	if strict {
		return func(y chron.Year) bool { return y.Decimal() == term }
	}
	return func(y chron.Year) bool { return strings.Contains(y.Decimal(), term) }
}
