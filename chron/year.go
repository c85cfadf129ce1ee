// Package chron provides signed-year arithmetic and period parsing for
// historical reign notations.
//
// Years are signed integers: BC years are negative, AD years positive,
// and there is no year zero — 1 BC immediately precedes AD 1. All
// boundary-crossing arithmetic in this package is explicit about that
// gap, so callers never have to special-case it.
package chron

import (
	"fmt"
	"strconv"
)

// Year is a calendar year in proleptic numbering with no year zero.
// Negative values are BC, positive values are AD. The zero value is
// not a valid year.
type Year int

// IsValid reports whether y denotes an actual calendar year.
func (y Year) IsValid() bool {
	return y != 0
}

// Next returns the year immediately after y, skipping year zero.
func (y Year) Next() Year {
	if y == -1 {
		return 1
	}
	return y + 1
}

// Prev returns the year immediately before y, skipping year zero.
func (y Year) Prev() Year {
	if y == 1 {
		return -1
	}
	return y - 1
}

// String formats the year for display: "44 BC" for negative years,
// plain digits for AD years.
func (y Year) String() string {
	if y < 0 {
		return fmt.Sprintf("%d BC", -int(y))
	}
	return strconv.Itoa(int(y))
}

// Decimal returns the raw signed decimal representation ("-44", "1509"),
// the form used for index keys and query-side matching.
func (y Year) Decimal() string {
	return strconv.Itoa(int(y))
}

// Period is an inclusive year interval with Start <= End. Periods are
// produced by ParsePeriod, which resolves descending and
// boundary-crossing notations to their min/max years.
type Period struct {
	Start Year
	End   Year
}

// Contains reports whether the year falls inside the inclusive interval.
func (p Period) Contains(y Year) bool {
	return p.Start <= y && y <= p.End
}

// Years enumerates every year in the interval in ascending order,
// skipping year zero.
func (p Period) Years() []Year {
	if p.Start > p.End {
		return nil
	}
	years := make([]Year, 0, int(p.End-p.Start)+1)
	for y := p.Start; y <= p.End; y = y.Next() {
		years = append(years, y)
		if y == p.End {
			break
		}
	}
	return years
}

// Span returns the number of calendar years in the interval, accounting
// for the missing year zero on BC/AD-crossing periods.
func (p Period) Span() int {
	n := int(p.End - p.Start + 1)
	if p.Start < 0 && p.End > 0 {
		n--
	}
	return n
}

// String formats the period for display: single years collapse to one
// value, ranges render as "start-end" with BC markers where needed.
func (p Period) String() string {
	if p.Start == p.End {
		return p.Start.String()
	}
	return fmt.Sprintf("%s-%s", p.Start, p.End)
}
