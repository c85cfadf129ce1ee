package chron

import (
	"strconv"
	"strings"

	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
)

// ParsePeriod normalizes a free-form reign notation into an inclusive
// Period with Start <= End.
//
// Recognized grammar:
//
//	"800"        single AD year
//	"912AD"      single year, explicit AD marker
//	"44BC"       single BC year
//	"1509-1547"  ascending AD range
//	"1981-95"    short-form end year, spliced onto the start's digits
//	"44BC-37BC"  BC range
//	"12-9BC"     boundary-crossing range, resolved to min/max
//
// Descending notations (including AD/BC boundary crossings stated in
// reverse order) are resolved to the min and max year of the sequence;
// callers that need every year of the interval expand Period.Years().
//
// The input is trimmed before parsing. Empty or malformed input returns
// an error wrapping errors.ErrParse, never a silent default.
func ParsePeriod(raw string) (Period, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Period{}, errors.NewParseError("empty period")
	}

	if !strings.Contains(trimmed, "-") {
		year, err := parseSingleYear(trimmed)
		if err != nil {
			return Period{}, err
		}
		return Period{Start: year, End: year}, nil
	}

	parts := strings.Split(trimmed, "-")
	if len(parts) != 2 {
		return Period{}, errors.NewParseError("period %q: expected a single year separator", raw)
	}

	start, err := parseStartYear(parts[0])
	if err != nil {
		return Period{}, errors.Wrapf(err, "period %q", raw)
	}

	end, err := parseEndYear(parts[1], start)
	if err != nil {
		return Period{}, errors.Wrapf(err, "period %q", raw)
	}

	// Descending notations, including BC/AD boundary crossings stated in
	// reverse order, reduce to their min and max for indexing.
	if start > end {
		start, end = end, start
	}
	return Period{Start: start, End: end}, nil
}

// parseSingleYear handles hyphen-free notations: bare numbers are AD,
// a BC suffix negates, an AD suffix is a no-op.
func parseSingleYear(token string) (Year, error) {
	switch {
	case strings.Contains(token, "BC"):
		n, err := parseYearDigits(strings.Replace(token, "BC", "", 1))
		if err != nil {
			return 0, err
		}
		return Year(-n), nil
	case strings.Contains(token, "AD"):
		n, err := parseYearDigits(strings.Replace(token, "AD", "", 1))
		if err != nil {
			return 0, err
		}
		return Year(n), nil
	default:
		n, err := parseYearDigits(token)
		if err != nil {
			return 0, err
		}
		return Year(n), nil
	}
}

// parseStartYear handles the left side of a hyphenated notation:
// BC-suffixed negates, anything else is a plain positive year.
func parseStartYear(token string) (Year, error) {
	if strings.Contains(token, "BC") {
		n, err := parseYearDigits(strings.Replace(token, "BC", "", 1))
		if err != nil {
			return 0, err
		}
		return Year(-n), nil
	}
	n, err := parseYearDigits(token)
	if err != nil {
		return 0, err
	}
	return Year(n), nil
}

// parseEndYear handles the right side of a hyphenated notation. A BC
// suffix negates independently of the left side; an AD suffix parses as
// positive; a bare token of one or two digits is a short form
// reconstructed on the start year's leading digits ("1981-95" => 1995,
// "44BC-37" => 37 BC); anything longer is a plain year.
func parseEndYear(token string, start Year) (Year, error) {
	switch {
	case strings.Contains(token, "BC"):
		n, err := parseYearDigits(strings.Replace(token, "BC", "", 1))
		if err != nil {
			return 0, err
		}
		return Year(-n), nil
	case strings.Contains(token, "AD"):
		n, err := parseYearDigits(strings.Replace(token, "AD", "", 1))
		if err != nil {
			return 0, err
		}
		return Year(n), nil
	case len(token) <= 2:
		return spliceShortForm(token, start)
	default:
		n, err := parseYearDigits(token)
		if err != nil {
			return 0, err
		}
		return Year(n), nil
	}
}

// spliceShortForm reconstructs a short-form end year by replacing the
// trailing digits of the start year's signed decimal form. The sign
// travels with the prefix, so "44BC-37" resolves to 37 BC.
func spliceShortForm(token string, start Year) (Year, error) {
	if _, err := strconv.Atoi(token); err != nil {
		return 0, errors.NewParseError("short-form end year %q is not numeric", token)
	}
	startStr := start.Decimal()
	prefix := ""
	if len(token) < len(startStr) {
		prefix = startStr[:len(startStr)-len(token)]
	}
	n, err := strconv.Atoi(prefix + token)
	if err != nil {
		return 0, errors.NewParseError("short-form end year %q cannot be spliced onto %q", token, startStr)
	}
	if n == 0 {
		return 0, errors.NewParseError("year zero does not exist")
	}
	return Year(n), nil
}

// parseYearDigits converts a numeric year token, rejecting year zero.
func parseYearDigits(token string) (int, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.NewParseError("missing year")
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.NewParseError("year %q is not numeric", token)
	}
	if n == 0 {
		return 0, errors.NewParseError("year zero does not exist")
	}
	return n, nil
}
