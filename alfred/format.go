package alfred

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/query"
)

// DefaultIcon is used for titles without a configured icon.
const DefaultIcon = "icons/crown.png"

// eventIconKey selects the icon for event items from the icon table.
const eventIconKey = "event"

// Formatter turns query results into Alfred items.
type Formatter struct {
	// Icons maps title names to icon paths. Unlisted titles get
	// DefaultIcon; no filesystem probing is done.
	Icons map[string]string

	Logger *zap.SugaredLogger
}

// FormatNumber adds thousand separators to numbers
func FormatNumber(n int) string {
	str := strconv.Itoa(n)
	negative := strings.HasPrefix(str, "-")
	if negative {
		str = str[1:]
	}
	if len(str) > 3 {
		var out []byte
		for i := 0; i < len(str); i++ {
			if i > 0 && (len(str)-i)%3 == 0 {
				out = append(out, ',')
			}
			out = append(out, str[i])
		}
		str = string(out)
	}
	if negative {
		return "-" + str
	}
	return str
}

// counterPrefix prepends the "i/N" position counter to a subtitle.
func counterPrefix(position, total int, subtitle string) string {
	counter := fmt.Sprintf("%s/%s", FormatNumber(position), FormatNumber(total))
	if subtitle == "" {
		return counter
	}
	return counter + " " + subtitle
}

// ApplyCounters prefixes every subtitle with its "i/N" position over
// the combined list, so ruler and event items share one numbering.
func ApplyCounters(items []Item) []Item {
	total := len(items)
	for i := range items {
		items[i].Subtitle = counterPrefix(i+1, total, items[i].Subtitle)
	}
	return items
}

func (f *Formatter) iconFor(key string) map[string]string {
	if path, ok := f.Icons[key]; ok && path != "" {
		return map[string]string{"path": path}
	}
	return map[string]string{"path": DefaultIcon}
}

// wikiLink prefers the curated link and falls back to the English
// Wikipedia article for the name.
func wikiLink(link, name string) string {
	if link != "" {
		return link
	}
	return "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(name, " ", "_")
}

// rulerMods builds the shared modifier set for an item backed by a
// ruler. startYear/endYear are the travel targets; the alt modifier
// carries the workflow variables that open the succession line.
func rulerMods(ruler *catalog.Ruler, reign *catalog.Reign, startYear, endYear string, fullInfo, originalQuery string) map[string]Mod {
	plural := reign.Title.PluralLabel()
	return map[string]Mod{
		"cmd": {
			Valid:     true,
			Arg:       endYear,
			Subtitle:  "travel to " + endYear,
			Variables: map[string]string{"mySource": ""},
		},
		"ctrl": {
			Valid:     true,
			Arg:       startYear,
			Subtitle:  "travel to " + startYear,
			Variables: map[string]string{"mySource": ""},
		},
		"alt": {
			Valid:    true,
			Arg:      plural,
			Subtitle: "Show all " + plural,
			Variables: map[string]string{
				"mySource":      "ruler",
				"myRulerID":     strconv.Itoa(ruler.ID),
				"myTitle":       reign.Title.Name,
				"mytitleProg":   strconv.Itoa(reign.Ordinal),
				"originalQuery": originalQuery,
			},
		},
		"cmd+alt": {
			Valid:    true,
			Arg:      originalQuery,
			Subtitle: "Go back to main search",
			Variables: map[string]string{
				"mySource":      "",
				"myRulerID":     "",
				"mytitleProg":   "",
				"myTitle":       "",
				"restoredQuery": originalQuery,
			},
		},
		"shift": {
			Valid:    true,
			Arg:      fullInfo,
			Subtitle: "Copy full info to clipboard",
		},
	}
}

// FormatTextMatches renders free-text search hits, one item per ruler.
// Subtitles carry no position counters; callers apply ApplyCounters
// over the combined ruler+event list.
func (f *Formatter) FormatTextMatches(matches []query.TextMatch, originalQuery string) []Item {
	items := make([]Item, 0, len(matches))

	for _, m := range matches {
		ruler := m.Ruler

		epithet := ""
		if ruler.Epithet != "" {
			epithet = fmt.Sprintf(" (%s)", ruler.Epithet)
		}
		title := ruler.Name + epithet

		var titleParts []string
		for _, tp := range m.MatchedTitles {
			titleParts = append(titleParts, fmt.Sprintf("%s (%s)", tp.Title, tp.Period))
		}
		subtitle := strings.Join(titleParts, "; ")
		if ruler.PersonalName != "" {
			subtitle = ruler.PersonalName + " — " + subtitle
		}
		if m.Notes != "" {
			subtitle = subtitle + " " + m.Notes
		}

		item := Item{
			Title:    title,
			Subtitle: subtitle,
			Valid:    true,
			Arg:      wikiLink(ruler.Link, ruler.Name),
			Icon:     f.iconFor(""),
		}

		// A ruler can carry zero reigns (every reign row skipped or the
		// sheet never listed one); there is no period to travel to then.
		if len(ruler.Reigns) > 0 {
			first := ruler.Reigns[0]
			earliest, latest := first.Period.Start, first.Period.End
			for _, reign := range ruler.Reigns {
				if reign.Period.Start < earliest {
					earliest = reign.Period.Start
				}
				if reign.Period.End > latest {
					latest = reign.Period.End
				}
			}
			item.Mods = rulerMods(ruler, first,
				earliest.Decimal(), latest.Decimal(),
				fmt.Sprintf("%s: %s", title, subtitle), originalQuery)
			item.Icon = f.iconFor(first.Title.Name)
		}

		items = append(items, item)
	}
	return items
}

// FormatEvents renders event hits from a text search, appended after
// the ruler items.
func (f *Formatter) FormatEvents(events []*catalog.Event) []Item {
	items := make([]Item, 0, len(events))
	for _, event := range events {
		items = append(items, Item{
			Title:    fmt.Sprintf("%s (%s)", event.Name, event.Period),
			Subtitle: event.Notes,
			Valid:    true,
			Arg:      wikiLink(event.Link, event.Name),
			Icon:     f.iconFor(eventIconKey),
		})
	}
	return items
}

// FormatTemporal renders year-search hits. yearTerm is echoed verbatim
// as the item prefix for wildcard and range queries; exact queries show
// the matched year in BC/AD form.
func (f *Formatter) FormatTemporal(results []query.TemporalResult, yearTerm, originalQuery string) []Item {
	// Wildcards and ranges cover many years; echo the term instead of a
	// single resolved year. The leading character is skipped so a BC
	// sign does not read as a range.
	echoTerm := strings.Contains(yearTerm, "*") ||
		(len(yearTerm) > 1 && strings.Contains(yearTerm[1:], "-"))

	items := make([]Item, 0, len(results))
	for _, hit := range results {
		yearString := hit.Year.String()
		if echoTerm {
			yearString = yearTerm
		}

		if hit.Event != nil {
			event := hit.Event
			items = append(items, Item{
				Title:    fmt.Sprintf("%s: %s (%s)", yearString, event.Name, event.Period),
				Subtitle: counterPrefix(hit.Position, hit.Total, event.Notes),
				Valid:    true,
				Arg:      wikiLink(event.Link, event.Name),
				Icon:     f.iconFor(eventIconKey),
			})
			continue
		}

		reign := hit.Reign
		ruler := reign.Ruler

		epithet := ""
		if ruler.Epithet != "" {
			epithet = fmt.Sprintf(" (%s)", ruler.Epithet)
		}
		title := fmt.Sprintf("%s: %s%s (%s)", yearString, ruler.Name, epithet, reign.Period)

		ordinal := fmt.Sprintf("(%s/%s)", FormatNumber(reign.Ordinal), FormatNumber(reign.Title.MaxOrdinal))
		subtitle := fmt.Sprintf("%s %s %s", reign.Title.Name, ordinal, reign.Notes)
		if ruler.PersonalName != "" {
			subtitle = ruler.PersonalName + ", " + subtitle
		}
		subtitle = counterPrefix(hit.Position, hit.Total, strings.TrimSpace(subtitle))

		items = append(items, Item{
			Title:    title,
			Subtitle: subtitle,
			Valid:    true,
			Arg:      wikiLink(ruler.Link, ruler.Name),
			Mods: rulerMods(ruler, reign,
				reign.Period.Start.Decimal(), reign.Period.End.Decimal(),
				fmt.Sprintf("%s: %s", title, subtitle), originalQuery),
			Icon: f.iconFor(reign.Title.Name),
		})
	}
	return items
}

// FormatLineage renders a succession window. The highlighted entry is
// starred so the caller can find where they navigated from.
func (f *Formatter) FormatLineage(entries []query.LineageEntry, originalQuery string) []Item {
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		reign := entry.Reign
		ruler := reign.Ruler

		star := ""
		if entry.Highlighted {
			star = " 🌟"
		}
		title := fmt.Sprintf("%s (%s)%s", ruler.Name, reign.Period, star)

		counter := fmt.Sprintf("%s/%s", FormatNumber(reign.Ordinal), FormatNumber(reign.Title.MaxOrdinal))
		var subtitle string
		if ruler.PersonalName != "" {
			subtitle = fmt.Sprintf("%s %s, %s %s", counter, ruler.PersonalName, reign.Title.Name, reign.Notes)
		} else {
			subtitle = fmt.Sprintf("%s %s %s", counter, reign.Title.Name, reign.Notes)
		}

		items = append(items, Item{
			Title:    title,
			Subtitle: strings.TrimSpace(subtitle),
			Valid:    true,
			Arg:      wikiLink(ruler.Link, ruler.Name),
			Mods: rulerMods(ruler, reign,
				reign.Period.Start.Decimal(), reign.Period.End.Decimal(),
				fmt.Sprintf("%s: %s", title, subtitle), originalQuery),
			Icon: f.iconFor(reign.Title.Name),
		})
	}

	if f.Logger != nil {
		f.Logger.Debugw("Lineage formatted", "items", len(items))
	}
	return items
}
