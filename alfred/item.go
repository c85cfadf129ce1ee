// Package alfred renders query results as Alfred Script Filter JSON.
// The item layout, modifier keys, and workflow variables form the
// contract with the surrounding workflow: cmd/ctrl travel to a reign's
// end/start year, alt opens the succession line, cmd+alt restores the
// previous search, shift copies the full entry.
package alfred

import (
	"encoding/json"
	"io"

	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
)

// Result is the top-level Script Filter payload.
type Result struct {
	Items []Item `json:"items"`
}

// Item is a single row in the Alfred result list.
type Item struct {
	Title     string                 `json:"title"`
	Subtitle  string                 `json:"subtitle"`
	Valid     bool                   `json:"valid"`
	Arg       string                 `json:"arg"`
	Mods      map[string]Mod         `json:"mods,omitempty"`
	Icon      map[string]string      `json:"icon,omitempty"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// Mod is the behavior of an item under a modifier key.
type Mod struct {
	Valid     bool              `json:"valid"`
	Arg       string            `json:"arg"`
	Subtitle  string            `json:"subtitle"`
	Variables map[string]string `json:"variables,omitempty"`
}

// Render writes the items as Script Filter JSON. Alfred reads this from
// stdout; everything else the program prints must go to stderr.
func Render(w io.Writer, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(Result{Items: items}); err != nil {
		return errors.Wrap(err, "encode result")
	}
	return nil
}

// NoResultsItem is shown when a search matches nothing.
func NoResultsItem(query string) Item {
	return Item{
		Title:    "No results for \"" + query + "\"",
		Subtitle: "Try a name, a title, or a year (e.g. 1509, 44BC, 19*, 1500-1510)",
		Valid:    false,
		Icon:     map[string]string{"path": "icons/sad.png"},
	}
}

// ErrorItem surfaces a failure inside Alfred instead of silence.
func ErrorItem(err error) Item {
	return Item{
		Title:    "WhoWasWhen hit a problem",
		Subtitle: err.Error(),
		Valid:    false,
		Icon:     map[string]string{"path": "icons/warning.png"},
	}
}
