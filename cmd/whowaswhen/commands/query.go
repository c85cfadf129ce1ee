package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/giovannicoppola/alfred-WhoWasWhen/alfred"
	"github.com/giovannicoppola/alfred-WhoWasWhen/config"
	"github.com/giovannicoppola/alfred-WhoWasWhen/logger"
	"github.com/giovannicoppola/alfred-WhoWasWhen/query"
)

// QueryCmd answers a search as Alfred Script Filter JSON
var QueryCmd = &cobra.Command{
	Use:   "query [terms...]",
	Short: "Search rulers by name, year, or succession",
	Long: `Search the ruler database and emit Alfred Script Filter JSON.

The query shape picks the mode: a numeric term (1509, 44BC as -44, 19*,
1500-1510) searches by year, anything else searches names, epithets,
notes, and titles. When the workflow navigates into a succession line
(alt on a result), the lineage environment variables select that mode
instead.

Results go to stdout; all diagnostics go to stderr.`,
	Args: cobra.ArbitraryArgs,
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	engine, err := loadEngine(cfg)
	if err != nil {
		// Alfred shows the error item; a non-zero exit would show nothing.
		return alfred.Render(os.Stdout, []alfred.Item{alfred.ErrorItem(err)})
	}

	formatter := &alfred.Formatter{
		Icons:  cfg.Display.Icons,
		Logger: logger.Logger,
	}

	input := strings.TrimSpace(strings.Join(args, " "))

	// The workflow sets mySource=ruler when the user presses alt on a
	// result to walk its succession line.
	if os.Getenv("mySource") == "ruler" {
		return runLineage(engine, formatter, input)
	}

	results := engine.Search(input)
	items := formatResults(formatter, results, input)
	if len(items) == 0 {
		items = []alfred.Item{alfred.NoResultsItem(input)}
	}
	return alfred.Render(os.Stdout, items)
}

// runLineage answers a succession-line navigation using the workflow
// variables set by the alt modifier.
func runLineage(engine *query.Engine, formatter *alfred.Formatter, input string) error {
	title := os.Getenv("myTitle")
	center, _ := strconv.Atoi(os.Getenv("mytitleProg"))
	rulerID, _ := strconv.Atoi(os.Getenv("myRulerID"))
	originalQuery := os.Getenv("originalQuery")
	if originalQuery == "" {
		originalQuery = input
	}

	entries, err := engine.Lineage(title, center, rulerID)
	if err != nil {
		return alfred.Render(os.Stdout, []alfred.Item{alfred.ErrorItem(err)})
	}

	items := formatter.FormatLineage(entries, originalQuery)
	if len(items) == 0 {
		items = []alfred.Item{alfred.NoResultsItem(title)}
	}
	return alfred.Render(os.Stdout, items)
}

// formatResults converts engine results to Alfred items by mode.
func formatResults(formatter *alfred.Formatter, results query.Results, input string) []alfred.Item {
	if results.Mode == query.ModeTemporal {
		yearTerm := temporalTerm(input)
		return formatter.FormatTemporal(results.Temporal, yearTerm, input)
	}

	items := formatter.FormatTextMatches(results.Text, input)
	items = append(items, formatter.FormatEvents(results.Events)...)
	return alfred.ApplyCounters(items)
}

// temporalTerm extracts the numeric token that drove a temporal search,
// for display echoing.
func temporalTerm(input string) string {
	for _, token := range strings.Fields(strings.ToLower(input)) {
		if len(token) > 0 && (token[0] == '-' || (token[0] >= '0' && token[0] <= '9') || token[0] == '*') {
			return token
		}
	}
	return input
}
