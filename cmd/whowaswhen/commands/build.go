package commands

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/giovannicoppola/alfred-WhoWasWhen/config"
	"github.com/giovannicoppola/alfred-WhoWasWhen/db"
	"github.com/giovannicoppola/alfred-WhoWasWhen/display"
	"github.com/giovannicoppola/alfred-WhoWasWhen/logger"
	"github.com/giovannicoppola/alfred-WhoWasWhen/store"
)

// BuildCmd ingests the TSV sheets and writes the SQLite snapshot
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the database from the TSV sheets",
	Long: `Build the ruler database from the spreadsheet exports.

Reads the rulers, periods, and events sheets, parses every reign period,
derives the per-year index, and saves the whole build to SQLite in one
transaction. Rows that fail validation are skipped and reported, never
fatal; the build only fails if nothing valid survives.`,
	RunE: runBuild,
}

func init() {
	BuildCmd.Flags().Bool("json", false, "Output build summary in JSON format")
}

// buildSummary is the machine-readable build report.
type buildSummary struct {
	Rulers        int      `json:"rulers"`
	Titles        int      `json:"titles"`
	Reigns        int      `json:"reigns"`
	Events        int      `json:"events"`
	Years         int      `json:"years"`
	SkippedRulers int      `json:"skipped_rulers"`
	SkippedReigns int      `json:"skipped_reigns"`
	SkippedEvents int      `json:"skipped_events"`
	Skips         []string `json:"skips,omitempty"`
	DurationMS    int64    `json:"duration_ms"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	useJSON := display.ShouldOutputJSON(cmd)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if !useJSON {
		pterm.DefaultHeader.WithFullWidth().Printf("WhoWasWhen - Database Build")
		pterm.Println()
		pterm.Info.Printf("Rulers sheet:  %s", cfg.Data.Rulers)
		pterm.Info.Printf("Periods sheet: %s", cfg.Data.Periods)
		pterm.Info.Printf("Events sheet:  %s", cfg.Data.Events)
		pterm.Println()
	}

	var spinner *pterm.SpinnerPrinter
	if !useJSON {
		spinner, _ = pterm.DefaultSpinner.Start("Parsing sheets and building the year index...")
	}

	startTime := time.Now()

	c, idx, err := buildFromSheets(cfg)
	if err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		if !useJSON {
			pterm.Error.Printf("Build failed: %v", err)
		}
		return err
	}

	database, err := db.OpenWithMigrations(cfg.GetDatabasePath(), logger.Logger)
	if err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if err := store.NewSQLStore(database, logger.Logger).SaveSnapshot(c, idx); err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		return err
	}

	if spinner != nil {
		spinner.Stop()
	}

	diags := c.Diagnostics()
	summary := buildSummary{
		Rulers:        len(c.Rulers()),
		Titles:        len(c.Titles()),
		Reigns:        len(c.Reigns()),
		Events:        len(c.Events()),
		Years:         idx.Len(),
		SkippedRulers: diags.SkippedRulers,
		SkippedReigns: diags.SkippedReigns,
		SkippedEvents: diags.SkippedEvents,
		Skips:         diags.Messages,
		DurationMS:    time.Since(startTime).Milliseconds(),
	}

	if useJSON {
		return display.OutputJSON(summary)
	}

	pterm.Success.Printf("Database built in %s", time.Since(startTime).Round(time.Millisecond))
	pterm.Println()
	pterm.Info.Printf("Rulers: %d  Titles: %d  Reigns: %d  Events: %d  Years: %d",
		summary.Rulers, summary.Titles, summary.Reigns, summary.Events, summary.Years)

	if diags.SkippedRulers+diags.SkippedReigns+diags.SkippedEvents > 0 {
		pterm.Println()
		pterm.Warning.Printf("Skipped rows: %d rulers, %d reigns, %d events",
			diags.SkippedRulers, diags.SkippedReigns, diags.SkippedEvents)
		for _, msg := range diags.Messages {
			pterm.Warning.Println("  " + msg)
		}
	}
	return nil
}
