package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giovannicoppola/alfred-WhoWasWhen/cmd/whowaswhen/commands"
	"github.com/giovannicoppola/alfred-WhoWasWhen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "whowaswhen",
	Short: "WhoWasWhen - Who ruled what, when",
	Long: `WhoWasWhen - historical rulers by name, year, and succession.

Build a searchable database from the curated spreadsheet exports, then
query it by ruler name, by year (exact, wildcard, or range), or walk a
title's line of succession. Results are emitted as Alfred Script Filter
JSON on stdout.

Examples:
  whowaswhen build                    # Ingest the TSV sheets into SQLite
  whowaswhen query henry viii         # Free-text search
  whowaswhen query 1509               # Who was active in 1509
  whowaswhen query pope 19*           # Popes of the 1900s
  whowaswhen query 1500-1510          # Everyone active in a range
  whowaswhen db stats                 # Show database statistics
  whowaswhen watch                    # Rebuild on sheet changes`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs on stderr")
	rootCmd.PersistentFlags().Bool("json", false, "Output results in JSON format")

	rootCmd.AddCommand(commands.BuildCmd)
	rootCmd.AddCommand(commands.QueryCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
