package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/giovannicoppola/alfred-WhoWasWhen/alfred"
	"github.com/giovannicoppola/alfred-WhoWasWhen/config"
	"github.com/giovannicoppola/alfred-WhoWasWhen/db"
	"github.com/giovannicoppola/alfred-WhoWasWhen/display"
	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
	"github.com/giovannicoppola/alfred-WhoWasWhen/logger"
	"github.com/giovannicoppola/alfred-WhoWasWhen/store"
)

// DbCmd represents the db (database) command
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the WhoWasWhen database",
	Long: `Manage database operations.

Examples:
  whowaswhen db stats             # Show record counts and year span
  whowaswhen db search henry      # Search stored rulers directly`,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database statistics",
	Long:  "Display record counts per table and the indexed year span",
	RunE:  runDbStats,
}

var dbSearchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search stored rulers",
	Long:  "Search rulers in the SQLite snapshot directly, without loading the full catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDbSearch,
}

var searchLimitFlag int

func init() {
	DbCmd.AddCommand(dbStatsCmd)
	DbCmd.AddCommand(dbSearchCmd)
	dbStatsCmd.Flags().Bool("json", false, "Output statistics in JSON format")
	dbSearchCmd.Flags().Bool("json", false, "Output results in JSON format")
	dbSearchCmd.Flags().IntVar(&searchLimitFlag, "limit", 20, "Maximum number of rulers to show")
}

func openStore(cfg *config.Config) (*store.SQLStore, func(), error) {
	database, err := db.OpenWithMigrations(cfg.GetDatabasePath(), logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open database")
	}
	return store.NewSQLStore(database, logger.Logger), func() { database.Close() }, nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	s, closeDB, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := s.Stats()
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(stats)
	}

	pterm.DefaultHeader.WithFullWidth().Printf("WhoWasWhen - Database Statistics")
	pterm.Println()
	pterm.Info.Printf("Database Path: %s", cfg.GetDatabasePath())
	pterm.Println()
	fmt.Printf("Rulers:  %s\n", alfred.FormatNumber(stats.Rulers))
	fmt.Printf("Titles:  %s\n", alfred.FormatNumber(stats.Titles))
	fmt.Printf("Reigns:  %s\n", alfred.FormatNumber(stats.Reigns))
	fmt.Printf("Events:  %s\n", alfred.FormatNumber(stats.Events))
	fmt.Printf("Years:   %s\n", alfred.FormatNumber(stats.Years))
	if stats.Years > 0 {
		fmt.Printf("Span:    %d to %d\n", stats.EarliestYear, stats.LatestYear)
	}
	return nil
}

func runDbSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	s, closeDB, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	input := strings.Join(args, " ")
	rows, err := s.SearchRulers(input, searchLimitFlag)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(rows)
	}

	if len(rows) == 0 {
		pterm.Info.Printf("No rulers match %q", input)
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Personal Name", "Epithet"}}
	for _, r := range rows {
		tableData = append(tableData, []string{r.RulerID, r.Name, r.PersonalName, r.Epithet})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
