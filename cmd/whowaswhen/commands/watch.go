package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/giovannicoppola/alfred-WhoWasWhen/config"
	"github.com/giovannicoppola/alfred-WhoWasWhen/db"
	"github.com/giovannicoppola/alfred-WhoWasWhen/logger"
	"github.com/giovannicoppola/alfred-WhoWasWhen/query"
	"github.com/giovannicoppola/alfred-WhoWasWhen/store"
	"github.com/giovannicoppola/alfred-WhoWasWhen/watcher"
)

// WatchCmd rebuilds the database whenever the source sheets change
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the database when the TSV sheets change",
	Long: `Watch the source sheets and rebuild on change.

Runs an initial build, then watches the rulers, periods, and events
sheets. Edits are debounced; each settled change triggers a full rebuild
that is swapped in atomically and saved to SQLite. A rebuild that fails
keeps the previous build serving.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.OpenWithMigrations(cfg.GetDatabasePath(), logger.Logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()
	s := store.NewSQLStore(database, logger.Logger)

	holder := &watcher.Holder{}

	rebuild := func() error {
		c, idx, err := buildFromSheets(cfg)
		if err != nil {
			return err
		}
		holder.Store(&watcher.Snapshot{
			Catalog: c,
			Index:   idx,
			Engine: query.New(c, idx, query.Options{
				IncludeEvents: cfg.Query.ShowEvents,
				Logger:        logger.Logger,
			}),
		})
		return s.SaveSnapshot(c, idx)
	}

	pterm.DefaultHeader.WithFullWidth().Printf("WhoWasWhen - Watch Mode")
	pterm.Println()

	if err := rebuild(); err != nil {
		pterm.Error.Printf("Initial build failed: %v", err)
		return err
	}
	snap := holder.Load()
	pterm.Success.Printf("Initial build: %d rulers, %d reigns, %d indexed years",
		len(snap.Catalog.Rulers()), len(snap.Catalog.Reigns()), snap.Index.Len())

	sw, err := watcher.NewSheetWatcher(cfg.Data.Rulers, cfg.Data.Periods, cfg.Data.Events)
	if err != nil {
		return err
	}
	defer sw.Stop()

	sw.OnReload(func() error {
		if err := rebuild(); err != nil {
			pterm.Error.Printf("Rebuild failed, keeping previous build: %v", err)
			return err
		}
		snap := holder.Load()
		pterm.Success.Printf("Rebuilt: %d rulers, %d reigns, %d indexed years",
			len(snap.Catalog.Rulers()), len(snap.Catalog.Reigns()), snap.Index.Len())
		return nil
	})
	sw.Start()

	pterm.Info.Printf("Watching %s, %s, %s", cfg.Data.Rulers, cfg.Data.Periods, cfg.Data.Events)
	pterm.Info.Println("Press Ctrl+C to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	pterm.Println()
	pterm.Info.Println("Stopping watcher")
	return nil
}
