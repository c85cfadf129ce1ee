package commands

import (
	"fmt"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/config"
	"github.com/giovannicoppola/alfred-WhoWasWhen/db"
	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
	"github.com/giovannicoppola/alfred-WhoWasWhen/ingest"
	"github.com/giovannicoppola/alfred-WhoWasWhen/logger"
	"github.com/giovannicoppola/alfred-WhoWasWhen/query"
	"github.com/giovannicoppola/alfred-WhoWasWhen/store"
	"github.com/giovannicoppola/alfred-WhoWasWhen/yearindex"
)

// mergedPlurals layers config overrides over the built-in plural table.
func mergedPlurals(cfg *config.Config) map[string]string {
	plurals := catalog.DefaultPlurals()
	for title, plural := range cfg.Display.Plurals {
		plurals[title] = plural
	}
	return plurals
}

// buildFromSheets reads the TSV sheets named in the config and builds a
// fresh catalog and year index.
func buildFromSheets(cfg *config.Config) (*catalog.Catalog, *yearindex.Index, error) {
	rulerRows, err := ingest.ReadRulers(cfg.Data.Rulers, logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read rulers sheet")
	}
	reignRows, err := ingest.ReadReigns(cfg.Data.Periods, logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read periods sheet")
	}
	eventRows, err := ingest.ReadEvents(cfg.Data.Events, logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read events sheet")
	}

	c, err := catalog.Ingest(rulerRows, reignRows, eventRows, catalog.Options{
		Plurals: mergedPlurals(cfg),
		Logger:  logger.Logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return c, yearindex.Build(c), nil
}

// loadEngine restores the stored snapshot and stands up a query engine
// over it.
func loadEngine(cfg *config.Config) (*query.Engine, error) {
	database, err := db.OpenWithMigrations(cfg.GetDatabasePath(), logger.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	s := store.NewSQLStore(database, logger.Logger)
	rulerRows, reignRows, eventRows, err := s.LoadRows()
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	c, err := catalog.Ingest(rulerRows, reignRows, eventRows, catalog.Options{
		Plurals: mergedPlurals(cfg),
		Logger:  logger.Logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "rebuild catalog from snapshot")
	}

	return query.New(c, yearindex.Build(c), query.Options{
		IncludeEvents: cfg.Query.ShowEvents,
		Logger:        logger.Logger,
	}), nil
}
