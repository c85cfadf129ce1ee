// Package config loads the WhoWasWhen configuration from TOML files and
// environment variables via Viper.
package config

import (
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Data     DataConfig     `mapstructure:"data"`
	Query    QueryConfig    `mapstructure:"query"`
	Display  DisplayConfig  `mapstructure:"display"`
}

// DatabaseConfig configures the SQLite database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DataConfig names the tab-separated source sheets.
type DataConfig struct {
	Rulers  string `mapstructure:"rulers"`  // rulers sheet path
	Periods string `mapstructure:"periods"` // reign periods sheet path
	Events  string `mapstructure:"events"`  // events sheet path (optional)
}

// QueryConfig configures query behavior.
type QueryConfig struct {
	// ShowEvents includes historical events in search results.
	ShowEvents bool `mapstructure:"show_events"`

	// ResultLimit caps db-level ruler searches. 0 means unlimited.
	ResultLimit int `mapstructure:"result_limit"`
}

// DisplayConfig configures result formatting.
type DisplayConfig struct {
	// Icons maps title names to icon file paths. Titles without an
	// entry render with the default icon.
	Icons map[string]string `mapstructure:"icons"`

	// Plurals overrides display plurals per title name. Merged over the
	// built-in table.
	Plurals map[string]string `mapstructure:"plurals"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "whowaswhen.db")

	// Source sheet defaults, matching the spreadsheet export names
	v.SetDefault("data.rulers", "rulers_data.tsv")
	v.SetDefault("data.periods", "periods_data.tsv")
	v.SetDefault("data.events", "events_data.tsv")

	// Query defaults
	v.SetDefault("query.show_events", true)
	v.SetDefault("query.result_limit", 0)
}

// GetDatabasePath returns the configured database path
func (c *Config) GetDatabasePath() string {
	if c.Database.Path == "" {
		return "whowaswhen.db" // Fallback default
	}
	return c.Database.Path
}
