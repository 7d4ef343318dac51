package config

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration for a billscrub run.
type Config struct {
	FilePath   string // billing table or note document to audit
	RulesPath  string // optional YAML threshold overrides
	OutPath    string // optional issue report export (.csv or .parquet)
	LogFormat  string // "text" or "json"
	QuietDrops bool   // mute warnings for dropped rows / skipped segments
}

// Validate checks required fields and returns an error if the config is
// invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if c.RulesPath != "" {
		if _, err := os.Stat(c.RulesPath); err != nil {
			return fmt.Errorf("rules file not accessible: %w", err)
		}
	}
	return nil
}
