package config

import (
	"fmt"
	"os"
	"slices"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var validFormats = []string{FormatText, FormatJSON}

var validSources = []string{"firefox", "chrome", "steam", "music-folder"}

// DefaultConfig returns the configuration used when no file, env var,
// or flag overrides anything: a full scan, three example labels per
// entry (the classic report shows three), text output to stdout.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Scan: ScanConfig{
			ExampleCap: 3,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if !slices.Contains(validFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q (must be one of %v)", c.Output.Format, validFormats)
	}
	if c.Scan.ExampleCap < 0 {
		return fmt.Errorf("scan.example_cap must not be negative, got %d", c.Scan.ExampleCap)
	}
	if c.Scan.HistoryLimit < 0 {
		return fmt.Errorf("scan.history_limit must not be negative, got %d", c.Scan.HistoryLimit)
	}
	for _, source := range c.Scan.Sources {
		if !slices.Contains(validSources, source) {
			return fmt.Errorf("unknown scan source %q (must be one of %v)", source, validSources)
		}
	}
	if c.Tables.Path != "" {
		if _, err := os.Stat(c.Tables.Path); err != nil {
			return fmt.Errorf("tables file %s: %w", c.Tables.Path, err)
		}
	}
	return nil
}
