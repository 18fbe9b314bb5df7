package config

// Config represents the complete configuration for glotscan. It is
// loaded from configuration files, environment variables, and
// command-line flags, in that order of increasing precedence.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Scan behavior
	Scan ScanConfig `mapstructure:"scan" yaml:"scan" json:"scan"`

	// Output formatting
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Domain rule tables
	Tables TablesConfig `mapstructure:"tables" yaml:"tables" json:"tables"`
}

// ScanConfig controls which artifacts are read and how much of them.
type ScanConfig struct {
	// MusicDir overrides the music folder to scan; empty means the
	// platform default (~/Music).
	MusicDir string `mapstructure:"music_dir" yaml:"music_dir" json:"music_dir"`

	// ExampleCap bounds the example labels kept per aggregated entry.
	// Zero means unlimited.
	ExampleCap int `mapstructure:"example_cap" yaml:"example_cap" json:"example_cap"`

	// HistoryLimit bounds the rows read per browser history database.
	// Zero means unlimited.
	HistoryLimit int `mapstructure:"history_limit" yaml:"history_limit" json:"history_limit"`

	// Sources restricts the scan to the named collectors (firefox,
	// chrome, steam, music-folder). Empty means all of them.
	Sources []string `mapstructure:"sources" yaml:"sources" json:"sources"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
}

// TablesConfig points at a replaceable domain-to-language rules file.
type TablesConfig struct {
	Path string `mapstructure:"path" yaml:"path" json:"path"`
}
