// Package am manages the Lattix core configuration ("I am").
//
// Configuration merges, in precedence order: defaults, the user config file
// (~/.lattix/config.yaml), a project config.yaml found by walking up from the
// working directory, and LATTIX_* environment variables.
package am

// Config represents the core Lattix configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig configures the SQLite trait declaration store
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig configures log output
type LogConfig struct {
	Theme string `mapstructure:"theme"` // Color theme: gruvbox, everforest
	JSON  bool   `mapstructure:"json"`  // Structured JSON output instead of console format
}

// DefaultDirPermissions is used when creating the user config directory.
const DefaultDirPermissions = 0o755
