// Package config loads and persists the sandpath configuration.
//
// Configuration is read with Viper from a sandpath.toml discovered by
// walking up the directory tree from the working directory, overlaid
// with SANDPATH_* environment variables. Saving goes through
// pelletier/go-toml with rotating backups.
package config

import (
	"github.com/codelift/sandpath/errors"
)

// Config represents the sandpath configuration
type Config struct {
	Resolve ResolveConfig `mapstructure:"resolve" toml:"resolve"`
	Output  OutputConfig  `mapstructure:"output" toml:"output"`
}

// ResolveConfig configures path resolution behavior
type ResolveConfig struct {
	// MetadataPrefix is applied to variants that do not declare their
	// own prefix (e.g. "src/"). Empty means no prefix.
	MetadataPrefix string `mapstructure:"metadata_prefix" toml:"metadata_prefix"`

	// FailOnCollision makes resolve exit non-zero when two files in a
	// variant flatten onto the same path.
	FailOnCollision bool `mapstructure:"fail_on_collision" toml:"fail_on_collision"`
}

// OutputConfig configures CLI output
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `mapstructure:"format" toml:"format"`

	// LogTheme selects the console color theme: everforest, gruvbox.
	LogTheme string `mapstructure:"log_theme" toml:"log_theme"`
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "text", "json":
	default:
		return errors.Newf("output.format must be \"text\" or \"json\", got %q", c.Output.Format)
	}

	switch c.Output.LogTheme {
	case "", "everforest", "gruvbox":
	default:
		return errors.Newf("output.log_theme must be \"everforest\" or \"gruvbox\", got %q", c.Output.LogTheme)
	}

	return nil
}
