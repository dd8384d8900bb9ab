package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/codelift/sandpath/config"
	"github.com/codelift/sandpath/errors"
)

// ConfigCmd manages the sandpath.toml configuration file.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sandpath configuration",
	Long: `Configuration is read from sandpath.toml, discovered by walking up
the directory tree from the working directory. Environment variables
with the SANDPATH_ prefix override file values.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <section.field> <value>",
	Short: "Set a configuration value",
	Long: `Set updates a single value in sandpath.toml, creating the file in
the current directory if none exists. Previous content is kept in
rotating .back1/.back2/.back3 backups.

Examples:
  sandpath config set resolve.metadata_prefix src
  sandpath config set resolve.fail_on_collision true
  sandpath config set output.format json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to render configuration")
	}
	fmt.Print(string(data))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	path := configPathForWrite()

	// Booleans are stored typed so viper unmarshals them cleanly.
	var value interface{} = raw
	switch raw {
	case "true":
		value = true
	case "false":
		value = false
	}

	if err := config.SetValue(path, key, value); err != nil {
		return err
	}

	// Re-validate the result so a bad value is caught immediately.
	if _, err := config.LoadFromFile(path); err != nil {
		return errors.Wrapf(err, "%s written but invalid", path)
	}

	config.Reset()
	fmt.Printf("Set %s = %v in %s\n", key, value, path)
	return nil
}

// configPathForWrite returns the discovered project config, or a new
// sandpath.toml in the current directory when none exists yet.
func configPathForWrite() string {
	v := config.GetViper()
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	dir, err := os.Getwd()
	if err != nil {
		return config.ConfigFileName
	}
	return filepath.Join(dir, config.ConfigFileName)
}
