package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codelift/sandpath/cmd/sandpath/commands"
	"github.com/codelift/sandpath/config"
	"github.com/codelift/sandpath/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sandpath",
	Short: "sandpath - Flat virtual-path resolution for demo variants",
	Long: `sandpath resolves demo variants into flat virtual file trees.

A variant is a main source file plus the extra files its relative
imports declare. sandpath assigns every file a single root-relative
path such that all original imports still resolve after the set is
flattened into one sandbox project.

Available commands:
  resolve - Resolve a manifest's variants and print their paths
  check   - Report flat-path collisions in a manifest
  config  - Manage sandpath configuration
  version - Show version information

Examples:
  sandpath resolve demos.yaml            # Resolve all variants
  sandpath resolve demos.yaml -f json    # Machine-readable output
  sandpath resolve demos.yaml --watch    # Re-resolve on change
  sandpath check demos.json              # Collision report only
  sandpath config show                   # Show effective configuration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")

		if err := logger.InitializeWithVerbosity(jsonLogs, verbosity+logger.VerbosityInfo); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		// Theme comes from config when available; env var wins inside
		// the logger itself.
		if cfg, err := config.Load(); err == nil && cfg.Output.LogTheme != "" {
			logger.SetTheme(cfg.Output.LogTheme)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs instead of console output")

	rootCmd.AddCommand(commands.ResolveCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
