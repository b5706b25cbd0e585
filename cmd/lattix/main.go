package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/lattix/cmd/lattix/commands"
	"github.com/teranos/lattix/logger"
)

var rootCmd = &cobra.Command{
	Use:   "lattix",
	Short: "Lattix - Trait type system and composition engine",
	Long: `Lattix - Multiple-inheritance trait composition and typed records.

Lattix builds trait types from declarative definitions, flattens their
inheritance hierarchies into physical record layouts, and persists
declarations so a type universe can be rebuilt by replay.

Available commands:
  check   - Validate a trait definition file and show the flattened layouts
  db      - Manage the trait declaration store
  version - Show version information

Examples:
  lattix check traits.yaml      # Validate definitions and show layouts
  lattix db init                # Create the declaration store
  lattix db add traits.yaml     # Validate and persist definitions
  lattix db ls                  # List stored declarations`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithVerbosity(false, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if verbosity > logger.VerbosityInfo {
			logger.Debugf("Verbosity: %s", logger.LevelName(verbosity))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
