package commands

import (
	"database/sql"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/lattix/am"
	"github.com/teranos/lattix/db"
	"github.com/teranos/lattix/errors"
	"github.com/teranos/lattix/logger"
	"github.com/teranos/lattix/registry"
)

// DbCmd manages the on-disk trait declaration store.
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the trait declaration store",
	Long: `Manage the SQLite store that persists trait declarations.

Declarations are stored in registration order so the type universe can be
rebuilt by replaying them.

Examples:
  lattix db init                # Create the store and apply migrations
  lattix db add traits.yaml     # Validate and persist definitions
  lattix db ls                  # List stored declarations
  lattix db ls --layout         # Also show the flattened layouts`,
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the declaration store and apply migrations",
	RunE:  runDbInit,
}

var dbAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Validate a definition file and persist its declarations",
	Long: `Validate a YAML trait definition file against the stored universe and
persist its declarations. Every declaration must build cleanly against the
types already stored plus the ones earlier in the file; nothing is persisted
when validation fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runDbAdd,
}

var dbLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List stored trait declarations",
	RunE:  runDbLs,
}

var lsLayoutFlag bool

func init() {
	DbCmd.AddCommand(dbInitCmd)
	DbCmd.AddCommand(dbAddCmd)
	DbCmd.AddCommand(dbLsCmd)

	dbLsCmd.Flags().BoolVar(&lsLayoutFlag, "layout", false, "Show the flattened layout of each type")
}

// openStore opens the configured declaration store with migrations applied.
func openStore() (*sql.DB, *registry.Store, string, error) {
	path, err := am.GetDatabasePath()
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "resolving database path")
	}

	database, err := db.OpenWithMigrations(path, logger.Logger)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "opening declaration store")
	}

	return database, registry.NewStore(database, logger.Logger), path, nil
}

func runDbInit(cmd *cobra.Command, args []string) error {
	database, _, path, err := openStore()
	if err != nil {
		pterm.Error.Printf("Failed to initialize store: %v\n", err)
		return err
	}
	defer database.Close()

	pterm.Success.Printf("Declaration store ready at %s\n", path)
	return nil
}

func runDbAdd(cmd *cobra.Command, args []string) error {
	database, store, _, err := openStore()
	if err != nil {
		pterm.Error.Printf("Failed to open store: %v\n", err)
		return err
	}
	defer database.Close()

	// Rebuild the stored universe first so new declarations can extend it.
	ts, err := store.Load()
	if err != nil {
		pterm.Error.Printf("Failed to load stored universe: %v\n", err)
		return err
	}

	data, err := readDeclarationFile(args[0])
	if err != nil {
		pterm.Error.Printf("Failed to read definitions: %v\n", err)
		return err
	}

	// Validate everything before persisting anything.
	for _, decl := range data.Traits {
		if _, err := ts.RegisterDeclaration(decl); err != nil {
			pterm.Error.Printf("Validation failed: %v\n", err)
			return err
		}
	}
	for _, decl := range data.Traits {
		if err := store.Save(decl); err != nil {
			pterm.Error.Printf("Failed to persist %s: %v\n", decl.Name, err)
			return err
		}
	}

	pterm.Success.Printf("Stored %d trait types (%d total in universe)\n", len(data.Traits), ts.Len())
	return nil
}

func runDbLs(cmd *cobra.Command, args []string) error {
	database, store, path, err := openStore()
	if err != nil {
		pterm.Error.Printf("Failed to open store: %v\n", err)
		return err
	}
	defer database.Close()

	decls, err := store.List()
	if err != nil {
		pterm.Error.Printf("Failed to list declarations: %v\n", err)
		return err
	}

	if len(decls) == 0 {
		pterm.Info.Printf("No trait declarations stored in %s\n", path)
		return nil
	}

	pterm.Info.Printf("%d trait declarations in %s\n", len(decls), path)
	pterm.Println()

	if !lsLayoutFlag {
		for _, decl := range decls {
			if len(decl.SuperTraits) > 0 {
				pterm.Printf("  %s (extends %v): %d attributes\n", decl.Name, decl.SuperTraits, len(decl.Attributes))
			} else {
				pterm.Printf("  %s: %d attributes\n", decl.Name, len(decl.Attributes))
			}
		}
		return nil
	}

	ts, err := store.Load()
	if err != nil {
		pterm.Error.Printf("Failed to rebuild universe: %v\n", err)
		return err
	}
	for _, def := range ts.All() {
		printLayout(def)
	}
	return nil
}
