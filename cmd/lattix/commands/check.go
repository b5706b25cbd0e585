package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/lattix/errors"
	"github.com/teranos/lattix/logger"
	"github.com/teranos/lattix/registry"
	"github.com/teranos/lattix/trait"
)

// CheckCmd validates a trait definition file without persisting anything.
var CheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a trait definition file and show the flattened layouts",
	Long: `Validate a YAML trait definition file.

Every declaration is built against the ones before it, so supertraits must
be declared ahead of the types that name them. On success the flattened
record layout of each type is printed: stored field names in order, with
data category, per-category slot and nullability index.

Examples:
  lattix check traits.yaml
  lattix check traits.yaml --quiet`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var checkQuietFlag bool

func init() {
	CheckCmd.Flags().BoolVarP(&checkQuietFlag, "quiet", "q", false, "Only report success or failure, skip the layouts")
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")

	ts, file, err := buildUniverseFromFile(args[0])
	if err != nil {
		pterm.Error.Printf("Validation failed: %v\n", err)
		return err
	}

	pterm.Success.Printf("%d trait types validated\n", len(file.Traits))

	if checkQuietFlag {
		return nil
	}

	pterm.Println()
	for _, decl := range file.Traits {
		def, err := ts.Lookup(decl.Name)
		if err != nil {
			return err
		}
		if logger.ShouldLogTrace(verbosity) {
			tracePaths(def)
		}
		printLayout(def)
	}
	return nil
}

// tracePaths logs a built type's full inheritance path enumeration, one line
// per path node in visitation order.
func tracePaths(def *trait.Definition) {
	numPaths := 0
	it := def.PathIterator()
	for it.HasNext() {
		p := it.Next()
		logger.Debugw("Inheritance path",
			logger.FieldTypeName, p.TypeName,
			logger.FieldPath, p.PathName,
		)
		numPaths++
	}
	logger.Debugw("Enumerated inheritance paths",
		logger.FieldName, def.Name(),
		logger.FieldNumPaths, numPaths,
		logger.FieldNumFields, def.Layout().NumFields(),
	)
}

// readDeclarationFile parses a YAML trait definition file.
func readDeclarationFile(path string) (*registry.DeclarationFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading definition file %s", path)
	}

	var file registry.DeclarationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing definition file %s", path)
	}
	if len(file.Traits) == 0 {
		return nil, errors.Newf("definition file %s declares no traits", path)
	}
	return &file, nil
}

// buildUniverseFromFile parses a YAML definition file and registers every
// declaration in file order against a fresh type system.
func buildUniverseFromFile(path string) (*registry.TypeSystem, *registry.DeclarationFile, error) {
	file, err := readDeclarationFile(path)
	if err != nil {
		return nil, nil, err
	}

	ts := registry.New()
	for _, decl := range file.Traits {
		if _, err := ts.RegisterDeclaration(decl); err != nil {
			return nil, nil, err
		}
	}
	return ts, file, nil
}

func printLayout(def *trait.Definition) {
	l := def.Layout()

	if supers := def.SuperTraits(); len(supers) > 0 {
		pterm.Info.Printf("%s (extends %v): %d fields\n", def.Name(), supers, l.NumFields())
	} else {
		pterm.Info.Printf("%s: %d fields\n", def.Name(), l.NumFields())
	}
	for _, field := range l.FieldNames() {
		attr, _ := l.Attribute(field)
		slot, _ := l.Slot(field)
		nullIdx, _ := l.NullIndex(field)
		pterm.Printf("  %-28s %-10s slot=%d null=%d\n", field, attr.Category, slot, nullIdx)
	}
	pterm.Println()
}
