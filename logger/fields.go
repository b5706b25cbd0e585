package logger

// Standard field names for structured logging across Lattix. The minimal
// console encoder keys its display rules off these names, so call sites must
// use the constants rather than raw strings.
const (
	// Timing
	FieldDurationMS = "duration_ms"

	// Database
	FieldPath            = "path"
	FieldMigration       = "migration"
	FieldVersion         = "version"
	FieldWALMode         = "wal_mode"
	FieldForeignKeys     = "foreign_keys"
	FieldTotalMigrations = "total_migrations"

	// Trait types
	FieldName        = "name"        // Declaration or trait type name
	FieldTypeName    = "type"        // Type at a path node
	FieldNumFields   = "fields"      // Layout field count
	FieldNumPaths    = "paths"       // Inheritance path count
	FieldNumTypes    = "types"       // Types in a universe
	FieldAttributes  = "attributes"  // Attribute count
	FieldSupertraits = "supertraits" // Immediate supertrait count
)
