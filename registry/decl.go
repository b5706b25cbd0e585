package registry

// Declaration is the declarative form of one trait type, as written in a
// definition file or persisted in the declaration store. Order matters:
// declarations must list supertraits before the types that name them.
type Declaration struct {
	Name        string          `json:"name" yaml:"name"`
	SuperTraits []string        `json:"supertraits,omitempty" yaml:"supertraits,omitempty"`
	Attributes  []AttributeDecl `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// AttributeDecl declares one attribute by name and category name
// ("boolean", "int", "bigdecimal", ...).
type AttributeDecl struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
}

// DeclarationFile is the top-level shape of a YAML trait definition file.
type DeclarationFile struct {
	Traits []Declaration `json:"traits" yaml:"traits"`
}
