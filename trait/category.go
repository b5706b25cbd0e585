package trait

import (
	"github.com/teranos/lattix/errors"
)

// Category identifies the data category of an attribute. The set is closed:
// exactly NumCategories kinds are recognized, and every consumer that sizes
// per-category storage fails loudly on anything else rather than guessing a
// slot.
type Category int

const (
	CategoryBoolean Category = iota
	CategoryByte
	CategoryShort
	CategoryInt
	CategoryLong
	CategoryFloat
	CategoryDouble
	CategoryBigInt
	CategoryBigDecimal
	CategoryDate
	CategoryString
	CategoryArray
	CategoryMap
	CategoryStruct

	// NumCategories is the size of the closed category set.
	NumCategories = 14
)

// categoryNames is the canonical mapping between categories and their
// declarative names. Order matches the Category constants.
var categoryNames = [NumCategories]string{
	"boolean",
	"byte",
	"short",
	"int",
	"long",
	"float",
	"double",
	"bigint",
	"bigdecimal",
	"date",
	"string",
	"array",
	"map",
	"struct",
}

var nameToCategory map[string]Category

func init() {
	nameToCategory = make(map[string]Category, NumCategories)
	for i, n := range categoryNames {
		nameToCategory[n] = Category(i)
	}
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	return c >= 0 && c < NumCategories
}

// String returns the declarative name of the category, or "unknown" for
// values outside the recognized set.
func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory maps a declarative name ("boolean", "int", "bigdecimal", ...)
// to its Category. Fails with ErrUnsupportedCategory for anything outside the
// recognized set.
func ParseCategory(name string) (Category, error) {
	if c, ok := nameToCategory[name]; ok {
		return c, nil
	}
	return -1, errors.Wrapf(errors.ErrUnsupportedCategory, "unknown data category %q", name)
}

// CategoryNames returns the declarative names of all recognized categories,
// in canonical order.
func CategoryNames() []string {
	names := make([]string, NumCategories)
	copy(names, categoryNames[:])
	return names
}
