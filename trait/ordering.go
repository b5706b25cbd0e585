package trait

import (
	"sort"
	"strings"
)

// Compare orders two definitions for presentation: a type ranks after any of
// its transitive supertraits, before any type it is a transitive supertrait
// of, and unrelated types order lexicographically by name. Layout and casting
// never depend on this order.
func Compare(a, b *Definition) int {
	if a.HasAncestor(b.name) {
		return 1
	}
	if b.HasAncestor(a.name) {
		return -1
	}
	return strings.Compare(a.name, b.name)
}

// Sort sorts definitions in place by Compare, stably.
func Sort(defs []*Definition) {
	sort.SliceStable(defs, func(i, j int) bool {
		return Compare(defs[i], defs[j]) < 0
	})
}
