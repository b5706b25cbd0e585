// Package trait implements the multiple-inheritance composition engine of the
// Lattix metadata type system.
//
// A trait type declares zero or more supertraits (mixin-style multiple
// inheritance, not a single rooted hierarchy) and a list of its own
// attributes. Build flattens everything inherited and own into one physical
// record layout in a single breadth-first pass over the supertrait graph,
// enumerating every inheritance path, rejecting cycles, and resolving
// attribute-name collisions by renaming the farther declaration to a
// path-qualified alias.
//
// After Build, a Definition is immutable and safe for unbounded concurrent
// reads. CastAs reinterprets a most-derived instance through the field names
// of any unambiguous ancestor; diamond inheritance (two or more distinct
// paths to the same ancestor) is surfaced as an error, never silently merged.
//
// Usage:
//
//	ts := registry.New()
//	ts.Register("A", nil, []trait.AttributeInfo{{Name: "a", Category: trait.CategoryString}})
//	ts.Register("B", []string{"A"}, []trait.AttributeInfo{{Name: "b", Category: trait.CategoryInt}})
//	d, _ := ts.Resolve("B")
//	facet, err := d.CastAs(instance, "A")
package trait
