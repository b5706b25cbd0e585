package trait

import (
	"github.com/teranos/lattix/errors"
)

// Resolver resolves a type name to its fully built, immutable definition.
// Build consults it once per referenced supertrait; every supertrait must
// already be registered before a type naming it can be built.
type Resolver interface {
	Resolve(name string) (*Definition, error)
}

// Definition is a fully built trait type: its declaration (name, immediate
// supertraits, own attributes), the flattened Layout, and the inheritance
// path indexes produced by the build pass. Immutable after Build; safe for
// unbounded concurrent reads without locking.
type Definition struct {
	name        string
	superTraits []string
	attrs       []AttributeInfo

	layout *Layout

	// superPaths indexes, per ancestor type name, every distinct inheritance
	// path reaching it. More than one entry for an ancestor signals diamond
	// inheritance, kept visible so downcasting can reject it.
	superPaths map[string][]*Path

	// pathByName indexes every path node generated during the build by its
	// dotted path name.
	pathByName map[string]*Path

	arena    *pathArena
	resolver Resolver
}

// Build constructs a trait type in one breadth-first pass over its supertrait
// graph: it enumerates every inheritance path (rejecting cyclic chains),
// flattens all inherited and own attributes into the Layout in visitation
// order, and indexes paths by destination ancestor and by dotted path name.
//
// Construction is one-shot: either a complete, consistent Definition is
// returned, or an error and nothing else. Every named supertrait must resolve
// to an already-built Definition.
func Build(resolver Resolver, name string, superTraits []string, attrs []AttributeInfo) (*Definition, error) {
	d := &Definition{
		name:        name,
		superTraits: append([]string(nil), superTraits...),
		attrs:       append([]AttributeInfo(nil), attrs...),
		layout:      newLayout(),
		superPaths:  make(map[string][]*Path),
		pathByName:  make(map[string]*Path),
		arena:       &pathArena{},
		resolver:    resolver,
	}

	rootIdx := d.arena.add(&Path{
		TypeName: name,
		PathName: name,
		supers:   d.superTraits,
		parent:   -1,
	})

	ownNames := make(map[string]struct{}, len(attrs))

	queue := []int{rootIdx}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		p := d.arena.node(idx)

		isRoot := idx == rootIdx

		nodeAttrs := d.attrs
		nodeSupers := d.superTraits
		if !isRoot {
			super, err := resolver.Resolve(p.TypeName)
			if err != nil {
				return nil, errors.Wrapf(err, "resolving supertrait %s of %s", p.TypeName, name)
			}
			nodeAttrs = super.attrs
			nodeSupers = super.superTraits
			p.supers = super.superTraits
			d.superPaths[p.TypeName] = append(d.superPaths[p.TypeName], p)
		}
		d.pathByName[p.PathName] = p

		for _, a := range nodeAttrs {
			if isRoot {
				if _, dup := ownNames[a.Name]; dup {
					return nil, errors.Wrapf(errors.ErrDuplicateAttribute,
						"trait definition %s declares multiple attributes named %s", name, a.Name)
				}
				ownNames[a.Name] = struct{}{}
			}

			if !a.Category.Valid() {
				return nil, errors.Wrapf(errors.ErrUnsupportedCategory,
					"attribute %s of %s has unrecognized category %d", a.Name, p.TypeName, a.Category)
			}

			// First visited declarer owns the unqualified name; later
			// colliding declarations are pushed to a path-qualified alias
			// remembered on the node where the collision occurred.
			storedName := a.Name
			if d.layout.contains(storedName) {
				storedName = p.addRename(a.Name)
			}
			d.layout.insert(storedName, a)
		}

		for _, s := range nodeSupers {
			if d.arena.chainContains(idx, s) {
				chain := s + " -> " + d.arena.chainString(idx, " -> ")
				return nil, errors.Wrapf(errors.ErrCyclicInheritance,
					"cycle in trait definition %s", chain)
			}
			childIdx := d.arena.add(&Path{
				TypeName: s,
				PathName: s + "." + p.PathName,
				Suffix:   p.PathName,
				parent:   idx,
			})
			queue = append(queue, childIdx)
		}
	}

	return d, nil
}

// Name returns the trait type's name.
func (d *Definition) Name() string {
	return d.name
}

// SuperTraits returns the immediate supertrait names, in declaration order.
func (d *Definition) SuperTraits() []string {
	return append([]string(nil), d.superTraits...)
}

// Attributes returns the type's own immediate attribute declarations, in
// declaration order.
func (d *Definition) Attributes() []AttributeInfo {
	return append([]AttributeInfo(nil), d.attrs...)
}

// Layout returns the flattened physical record layout.
func (d *Definition) Layout() *Layout {
	return d.layout
}

// HasAncestor reports whether name is reachable through the supertrait graph.
func (d *Definition) HasAncestor(name string) bool {
	_, ok := d.superPaths[name]
	return ok
}

// PathsTo returns every distinct inheritance path reaching the named
// ancestor. A result longer than one signals diamond inheritance.
func (d *Definition) PathsTo(ancestor string) []*Path {
	paths := d.superPaths[ancestor]
	return append([]*Path(nil), paths...)
}

// Ancestors returns the names of every reachable ancestor, in no particular
// order.
func (d *Definition) Ancestors() []string {
	names := make([]string, 0, len(d.superPaths))
	for n := range d.superPaths {
		names = append(names, n)
	}
	return names
}
