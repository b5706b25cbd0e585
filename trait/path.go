package trait

import (
	"strings"
)

// Path is one node in the breadth-first-enumerated inheritance path tree: a
// concrete walk from the type being built out to a specific ancestor. Nodes
// live in an arena owned by the Definition and reference their parent (the
// node one step closer to the built type) by arena index, so the tree has no
// shared-pointer aliasing and nodes never outlive the build.
type Path struct {
	// TypeName is the trait type at this node.
	TypeName string

	// PathName is the dotted walk "ancestor.….self", unique per node within
	// one type's enumeration.
	PathName string

	// Suffix is the dotted walk strictly below this node (the parent's
	// PathName), empty for the root.
	Suffix string

	// supers is the immediate supertrait list of TypeName, captured at build
	// time so path iteration never has to re-resolve the type.
	supers []string

	// parent is the arena index of the node toward the built type, -1 for
	// the root.
	parent int

	// renames maps an attribute name shadowed at this node to the
	// path-qualified stored name it was pushed to. Nil when nothing was
	// shadowed here.
	renames map[string]string
}

// Renames returns a copy of the shadow-rename map recorded at this node:
// original attribute name to path-qualified stored name. Empty when no
// collision occurred at this node.
func (p *Path) Renames() map[string]string {
	if p.renames == nil {
		return nil
	}
	m := make(map[string]string, len(p.renames))
	for k, v := range p.renames {
		m[k] = v
	}
	return m
}

// addRename records that attribute name was shadowed at this node and returns
// the path-qualified stored name it moves to.
func (p *Path) addRename(name string) string {
	if p.renames == nil {
		p.renames = make(map[string]string)
	}
	qualified := p.PathName + "." + name
	p.renames[name] = qualified
	return qualified
}

// pathArena owns every Path node generated during one type's build. Nodes are
// append-only; node pointers stay valid for the life of the arena.
type pathArena struct {
	nodes []*Path
}

// add appends a node and returns its index.
func (a *pathArena) add(p *Path) int {
	a.nodes = append(a.nodes, p)
	return len(a.nodes) - 1
}

// node returns the node at idx.
func (a *pathArena) node(idx int) *Path {
	return a.nodes[idx]
}

// chainContains reports whether the walk from idx toward the root visits
// typeName.
func (a *pathArena) chainContains(idx int, typeName string) bool {
	for i := idx; i >= 0; i = a.nodes[i].parent {
		if a.nodes[i].TypeName == typeName {
			return true
		}
	}
	return false
}

// chainString renders the walk from idx toward the root, joined by sep.
// Used for cycle diagnostics.
func (a *pathArena) chainString(idx int, sep string) string {
	var names []string
	for i := idx; i >= 0; i = a.nodes[i].parent {
		names = append(names, a.nodes[i].TypeName)
	}
	return strings.Join(names, sep)
}
