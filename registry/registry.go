// Package registry holds the universe of built trait types. It implements
// trait.Resolver, so registering a type flattens it against every supertrait
// already in the registry. Registration is ordered: a supertrait must be
// registered before any type that names it.
package registry

import (
	"sync"

	"github.com/teranos/lattix/errors"
	"github.com/teranos/lattix/trait"
)

// TypeSystem is the set of all named trait types in one universe. Definitions
// are immutable once registered; the registry itself is safe for concurrent
// use.
type TypeSystem struct {
	mu   sync.RWMutex
	defs map[string]*trait.Definition
}

// New creates an empty TypeSystem.
func New() *TypeSystem {
	return &TypeSystem{
		defs: make(map[string]*trait.Definition),
	}
}

// Register builds a trait type against the registry and stores it under its
// name. Fails with ErrDuplicateType when the name is taken, ErrNotFound when
// a named supertrait has not been registered yet, and with the build errors
// of trait.Build for invalid definitions. Nothing is registered on failure.
func (ts *TypeSystem) Register(name string, superTraits []string, attrs []trait.AttributeInfo) (*trait.Definition, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.defs[name]; exists {
		return nil, errors.Wrapf(errors.ErrDuplicateType, "trait type %s", name)
	}

	def, err := trait.Build(ts, name, superTraits, attrs)
	if err != nil {
		return nil, errors.Wrapf(err, "registering trait type %s", name)
	}

	ts.defs[name] = def
	return def, nil
}

// RegisterDeclaration registers a type from its declarative form, parsing
// attribute category names.
func (ts *TypeSystem) RegisterDeclaration(d Declaration) (*trait.Definition, error) {
	attrs := make([]trait.AttributeInfo, 0, len(d.Attributes))
	for _, a := range d.Attributes {
		c, err := trait.ParseCategory(a.Category)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %s of %s", a.Name, d.Name)
		}
		attrs = append(attrs, trait.AttributeInfo{Name: a.Name, Category: c})
	}
	return ts.Register(d.Name, d.SuperTraits, attrs)
}

// Resolve returns the definition registered under name, implementing
// trait.Resolver. Fails with ErrNotFound.
//
// Resolve is called re-entrantly from trait.Build while Register holds the
// write lock, so it must not take the lock itself; plain map reads are safe
// because Register is the only writer and serializes itself.
func (ts *TypeSystem) Resolve(name string) (*trait.Definition, error) {
	if def, ok := ts.defs[name]; ok {
		return def, nil
	}
	return nil, errors.NewNotFoundError("trait type %s is not registered", name)
}

// Lookup returns the definition registered under name, taking the read lock.
// Use this from call sites outside a build.
func (ts *TypeSystem) Lookup(name string) (*trait.Definition, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.Resolve(name)
}

// Len returns the number of registered types.
func (ts *TypeSystem) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return len(ts.defs)
}

// All returns every registered definition sorted by the presentation order:
// supertraits before the types that name them, unrelated types by name.
func (ts *TypeSystem) All() []*trait.Definition {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	defs := make([]*trait.Definition, 0, len(ts.defs))
	for _, d := range ts.defs {
		defs = append(defs, d)
	}
	trait.Sort(defs)
	return defs
}

// Names returns every registered type name in presentation order.
func (ts *TypeSystem) Names() []string {
	defs := ts.All()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name()
	}
	return names
}
