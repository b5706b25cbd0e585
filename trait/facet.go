package trait

import (
	"github.com/teranos/lattix/errors"
)

// Struct is the minimal read surface of a typed record instance: the concrete
// storage engine satisfies it, and so does a Facet, so downcast views can be
// stacked on whatever holds the field values.
type Struct interface {
	// TypeName returns the name of the trait type the instance declares
	// itself to be.
	TypeName() string

	// Get returns the value stored under the given field name.
	Get(field string) (interface{}, error)
}

// Facet is a read-only view of a most-derived instance through the field
// names of one of its ancestor types. A field read is translated through the
// downcast rename map when an entry exists, and delegated unchanged
// otherwise. Writes are rejected by contract.
type Facet struct {
	typeName string
	renames  map[string]string
	wrapped  Struct
	layout   *Layout
}

// TypeName returns the ancestor type this facet is viewed as.
func (f *Facet) TypeName() string {
	return f.typeName
}

// Get reads a field by the name the ancestor type knows it as, translating to
// the physically stored name on the wrapped instance when the field was
// shadowed somewhere along the descent.
func (f *Facet) Get(field string) (interface{}, error) {
	if stored, ok := f.renames[field]; ok {
		return f.wrapped.Get(stored)
	}
	return f.wrapped.Get(field)
}

// Set always fails: a facet is a read-only reinterpretation, never a writable
// handle.
func (f *Facet) Set(field string, value interface{}) error {
	return errors.Wrapf(errors.ErrReadOnlyFacet, "cannot set %s on facet of type %s", field, f.typeName)
}

// Layout returns the viewed ancestor's flattened layout.
func (f *Facet) Layout() *Layout {
	return f.layout
}

// Renames returns a copy of the downcast rename map: field name as the
// ancestor knows it to physically stored name on the wrapped instance.
func (f *Facet) Renames() map[string]string {
	m := make(map[string]string, len(f.renames))
	for k, v := range f.renames {
		m[k] = v
	}
	return m
}

// CastAs produces a read-only facet of s viewed as the named ancestor type.
// s must declare itself to be exactly this type: chained downcasts go through
// the most-derived type each time. Fails with ErrUnknownAncestor when the
// target is not reachable, ErrTypeMismatch when s declares a different type,
// and ErrAmbiguousDowncast when more than one inheritance path reaches the
// target (diamond inheritance).
func (d *Definition) CastAs(s Struct, ancestor string) (*Facet, error) {
	paths, ok := d.superPaths[ancestor]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownAncestor,
			"cannot downcast to %s from type %s", ancestor, d.name)
	}

	if s == nil {
		return nil, errors.Wrapf(errors.ErrTypeMismatch,
			"downcast to %s called with nil instance", ancestor)
	}
	if s.TypeName() != d.name {
		return nil, errors.Wrapf(errors.ErrTypeMismatch,
			"downcast called on type %s, instance declares type %s", d.name, s.TypeName())
	}

	if len(paths) > 1 {
		return nil, errors.Wrapf(errors.ErrAmbiguousDowncast,
			"cannot downcast to %s from %s: %d paths reach the supertrait", ancestor, d.name, len(paths))
	}

	super, err := d.resolver.Resolve(ancestor)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving downcast target %s", ancestor)
	}

	return &Facet{
		typeName: ancestor,
		renames:  super.downcastFieldMap(d, paths[0]),
		wrapped:  s,
		layout:   super.layout,
	}, nil
}

// downcastFieldMap computes the rename map for viewing an instance of sub as
// this (ancestor) type, given the unique path from sub to this type. For
// every node q in this type's own path tree, the matching node in sub's
// enumeration is the one reached by continuing q's walk through the same
// descent, i.e. "q.PathName + . + suffix". Each shadow rename recorded there
// maps back to the name a caller addressing this type would use: this type's
// own rename of the attribute when it was shadowed here too, the original
// name otherwise.
func (t *Definition) downcastFieldMap(sub *Definition, pathToSub *Path) map[string]string {
	suffix := pathToSub.Suffix
	dcMap := make(map[string]string)

	it := t.PathIterator()
	for it.HasNext() {
		q := it.Next()
		pInSub, ok := sub.pathByName[q.PathName+"."+suffix]
		if !ok || pInSub.renames == nil {
			continue
		}
		for orig, qualified := range pInSub.renames {
			key := orig
			if mapped, shadowed := q.renames[orig]; shadowed {
				key = mapped
			}
			dcMap[key] = qualified
		}
	}
	return dcMap
}
