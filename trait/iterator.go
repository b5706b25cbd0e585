package trait

// PathIterator walks a built type's own inheritance path tree lazily, in the
// same breadth-first order the build pass enumerated it, without rebuilding
// anything: children are looked up in the path-name index by
// "supertrait.parentPathName". One-shot and forward-only; consumed once per
// downcast computation.
type PathIterator struct {
	def   *Definition
	queue []*Path
}

// PathIterator returns an iterator over the type's own path tree, rooted at
// the node for the type itself.
func (d *Definition) PathIterator() *PathIterator {
	return &PathIterator{
		def:   d,
		queue: []*Path{d.pathByName[d.name]},
	}
}

// HasNext reports whether another path node remains.
func (it *PathIterator) HasNext() bool {
	return len(it.queue) > 0
}

// Next returns the next path node in breadth-first order. Call only when
// HasNext reports true.
func (it *PathIterator) Next() *Path {
	p := it.queue[0]
	it.queue = it.queue[1:]
	for _, s := range p.supers {
		if child, ok := it.def.pathByName[s+"."+p.PathName]; ok {
			it.queue = append(it.queue, child)
		}
	}
	return p
}
