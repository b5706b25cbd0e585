package trait

// Layout is the flattened physical record layout of a built trait type: every
// attribute declared anywhere in the ancestry, keyed by its stored name (the
// original name for the breadth-first-closest declarer, a path-qualified
// alias for every later colliding declaration). Stored names keep their
// insertion order; each field carries a slot index within its data category
// and a global nullability index. Immutable after Build.
type Layout struct {
	order   []string
	attrs   map[string]AttributeInfo
	slots   map[string]int
	nullPos map[string]int
	counts  [NumCategories]int
}

func newLayout() *Layout {
	return &Layout{
		attrs:   make(map[string]AttributeInfo),
		slots:   make(map[string]int),
		nullPos: make(map[string]int),
	}
}

// insert adds a field under storedName, assigning it the next global
// nullability index and the next slot within its category. The caller has
// already validated the category and resolved name collisions.
func (l *Layout) insert(storedName string, attr AttributeInfo) {
	l.order = append(l.order, storedName)
	l.attrs[storedName] = attr
	l.nullPos[storedName] = len(l.nullPos)
	l.slots[storedName] = l.counts[attr.Category]
	l.counts[attr.Category]++
}

// contains reports whether storedName is already claimed in the layout.
func (l *Layout) contains(storedName string) bool {
	_, ok := l.attrs[storedName]
	return ok
}

// FieldNames returns every stored field name in insertion order.
func (l *Layout) FieldNames() []string {
	names := make([]string, len(l.order))
	copy(names, l.order)
	return names
}

// Attribute returns the attribute stored under name.
func (l *Layout) Attribute(name string) (AttributeInfo, bool) {
	a, ok := l.attrs[name]
	return a, ok
}

// Slot returns the per-category slot index of the field stored under name.
func (l *Layout) Slot(name string) (int, bool) {
	s, ok := l.slots[name]
	return s, ok
}

// NullIndex returns the global nullability index of the field stored under
// name. Indices are contiguous, zero-based, in attribute-insertion order
// across the whole layout.
func (l *Layout) NullIndex(name string) (int, bool) {
	n, ok := l.nullPos[name]
	return n, ok
}

// Count returns the number of fields in the given category, i.e. the storage
// size a record engine must allocate for that category.
func (l *Layout) Count(c Category) int {
	if !c.Valid() {
		return 0
	}
	return l.counts[c]
}

// NumFields returns the total number of stored fields.
func (l *Layout) NumFields() int {
	return len(l.order)
}
