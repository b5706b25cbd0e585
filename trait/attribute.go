package trait

// AttributeInfo describes one attribute declared directly on a trait type:
// its name and data category. Attribute-name uniqueness is enforced only
// among a single type's own declarations; inherited names may collide and are
// resolved during layout flattening.
type AttributeInfo struct {
	Name     string
	Category Category
}
