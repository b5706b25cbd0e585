package trait

import (
	"testing"
)

func TestCompareSupertraitRanksFirst(t *testing.T) {
	_, a, b, d := linearHierarchy(t)

	if Compare(d, b) <= 0 {
		t.Error("subtype should rank after its immediate supertrait")
	}
	if Compare(d, a) <= 0 {
		t.Error("subtype should rank after a transitive supertrait")
	}
	if Compare(a, d) >= 0 {
		t.Error("supertrait should rank before its transitive subtype")
	}
}

func TestCompareUnrelatedLexicographic(t *testing.T) {
	r := mapResolver{}
	x := mustBuild(t, r, "Xylophone", nil, nil)
	m := mustBuild(t, r, "Marimba", nil, nil)

	if Compare(m, x) >= 0 {
		t.Error("unrelated types should order by name")
	}
	if Compare(x, m) <= 0 {
		t.Error("unrelated types should order by name")
	}
	if Compare(x, x) != 0 {
		t.Error("a type should compare equal to itself")
	}
}

func TestSortPlacesAncestorsBeforeDescendants(t *testing.T) {
	_, a, b, d := linearHierarchy(t)

	defs := []*Definition{d, a, b}
	Sort(defs)

	pos := make(map[string]int, len(defs))
	for i, def := range defs {
		pos[def.Name()] = i
	}
	if pos["A"] > pos["B"] || pos["B"] > pos["D"] {
		t.Errorf("sorted order %v does not respect the hierarchy", []string{
			defs[0].Name(), defs[1].Name(), defs[2].Name()})
	}
}
