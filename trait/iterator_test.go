package trait

import (
	"testing"
)

func collectPathNames(d *Definition) []string {
	var names []string
	it := d.PathIterator()
	for it.HasNext() {
		names = append(names, it.Next().PathName)
	}
	return names
}

func TestPathIteratorLinearOrder(t *testing.T) {
	_, _, _, d := linearHierarchy(t)

	got := collectPathNames(d)
	want := []string{"D", "B.D", "A.B.D"}
	if len(got) != len(want) {
		t.Fatalf("path count: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPathIteratorDiamondBreadthFirst(t *testing.T) {
	_, d := diamondHierarchy(t)

	got := collectPathNames(d)
	want := []string{"D", "B.D", "C.D", "A.B.D", "A.C.D"}
	if len(got) != len(want) {
		t.Fatalf("path count: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPathIteratorIsOneShot(t *testing.T) {
	_, _, _, d := linearHierarchy(t)

	it := d.PathIterator()
	for it.HasNext() {
		it.Next()
	}
	if it.HasNext() {
		t.Error("exhausted iterator still reports a next node")
	}

	// A fresh iterator starts over from the root.
	if got := collectPathNames(d); len(got) != 3 {
		t.Errorf("fresh iterator yielded %d nodes, want 3", len(got))
	}
}
