package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/lattix/errors"
	"github.com/teranos/lattix/registry"
	"github.com/teranos/lattix/trait"
)

func TestRegisterAndLookup(t *testing.T) {
	ts := registry.New()

	def, err := ts.Register("Classification", nil, []trait.AttributeInfo{
		{Name: "tag", Category: trait.CategoryString},
	})
	require.NoError(t, err)
	assert.Equal(t, "Classification", def.Name())
	assert.Equal(t, 1, ts.Len())

	got, err := ts.Lookup("Classification")
	require.NoError(t, err)
	assert.Same(t, def, got)

	_, err = ts.Lookup("Missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRegisterDuplicateName(t *testing.T) {
	ts := registry.New()

	_, err := ts.Register("Pii", nil, nil)
	require.NoError(t, err)

	_, err = ts.Register("Pii", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateType))
	assert.Equal(t, 1, ts.Len())
}

func TestRegisterUnknownSupertrait(t *testing.T) {
	ts := registry.New()

	_, err := ts.Register("Child", []string{"Parent"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))

	// A failed registration leaves nothing behind.
	assert.Equal(t, 0, ts.Len())
	_, err = ts.Lookup("Child")
	assert.Error(t, err)
}

func TestRegisterFlattensAgainstRegistry(t *testing.T) {
	ts := registry.New()

	_, err := ts.Register("Base", nil, []trait.AttributeInfo{
		{Name: "id", Category: trait.CategoryLong},
	})
	require.NoError(t, err)

	sub, err := ts.Register("Sub", []string{"Base"}, []trait.AttributeInfo{
		{Name: "note", Category: trait.CategoryString},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"note", "id"}, sub.Layout().FieldNames())
	assert.True(t, sub.HasAncestor("Base"))
}

func TestRegisterDeclaration(t *testing.T) {
	ts := registry.New()

	def, err := ts.RegisterDeclaration(registry.Declaration{
		Name: "Retention",
		Attributes: []registry.AttributeDecl{
			{Name: "days", Category: "int"},
			{Name: "policy", Category: "string"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"days", "policy"}, def.Layout().FieldNames())

	_, err = ts.RegisterDeclaration(registry.Declaration{
		Name:       "Broken",
		Attributes: []registry.AttributeDecl{{Name: "x", Category: "varchar"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedCategory))
}

func TestNamesPresentationOrder(t *testing.T) {
	ts := registry.New()

	_, err := ts.Register("Base", nil, nil)
	require.NoError(t, err)
	_, err = ts.Register("Middle", []string{"Base"}, nil)
	require.NoError(t, err)
	_, err = ts.Register("Leaf", []string{"Middle"}, nil)
	require.NoError(t, err)
	_, err = ts.Register("Aside", nil, nil)
	require.NoError(t, err)

	names := ts.Names()
	require.Len(t, names, 4)
	pos := make(map[string]int, len(names))
	for i, n := range names {
		pos[n] = i
	}
	assert.Less(t, pos["Base"], pos["Middle"])
	assert.Less(t, pos["Middle"], pos["Leaf"])
}

func TestAllReturnsIndependentSlice(t *testing.T) {
	ts := registry.New()
	_, err := ts.Register("Only", nil, nil)
	require.NoError(t, err)

	defs := ts.All()
	require.Len(t, defs, 1)
	defs[0] = nil

	again := ts.All()
	require.Len(t, again, 1)
	assert.NotNil(t, again[0])
}
