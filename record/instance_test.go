package record_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/lattix/errors"
	"github.com/teranos/lattix/record"
	"github.com/teranos/lattix/registry"
	"github.com/teranos/lattix/trait"
)

func buildEveryCategoryType(t *testing.T) *trait.Definition {
	t.Helper()
	ts := registry.New()
	def, err := ts.Register("Everything", nil, []trait.AttributeInfo{
		{Name: "flag", Category: trait.CategoryBoolean},
		{Name: "raw", Category: trait.CategoryByte},
		{Name: "small", Category: trait.CategoryShort},
		{Name: "count", Category: trait.CategoryInt},
		{Name: "total", Category: trait.CategoryLong},
		{Name: "ratio", Category: trait.CategoryFloat},
		{Name: "precise", Category: trait.CategoryDouble},
		{Name: "huge", Category: trait.CategoryBigInt},
		{Name: "exact", Category: trait.CategoryBigDecimal},
		{Name: "when", Category: trait.CategoryDate},
		{Name: "label", Category: trait.CategoryString},
		{Name: "items", Category: trait.CategoryArray},
		{Name: "props", Category: trait.CategoryMap},
		{Name: "child", Category: trait.CategoryStruct},
	})
	require.NoError(t, err)
	return def
}

func TestInstanceEveryCategory(t *testing.T) {
	def := buildEveryCategoryType(t)
	inst := record.NewInstance(def)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	childType := registry.New()
	childDef, err := childType.Register("Child", nil, []trait.AttributeInfo{
		{Name: "x", Category: trait.CategoryInt},
	})
	require.NoError(t, err)
	child := record.NewInstance(childDef)

	set := map[string]interface{}{
		"flag":    true,
		"raw":     byte(0x7f),
		"small":   int16(12),
		"count":   int32(42),
		"total":   int64(1 << 40),
		"ratio":   float32(0.5),
		"precise": 3.14159,
		"huge":    big.NewInt(1).Lsh(big.NewInt(1), 100),
		"exact":   big.NewFloat(2.718281828),
		"when":    now,
		"label":   "hello",
		"items":   []interface{}{"a", "b"},
		"props":   map[string]interface{}{"k": 1},
		"child":   trait.Struct(child),
	}
	for field, v := range set {
		require.NoError(t, inst.Set(field, v), "setting %s", field)
	}
	for field, want := range set {
		got, err := inst.Get(field)
		require.NoError(t, err, "getting %s", field)
		assert.Equal(t, want, got, "field %s", field)
	}
}

func TestInstanceNullLifecycle(t *testing.T) {
	def := buildEveryCategoryType(t)
	inst := record.NewInstance(def)

	// Every field starts null and reads as nil.
	null, err := inst.IsNull("count")
	require.NoError(t, err)
	assert.True(t, null)
	v, err := inst.Get("count")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, inst.Set("count", 7))
	null, err = inst.IsNull("count")
	require.NoError(t, err)
	assert.False(t, null)
	v, err = inst.Get("count")
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)

	// Nulling hides the value again without disturbing neighbors.
	require.NoError(t, inst.Set("label", "kept"))
	require.NoError(t, inst.SetNull("count"))
	v, err = inst.Get("count")
	require.NoError(t, err)
	assert.Nil(t, v)
	v, err = inst.Get("label")
	require.NoError(t, err)
	assert.Equal(t, "kept", v)
}

func TestInstanceUnknownField(t *testing.T) {
	def := buildEveryCategoryType(t)
	inst := record.NewInstance(def)

	_, err := inst.Get("nope")
	assert.True(t, errors.IsNotFoundError(err))
	err = inst.Set("nope", 1)
	assert.True(t, errors.IsNotFoundError(err))
	err = inst.SetNull("nope")
	assert.True(t, errors.IsNotFoundError(err))
	_, err = inst.IsNull("nope")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestInstanceTypeChecking(t *testing.T) {
	def := buildEveryCategoryType(t)
	inst := record.NewInstance(def)

	require.Error(t, inst.Set("flag", "not a bool"))
	require.Error(t, inst.Set("label", 42))
	require.Error(t, inst.Set("when", "2024-06-01"))

	// Plain ints widen into the sized integer categories.
	require.NoError(t, inst.Set("small", 5))
	require.NoError(t, inst.Set("count", 5))
	require.NoError(t, inst.Set("total", 5))
}

func TestInstanceIdentity(t *testing.T) {
	def := buildEveryCategoryType(t)
	a := record.NewInstance(def)
	b := record.NewInstance(def)

	assert.Equal(t, "Everything", a.TypeName())
	assert.Same(t, def, a.Definition())
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

// TestInstanceDowncastReads builds a three-level hierarchy where each level
// re-declares "name", fills a most-derived instance, and checks that every
// ancestor facet reads the value that ancestor's declaration stored.
func TestInstanceDowncastReads(t *testing.T) {
	ts := registry.New()
	_, err := ts.Register("A", nil, []trait.AttributeInfo{
		{Name: "name", Category: trait.CategoryString},
		{Name: "level", Category: trait.CategoryInt},
	})
	require.NoError(t, err)
	_, err = ts.Register("B", []string{"A"}, []trait.AttributeInfo{
		{Name: "name", Category: trait.CategoryString},
		{Name: "desc", Category: trait.CategoryString},
	})
	require.NoError(t, err)
	d, err := ts.Register("D", []string{"B"}, []trait.AttributeInfo{
		{Name: "name", Category: trait.CategoryString},
		{Name: "id", Category: trait.CategoryLong},
	})
	require.NoError(t, err)

	inst := record.NewInstance(d)
	require.NoError(t, inst.Set("name", "d-name"))
	require.NoError(t, inst.Set("id", int64(7)))
	require.NoError(t, inst.Set("B.D.name", "b-name"))
	require.NoError(t, inst.Set("desc", "a description"))
	require.NoError(t, inst.Set("A.B.D.name", "a-name"))
	require.NoError(t, inst.Set("level", 3))

	// The most-derived view reads its own declaration.
	v, err := inst.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "d-name", v)

	asB, err := d.CastAs(inst, "B")
	require.NoError(t, err)
	v, err = asB.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "b-name", v)
	v, err = asB.Get("desc")
	require.NoError(t, err)
	assert.Equal(t, "a description", v)

	asA, err := d.CastAs(inst, "A")
	require.NoError(t, err)
	v, err = asA.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "a-name", v)
	v, err = asA.Get("level")
	require.NoError(t, err)
	assert.Equal(t, int32(3), v)
}
