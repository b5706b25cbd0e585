// Package record implements the physical storage engine for trait type
// instances: per-category value slots sized by a built Layout, plus a global
// nullability indicator per field. The slot contract (category, per-category
// index, nullability index) is guaranteed stable by the trait package for the
// type's lifetime.
package record

import (
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/teranos/lattix/errors"
	"github.com/teranos/lattix/trait"
)

// Instance holds the field values of one most-derived trait type instance.
// Storage is allocated per data category from the Layout's slot counts; a
// field is addressed by its stored name, which the Layout translates to a
// (category, slot) pair. Every field starts null.
type Instance struct {
	id  string
	def *trait.Definition

	bools    []bool
	bytes    []byte
	shorts   []int16
	ints     []int32
	longs    []int64
	floats   []float32
	doubles  []float64
	bigInts  []*big.Int
	bigDecs  []*big.Float
	dates    []time.Time
	strings  []string
	arrays   [][]interface{}
	maps     []map[string]interface{}
	structs  []trait.Struct
	nullFlag []bool
}

// NewInstance allocates empty storage for one instance of the given type.
func NewInstance(def *trait.Definition) *Instance {
	l := def.Layout()
	inst := &Instance{
		id:       uuid.NewString(),
		def:      def,
		bools:    make([]bool, l.Count(trait.CategoryBoolean)),
		bytes:    make([]byte, l.Count(trait.CategoryByte)),
		shorts:   make([]int16, l.Count(trait.CategoryShort)),
		ints:     make([]int32, l.Count(trait.CategoryInt)),
		longs:    make([]int64, l.Count(trait.CategoryLong)),
		floats:   make([]float32, l.Count(trait.CategoryFloat)),
		doubles:  make([]float64, l.Count(trait.CategoryDouble)),
		bigInts:  make([]*big.Int, l.Count(trait.CategoryBigInt)),
		bigDecs:  make([]*big.Float, l.Count(trait.CategoryBigDecimal)),
		dates:    make([]time.Time, l.Count(trait.CategoryDate)),
		strings:  make([]string, l.Count(trait.CategoryString)),
		arrays:   make([][]interface{}, l.Count(trait.CategoryArray)),
		maps:     make([]map[string]interface{}, l.Count(trait.CategoryMap)),
		structs:  make([]trait.Struct, l.Count(trait.CategoryStruct)),
		nullFlag: make([]bool, l.NumFields()),
	}
	for i := range inst.nullFlag {
		inst.nullFlag[i] = true
	}
	return inst
}

// ID returns the instance's unique identifier.
func (in *Instance) ID() string {
	return in.id
}

// TypeName returns the name of the trait type this instance was allocated
// for.
func (in *Instance) TypeName() string {
	return in.def.Name()
}

// Definition returns the trait type this instance was allocated for.
func (in *Instance) Definition() *trait.Definition {
	return in.def
}

// locate validates field and returns its attribute, slot and null index.
func (in *Instance) locate(field string) (trait.AttributeInfo, int, int, error) {
	l := in.def.Layout()
	attr, ok := l.Attribute(field)
	if !ok {
		return trait.AttributeInfo{}, 0, 0,
			errors.NewNotFoundError("no field %s on type %s", field, in.def.Name())
	}
	slot, _ := l.Slot(field)
	nullIdx, _ := l.NullIndex(field)
	return attr, slot, nullIdx, nil
}

// Get returns the value stored under field, or nil when the field is null.
func (in *Instance) Get(field string) (interface{}, error) {
	attr, slot, nullIdx, err := in.locate(field)
	if err != nil {
		return nil, err
	}
	if in.nullFlag[nullIdx] {
		return nil, nil
	}

	switch attr.Category {
	case trait.CategoryBoolean:
		return in.bools[slot], nil
	case trait.CategoryByte:
		return in.bytes[slot], nil
	case trait.CategoryShort:
		return in.shorts[slot], nil
	case trait.CategoryInt:
		return in.ints[slot], nil
	case trait.CategoryLong:
		return in.longs[slot], nil
	case trait.CategoryFloat:
		return in.floats[slot], nil
	case trait.CategoryDouble:
		return in.doubles[slot], nil
	case trait.CategoryBigInt:
		return in.bigInts[slot], nil
	case trait.CategoryBigDecimal:
		return in.bigDecs[slot], nil
	case trait.CategoryDate:
		return in.dates[slot], nil
	case trait.CategoryString:
		return in.strings[slot], nil
	case trait.CategoryArray:
		return in.arrays[slot], nil
	case trait.CategoryMap:
		return in.maps[slot], nil
	case trait.CategoryStruct:
		return in.structs[slot], nil
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedCategory,
			"field %s has category %d", field, attr.Category)
	}
}

// Set stores value under field. The value's dynamic type must match the
// field's data category; small integer widenings (int to the sized integer
// categories) are accepted.
func (in *Instance) Set(field string, value interface{}) error {
	attr, slot, nullIdx, err := in.locate(field)
	if err != nil {
		return err
	}

	switch attr.Category {
	case trait.CategoryBoolean:
		v, ok := value.(bool)
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.bools[slot] = v
	case trait.CategoryByte:
		v, ok := value.(byte)
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.bytes[slot] = v
	case trait.CategoryShort:
		switch v := value.(type) {
		case int16:
			in.shorts[slot] = v
		case int:
			in.shorts[slot] = int16(v)
		default:
			return in.typeError(field, attr, value)
		}
	case trait.CategoryInt:
		switch v := value.(type) {
		case int32:
			in.ints[slot] = v
		case int:
			in.ints[slot] = int32(v)
		default:
			return in.typeError(field, attr, value)
		}
	case trait.CategoryLong:
		switch v := value.(type) {
		case int64:
			in.longs[slot] = v
		case int:
			in.longs[slot] = int64(v)
		default:
			return in.typeError(field, attr, value)
		}
	case trait.CategoryFloat:
		v, ok := value.(float32)
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.floats[slot] = v
	case trait.CategoryDouble:
		v, ok := value.(float64)
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.doubles[slot] = v
	case trait.CategoryBigInt:
		v, ok := value.(*big.Int)
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.bigInts[slot] = v
	case trait.CategoryBigDecimal:
		v, ok := value.(*big.Float)
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.bigDecs[slot] = v
	case trait.CategoryDate:
		v, ok := value.(time.Time)
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.dates[slot] = v
	case trait.CategoryString:
		v, ok := value.(string)
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.strings[slot] = v
	case trait.CategoryArray:
		v, ok := value.([]interface{})
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.arrays[slot] = v
	case trait.CategoryMap:
		v, ok := value.(map[string]interface{})
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.maps[slot] = v
	case trait.CategoryStruct:
		v, ok := value.(trait.Struct)
		if !ok {
			return in.typeError(field, attr, value)
		}
		in.structs[slot] = v
	default:
		return errors.Wrapf(errors.ErrUnsupportedCategory,
			"field %s has category %d", field, attr.Category)
	}

	in.nullFlag[nullIdx] = false
	return nil
}

func (in *Instance) typeError(field string, attr trait.AttributeInfo, value interface{}) error {
	return errors.Newf("field %s of %s holds %s values, got %T",
		field, in.def.Name(), attr.Category, value)
}

// SetNull marks field as null without touching its slot.
func (in *Instance) SetNull(field string) error {
	_, _, nullIdx, err := in.locate(field)
	if err != nil {
		return err
	}
	in.nullFlag[nullIdx] = true
	return nil
}

// IsNull reports whether field is currently null.
func (in *Instance) IsNull(field string) (bool, error) {
	_, _, nullIdx, err := in.locate(field)
	if err != nil {
		return false, err
	}
	return in.nullFlag[nullIdx], nil
}
