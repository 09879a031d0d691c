// Package jsonvalue defines a generic JSON value used as both schema
// document and instance input by the validator.
//
// A Value is a tagged union over the JSON types. Object members keep
// their document order, strings are exposed as UTF-8 byte slices, and
// numbers stay split into integers and floats; an integer token outside
// the int64 range, or a token that does not parse as a float64, is kept
// as its raw text under [KindNumberString].
package jsonvalue

import (
	"bytes"
	"iter"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies which JSON type a [Value] holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindNumberString
	KindString
	KindArray
	KindObject
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindNumberString:
		return "number-string"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Value is a single JSON value.
// The zero value is null. Object values can be changed with
// [Value.SetMember]; the validator only reads values.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    []byte // string bytes, or raw number text for KindNumberString
	arr  []*Value
	obj  *orderedmap.OrderedMap[string, *Value]
}

// Null returns the JSON null value.
func Null() *Value { return &Value{kind: KindNull} }

// NewBool returns a JSON boolean.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewInt returns a JSON integer.
func NewInt(i int64) *Value { return &Value{kind: KindInt, i: i} }

// NewFloat returns a JSON float.
func NewFloat(f float64) *Value { return &Value{kind: KindFloat, f: f} }

// NewString returns a JSON string.
func NewString(s string) *Value { return &Value{kind: KindString, s: []byte(s)} }

// NewArray returns a JSON array holding items.
func NewArray(items ...*Value) *Value {
	return &Value{kind: KindArray, arr: items}
}

// NewObject returns an empty JSON object.
// Use [Value.SetMember] to populate it in order.
func NewObject() *Value {
	return &Value{kind: KindObject, obj: orderedmap.New[string, *Value]()}
}

// SetMember sets a member of an object value, keeping document order.
// Setting an existing key replaces the value but keeps its position.
// This panics if v is not an object.
func (v *Value) SetMember(key string, val *Value) *Value {
	if v.kind != KindObject {
		panic("SetMember on non-object value")
	}
	v.obj.Set(key, val)
	return v
}

// Kind returns the JSON type tag of the value.
func (v *Value) Kind() Kind { return v.kind }

// IsNumber reports whether the value is an integer or a float.
func (v *Value) IsNumber() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// Bool returns the boolean payload. Valid only for KindBool.
func (v *Value) Bool() bool { return v.b }

// Int64 returns the integer payload. Valid only for KindInt.
func (v *Value) Int64() int64 { return v.i }

// Float64 returns the float payload. Valid only for KindFloat.
func (v *Value) Float64() float64 { return v.f }

// StringBytes returns the UTF-8 bytes of a string value.
// The caller must not modify the returned slice.
func (v *Value) StringBytes() []byte { return v.s }

// NumberText returns the raw token text of a number-string value.
func (v *Value) NumberText() string { return string(v.s) }

// Len returns the element count of an array value.
func (v *Value) Len() int { return len(v.arr) }

// At returns the i'th element of an array value.
func (v *Value) At(i int) *Value { return v.arr[i] }

// Size returns the member count of an object value.
func (v *Value) Size() int {
	if v.obj == nil {
		return 0
	}
	return v.obj.Len()
}

// Member returns the value for key in an object value,
// and reports whether the key is present.
func (v *Value) Member(key string) (*Value, bool) {
	if v.kind != KindObject || v.obj == nil {
		return nil, false
	}
	return v.obj.Get(key)
}

// Members returns an iterator over the object's members in document
// order.
func (v *Value) Members() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.kind != KindObject || v.obj == nil {
			return
		}
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the value.
func (v *Value) Clone() *Value {
	switch v.kind {
	case KindString, KindNumberString:
		return &Value{kind: v.kind, s: bytes.Clone(v.s)}
	case KindArray:
		arr := make([]*Value, len(v.arr))
		for i, e := range v.arr {
			arr[i] = e.Clone()
		}
		return &Value{kind: KindArray, arr: arr}
	case KindObject:
		obj := orderedmap.New[string, *Value]()
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			obj.Set(pair.Key, pair.Value.Clone())
		}
		return &Value{kind: KindObject, obj: obj}
	default:
		c := *v
		return &c
	}
}

// Parse decodes data into a Value tree.
// Object members keep document order; a duplicate key keeps the first
// key's position with the last value. Numeric tokens become KindInt
// when they have no fraction or exponent and fit an int64. Other
// integer tokens become KindNumberString. Tokens with a fraction or
// exponent become KindFloat (rounded to the nearest float64) when the
// decoder parses them as a float64, and KindNumberString otherwise.
func Parse(data []byte) (*Value, error) {
	d := jx.DecodeBytes(data)
	v, err := decode(d)
	if err != nil {
		return nil, errors.Wrap(err, "decode json")
	}
	if d.Next() != jx.Invalid {
		return nil, errors.New("trailing data after json value")
	}
	return v, nil
}

func decode(d *jx.Decoder) (*Value, error) {
	switch d.Next() {
	case jx.Null:
		if err := d.Null(); err != nil {
			return nil, err
		}
		return Null(), nil

	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return nil, err
		}
		return NewBool(b), nil

	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return nil, err
		}
		return decodeNumber(n), nil

	case jx.String:
		s, err := d.StrBytes()
		if err != nil {
			return nil, err
		}
		// The decoder may return a view into its buffer.
		return &Value{kind: KindString, s: bytes.Clone(s)}, nil

	case jx.Array:
		v := &Value{kind: KindArray}
		if err := d.Arr(func(d *jx.Decoder) error {
			e, err := decode(d)
			if err != nil {
				return err
			}
			v.arr = append(v.arr, e)
			return nil
		}); err != nil {
			return nil, err
		}
		return v, nil

	case jx.Object:
		v := NewObject()
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			m, err := decode(d)
			if err != nil {
				return err
			}
			v.obj.Set(key, m)
			return nil
		}); err != nil {
			return nil, err
		}
		return v, nil
	}

	return nil, errors.New("invalid json value")
}

func decodeNumber(n jx.Num) *Value {
	if n.IsInt() {
		i, err := n.Int64()
		if err == nil {
			return NewInt(i)
		}
		// Integer token out of int64 range.
		return &Value{kind: KindNumberString, s: bytes.Clone(n)}
	}
	f, err := n.Float64()
	if err != nil {
		return &Value{kind: KindNumberString, s: bytes.Clone(n)}
	}
	return NewFloat(f)
}
