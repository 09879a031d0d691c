// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"math"
	"unicode/utf8"

	"github.com/DrDeano/jsonschema/internal/validerr"
	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

// number is a keyword argument that is either an integer or a float.
type number struct {
	isInt bool
	i     int64
	f     float64
}

// asInt returns the number in integer space, truncating a float.
func (n number) asInt() int64 {
	if n.isInt {
		return n.i
	}
	return int64(math.Trunc(n.f))
}

// asFloat returns the number in float space, widening an integer.
func (n number) asFloat() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// toNumber converts a numeric keyword argument into a number.
// A non-numeric argument fails with badType.
func toNumber(arg *jsonvalue.Value, keyword string, badType validerr.Code) (number, error) {
	switch arg.Kind() {
	case jsonvalue.KindInt:
		return number{isInt: true, i: arg.Int64()}, nil
	case jsonvalue.KindFloat:
		return number{f: arg.Float64()}, nil
	case jsonvalue.KindNumberString:
		return number{}, validerr.NewCompile(validerr.CodeNumberString, keyword,
			"cannot represent number %s", arg.NumberText())
	default:
		return number{}, validerr.NewCompile(badType, keyword,
			"got %s, expect a number", arg.Kind())
	}
}

// toInt converts a numeric keyword argument to an integer.
// A float argument must have no fractional part.
func toInt(arg *jsonvalue.Value, keyword string, badType validerr.Code) (int64, error) {
	n, err := toNumber(arg, keyword, badType)
	if err != nil {
		return 0, err
	}
	if !n.isInt {
		if math.Trunc(n.f) != n.f {
			return 0, validerr.NewCompile(validerr.CodeInvalidFloatToInt, keyword,
				"float %v has a fractional part", n.f)
		}
		return int64(n.f), nil
	}
	return n.i, nil
}

// minMaxKind selects what a minMaxSchema measures.
type minMaxKind int

const (
	minMaxItems minMaxKind = iota
	minMaxLength
)

// minMaxSchema implements minItems/maxItems and minLength/maxLength.
// min defaults to 0 and max to unbounded.
type minMaxSchema struct {
	kind   minMaxKind
	min    int64
	max    int64
	hasMax bool
}

func compileMinMax(kind minMaxKind, minArg *jsonvalue.Value, minKeyword string, maxArg *jsonvalue.Value, maxKeyword string) (Node, error) {
	m := &minMaxSchema{kind: kind}
	if minArg != nil {
		v, err := toInt(minArg, minKeyword, validerr.CodeInvalidMinMaxItemsType)
		if err != nil {
			return nil, err
		}
		m.min = v
	}
	if maxArg != nil {
		v, err := toInt(maxArg, maxKeyword, validerr.CodeInvalidMinMaxItemsType)
		if err != nil {
			return nil, err
		}
		m.max = v
		m.hasMax = true
	}
	return m, nil
}

func (m *minMaxSchema) Validate(instance *jsonvalue.Value) (bool, error) {
	var n int64
	switch m.kind {
	case minMaxItems:
		if instance.Kind() != jsonvalue.KindArray {
			return true, nil
		}
		n = int64(instance.Len())
	case minMaxLength:
		if instance.Kind() != jsonvalue.KindString {
			return true, nil
		}
		var err error
		n, err = countCodepoints(instance.StringBytes())
		if err != nil {
			return false, err
		}
	}
	if n < m.min {
		return false, nil
	}
	if m.hasMax && n > m.max {
		return false, nil
	}
	return true, nil
}

func (m *minMaxSchema) Release() {}

// countCodepoints returns the number of Unicode code points in b.
// String lengths are measured in code points, not bytes.
func countCodepoints(b []byte) (int64, error) {
	var n int64
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return 0, validerr.NewValidate(validerr.CodeInvalidUTF8, "",
				"invalid UTF-8 sequence at byte %d", i)
		}
		i += size
		n++
	}
	return n, nil
}

// boundsSchema implements minimum/maximum and
// exclusiveMinimum/exclusiveMaximum.
//
// An integer instance is compared in integer space with float bounds
// truncated; a float instance is compared in float space with integer
// bounds widened. Non-numeric instances always match.
type boundsSchema struct {
	exclusive bool
	min, max  *number
}

func compileBounds(exclusive bool, minArg *jsonvalue.Value, minKeyword string, maxArg *jsonvalue.Value, maxKeyword string) (Node, error) {
	b := &boundsSchema{exclusive: exclusive}
	if minArg != nil {
		n, err := toNumber(minArg, minKeyword, validerr.CodeInvalidMinimumMaximumType)
		if err != nil {
			return nil, err
		}
		b.min = &n
	}
	if maxArg != nil {
		n, err := toNumber(maxArg, maxKeyword, validerr.CodeInvalidMinimumMaximumType)
		if err != nil {
			return nil, err
		}
		b.max = &n
	}
	return b, nil
}

func (b *boundsSchema) Validate(instance *jsonvalue.Value) (bool, error) {
	switch instance.Kind() {
	case jsonvalue.KindInt:
		i := instance.Int64()
		if b.min != nil && !aboveInt(i, b.min.asInt(), b.exclusive) {
			return false, nil
		}
		if b.max != nil && !belowInt(i, b.max.asInt(), b.exclusive) {
			return false, nil
		}
		return true, nil

	case jsonvalue.KindFloat:
		f := instance.Float64()
		if b.min != nil && !aboveFloat(f, b.min.asFloat(), b.exclusive) {
			return false, nil
		}
		if b.max != nil && !belowFloat(f, b.max.asFloat(), b.exclusive) {
			return false, nil
		}
		return true, nil

	case jsonvalue.KindNumberString:
		return false, validerr.NewValidate(validerr.CodeNumberString, "",
			"cannot compare number %s", instance.NumberText())

	default:
		return true, nil
	}
}

func (b *boundsSchema) Release() {}

func aboveInt(v, lo int64, exclusive bool) bool {
	if exclusive {
		return v > lo
	}
	return v >= lo
}

func belowInt(v, hi int64, exclusive bool) bool {
	if exclusive {
		return v < hi
	}
	return v <= hi
}

func aboveFloat(v, lo float64, exclusive bool) bool {
	if exclusive {
		return v > lo
	}
	return v >= lo
}

func belowFloat(v, hi float64, exclusive bool) bool {
	if exclusive {
		return v < hi
	}
	return v <= hi
}

// multipleOfSchema implements the multipleOf keyword.
type multipleOfSchema struct {
	divisor number
}

func compileMultipleOf(arg *jsonvalue.Value) (Node, error) {
	d, err := toNumber(arg, "multipleOf", validerr.CodeInvalidMultipleOfType)
	if err != nil {
		return nil, err
	}
	if d.isInt && d.i <= 0 || !d.isInt && d.f <= 0 {
		return nil, validerr.NewCompile(validerr.CodeMultipleOfLessThanZero, "multipleOf",
			"divisor must be strictly positive, got %s", arg)
	}
	return &multipleOfSchema{divisor: d}, nil
}

func (m *multipleOfSchema) Validate(instance *jsonvalue.Value) (bool, error) {
	switch instance.Kind() {
	case jsonvalue.KindInt:
		if m.divisor.isInt {
			return instance.Int64()%m.divisor.i == 0, nil
		}
		return floatMultiple(float64(instance.Int64()), m.divisor.f), nil

	case jsonvalue.KindFloat:
		return floatMultiple(instance.Float64(), m.divisor.asFloat()), nil

	case jsonvalue.KindNumberString:
		return false, validerr.NewValidate(validerr.CodeNumberString, "multipleOf",
			"cannot divide number %s", instance.NumberText())

	default:
		return true, nil
	}
}

func (m *multipleOfSchema) Release() {}

// floatMultiple reports whether f is a multiple of divisor.
// Exact division is tried first; otherwise the truncated quotient is
// multiplied back and compared within one ULP, which tolerates IEEE
// rounding on values like 0.1 scaled by small integers.
func floatMultiple(f, divisor float64) bool {
	q := f / divisor
	if q == math.Trunc(q) {
		return true
	}
	p := math.Trunc(q) * divisor
	return ulpEqual(p, f)
}

// ulpEqual reports whether a and b are equal or adjacent floats.
func ulpEqual(a, b float64) bool {
	return a == b || math.Nextafter(a, b) == b || math.Nextafter(b, a) == a
}
