// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"bytes"
	"math"

	"github.com/DrDeano/jsonschema/internal/validerr"
	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

// enumSchema implements enum and const.
// It owns deep copies of the acceptable values; const compiles to a
// singleton list.
type enumSchema struct {
	values []*jsonvalue.Value
}

func compileEnum(arg *jsonvalue.Value) (Node, error) {
	if arg.Kind() != jsonvalue.KindArray {
		return nil, validerr.NewCompile(validerr.CodeEnumConstInvalidType, "enum",
			"got %s, expect an array", arg.Kind())
	}
	values := make([]*jsonvalue.Value, arg.Len())
	for i := 0; i < arg.Len(); i++ {
		values[i] = arg.At(i).Clone()
	}
	return &enumSchema{values: values}, nil
}

func compileConst(arg *jsonvalue.Value) Node {
	return &enumSchema{values: []*jsonvalue.Value{arg.Clone()}}
}

func (e *enumSchema) Validate(instance *jsonvalue.Value) (bool, error) {
	for _, v := range e.values {
		eq, err := valuesEqual(v, instance)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}
	return false, nil
}

func (e *enumSchema) Release() {
	e.values = nil
}

// valuesEqual reports deep equality of two JSON values.
//
// Numbers cross-compare: a float equals an integer when it has no
// fractional part and truncates to the same value. Arrays compare
// set-like: the lengths must match and every left element must be
// deep-equal to some right element. Objects compare by key set and
// member equality.
func valuesEqual(a, b *jsonvalue.Value) (bool, error) {
	if a.Kind() == jsonvalue.KindNumberString || b.Kind() == jsonvalue.KindNumberString {
		return false, validerr.NewValidate(validerr.CodeNumberString, "",
			"cannot compare unrepresentable number")
	}

	if a.IsNumber() && b.IsNumber() {
		return numbersEqual(a, b), nil
	}
	if a.Kind() != b.Kind() {
		return false, nil
	}

	switch a.Kind() {
	case jsonvalue.KindNull:
		return true, nil

	case jsonvalue.KindBool:
		return a.Bool() == b.Bool(), nil

	case jsonvalue.KindString:
		return bytes.Equal(a.StringBytes(), b.StringBytes()), nil

	case jsonvalue.KindArray:
		if a.Len() != b.Len() {
			return false, nil
		}
		for i := 0; i < a.Len(); i++ {
			found := false
			for j := 0; j < b.Len(); j++ {
				eq, err := valuesEqual(a.At(i), b.At(j))
				if err != nil {
					return false, err
				}
				if eq {
					found = true
					break
				}
			}
			if !found {
				return false, nil
			}
		}
		return true, nil

	case jsonvalue.KindObject:
		if a.Size() != b.Size() {
			return false, nil
		}
		for key, av := range a.Members() {
			bv, ok := b.Member(key)
			if !ok {
				return false, nil
			}
			eq, err := valuesEqual(av, bv)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	}

	return false, nil
}

func numbersEqual(a, b *jsonvalue.Value) bool {
	if a.Kind() == b.Kind() {
		if a.Kind() == jsonvalue.KindInt {
			return a.Int64() == b.Int64()
		}
		return a.Float64() == b.Float64()
	}

	// One integer, one float.
	i, f := a, b
	if a.Kind() == jsonvalue.KindFloat {
		i, f = b, a
	}
	fv := f.Float64()
	return math.Trunc(fv) == fv && int64(fv) == i.Int64()
}
