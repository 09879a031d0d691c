// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"math"

	"github.com/DrDeano/jsonschema/internal/validerr"
	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

// typeSet is a bit set over the recognized "type" names.
// Integer and number are distinct members: "number" accepts both
// numeric tags while "integer" accepts floats only when they carry no
// fractional part.
type typeSet uint16

const (
	typeObject typeSet = 1 << iota
	typeArray
	typeString
	typeBoolean
	typeNull
	typeInteger
	typeNumber
)

var typeNames = map[string]typeSet{
	"integer": typeInteger,
	"number":  typeNumber,
	"string":  typeString,
	"object":  typeObject,
	"array":   typeArray,
	"boolean": typeBoolean,
	"null":    typeNull,
}

// typesSchema implements the type keyword.
type typesSchema struct {
	set typeSet
}

// compileTypes accepts a type name or an array of type names.
func compileTypes(arg *jsonvalue.Value) (Node, error) {
	var set typeSet
	switch arg.Kind() {
	case jsonvalue.KindString:
		t, ok := typeNames[string(arg.StringBytes())]
		if !ok {
			return nil, validerr.NewCompile(validerr.CodeInvalidType, "type",
				"unknown type name %q", arg.StringBytes())
		}
		set = t

	case jsonvalue.KindArray:
		for i := 0; i < arg.Len(); i++ {
			e := arg.At(i)
			if e.Kind() != jsonvalue.KindString {
				return nil, validerr.NewCompile(validerr.CodeInvalidType, "type",
					"type name must be a string, got %s", e.Kind())
			}
			t, ok := typeNames[string(e.StringBytes())]
			if !ok {
				return nil, validerr.NewCompile(validerr.CodeInvalidType, "type",
					"unknown type name %q", e.StringBytes())
			}
			set |= t
		}

	default:
		return nil, validerr.NewCompile(validerr.CodeInvalidType, "type",
			"got %s, expect a string or an array of strings", arg.Kind())
	}

	return &typesSchema{set: set}, nil
}

func (t *typesSchema) Validate(instance *jsonvalue.Value) (bool, error) {
	switch instance.Kind() {
	case jsonvalue.KindObject:
		return t.set&typeObject != 0, nil
	case jsonvalue.KindArray:
		return t.set&typeArray != 0, nil
	case jsonvalue.KindString:
		return t.set&typeString != 0, nil
	case jsonvalue.KindBool:
		return t.set&typeBoolean != 0, nil
	case jsonvalue.KindNull:
		return t.set&typeNull != 0, nil
	case jsonvalue.KindInt:
		return t.set&(typeInteger|typeNumber) != 0, nil
	case jsonvalue.KindFloat:
		if t.set&typeNumber != 0 {
			return true, nil
		}
		f := instance.Float64()
		return t.set&typeInteger != 0 && math.Floor(f) == f && math.Ceil(f) == f, nil
	case jsonvalue.KindNumberString:
		return false, validerr.NewValidate(validerr.CodeNumberString, "type",
			"cannot type-check number %s", instance.NumberText())
	}
	return false, nil
}

func (t *typesSchema) Release() {}
