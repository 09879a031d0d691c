// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package builder_test

import (
	"testing"

	"github.com/DrDeano/jsonschema/pkg/builder"
	"github.com/DrDeano/jsonschema/pkg/jsonschema"
	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

func TestBuildDocument(t *testing.T) {
	doc := builder.New().
		Type("object").
		Required("name").
		Property("name", builder.New().Type("string").MinLength(1).Build()).
		Property("count", builder.New().Type("integer").MinimumInt(0).Build()).
		AdditionalProperties(builder.Bool(false)).
		Build()

	want := `{"type":"object","required":["name"],` +
		`"properties":{"name":{"type":"string","minLength":1},` +
		`"count":{"type":"integer","minimum":0}},` +
		`"additionalProperties":false}`
	if got := doc.String(); got != want {
		t.Errorf("Build() = %s, want %s", got, want)
	}
}

func TestBuiltDocumentCompiles(t *testing.T) {
	doc := builder.New().
		Type("object").
		Required("name").
		Property("name", builder.New().Type("string").MinLength(1).Build()).
		PatternProperty("^x", builder.New().Type("integer").Build()).
		Build()

	s, err := jsonschema.Compile(doc)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	defer s.Release()

	tests := []struct {
		instance string
		want     bool
	}{
		{`{"name":"n"}`, true},
		{`{"name":"n","x1":3}`, true},
		{`{"name":"n","x1":"no"}`, false},
		{`{"name":""}`, false},
		{`{}`, false},
	}
	for _, test := range tests {
		got, err := s.ValidateJSON([]byte(test.instance))
		if err != nil {
			t.Errorf("ValidateJSON(%s): %v", test.instance, err)
			continue
		}
		if got != test.want {
			t.Errorf("ValidateJSON(%s) = %t, want %t", test.instance, got, test.want)
		}
	}
}

func TestBuilderMatchesParsedSchema(t *testing.T) {
	doc := builder.New().
		Type("integer", "null").
		MinimumInt(0).
		ExclusiveMaximumInt(10).
		Build()

	built, err := jsonschema.Compile(doc)
	if err != nil {
		t.Fatalf("Compile(built): %v", err)
	}
	defer built.Release()

	parsed, err := jsonschema.New([]byte(`{"type":["integer","null"],"minimum":0,"exclusiveMaximum":10}`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer parsed.Release()

	for _, instance := range []string{`0`, `9`, `10`, `-1`, `null`, `1.5`, `"x"`} {
		a, err1 := built.ValidateJSON([]byte(instance))
		b, err2 := parsed.ValidateJSON([]byte(instance))
		if err1 != nil || err2 != nil {
			t.Errorf("errors for %s: %v, %v", instance, err1, err2)
			continue
		}
		if a != b {
			t.Errorf("built(%s) = %t, parsed = %t", instance, a, b)
		}
	}
}

func TestBuilderCombinators(t *testing.T) {
	doc := builder.New().
		OneOf(
			builder.New().Type("integer").Build(),
			builder.New().MinimumInt(0).Build(),
		).
		Build()

	want := `{"oneOf":[{"type":"integer"},{"minimum":0}]}`
	if got := doc.String(); got != want {
		t.Errorf("Build() = %s, want %s", got, want)
	}
}

func TestBuilderEnumConst(t *testing.T) {
	doc := builder.New().
		Enum(jsonvalue.NewInt(1), jsonvalue.NewString("two"), jsonvalue.Null()).
		Build()
	want := `{"enum":[1,"two",null]}`
	if got := doc.String(); got != want {
		t.Errorf("Build() = %s, want %s", got, want)
	}

	doc = builder.New().Const(jsonvalue.NewString("x")).Build()
	if got, want := doc.String(), `{"const":"x"}`; got != want {
		t.Errorf("Build() = %s, want %s", got, want)
	}
}

func TestBuilderPanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}

	mustPanic("Property(nil)", func() { builder.New().Property("a", nil) })
	mustPanic("Not(nil)", func() { builder.New().Not(nil) })
	mustPanic("AllOf()", func() { builder.New().AllOf() })
	mustPanic("OneOf(nil)", func() { builder.New().OneOf(nil) })
}
