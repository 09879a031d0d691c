// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder defines a [Builder] type that may be used
// to build a schema document step by step.
//
// The result is a [jsonvalue.Value] object, suitable for
// jsonschema.Compile. This should be used by programs that need to
// create a schema from scratch, rather than parsing it from a JSON
// representation.
package builder

import (
	"fmt"

	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

// Builder builds a schema document.
// Builder provides a list of chainable methods, one per supported
// keyword. Methods panic on arguments that could never compile, such
// as a nil sub-schema; everything else is left to the compiler, which
// checks keyword values precisely.
type Builder struct {
	doc *jsonvalue.Value
}

// New returns a new empty [Builder].
// An empty builder builds the empty schema object, which accepts
// every instance.
func New() *Builder {
	return &Builder{doc: jsonvalue.NewObject()}
}

// Build returns the schema document built so far.
// The builder must not be used after Build.
func (b *Builder) Build() *jsonvalue.Value {
	doc := b.doc
	b.doc = nil
	return doc
}

// Bool returns the trivial boolean schema document:
// true accepts everything, false rejects everything.
func Bool(accept bool) *jsonvalue.Value {
	return jsonvalue.NewBool(accept)
}

func (b *Builder) set(keyword string, val *jsonvalue.Value) *Builder {
	b.doc.SetMember(keyword, val)
	return b
}

// Type adds the type keyword.
// A single name is stored as a string, several names as an array.
func (b *Builder) Type(names ...string) *Builder {
	if len(names) == 1 {
		return b.set("type", jsonvalue.NewString(names[0]))
	}
	vals := make([]*jsonvalue.Value, len(names))
	for i, name := range names {
		vals[i] = jsonvalue.NewString(name)
	}
	return b.set("type", jsonvalue.NewArray(vals...))
}

// MinItems adds the minItems keyword.
func (b *Builder) MinItems(n int64) *Builder {
	return b.set("minItems", jsonvalue.NewInt(n))
}

// MaxItems adds the maxItems keyword.
func (b *Builder) MaxItems(n int64) *Builder {
	return b.set("maxItems", jsonvalue.NewInt(n))
}

// MinLength adds the minLength keyword.
// Lengths are measured in Unicode code points.
func (b *Builder) MinLength(n int64) *Builder {
	return b.set("minLength", jsonvalue.NewInt(n))
}

// MaxLength adds the maxLength keyword.
func (b *Builder) MaxLength(n int64) *Builder {
	return b.set("maxLength", jsonvalue.NewInt(n))
}

// MinimumInt adds the minimum keyword with an integer bound.
func (b *Builder) MinimumInt(n int64) *Builder {
	return b.set("minimum", jsonvalue.NewInt(n))
}

// Minimum adds the minimum keyword with a float bound.
func (b *Builder) Minimum(f float64) *Builder {
	return b.set("minimum", jsonvalue.NewFloat(f))
}

// MaximumInt adds the maximum keyword with an integer bound.
func (b *Builder) MaximumInt(n int64) *Builder {
	return b.set("maximum", jsonvalue.NewInt(n))
}

// Maximum adds the maximum keyword with a float bound.
func (b *Builder) Maximum(f float64) *Builder {
	return b.set("maximum", jsonvalue.NewFloat(f))
}

// ExclusiveMinimumInt adds the exclusiveMinimum keyword with an
// integer bound.
func (b *Builder) ExclusiveMinimumInt(n int64) *Builder {
	return b.set("exclusiveMinimum", jsonvalue.NewInt(n))
}

// ExclusiveMinimum adds the exclusiveMinimum keyword with a float
// bound.
func (b *Builder) ExclusiveMinimum(f float64) *Builder {
	return b.set("exclusiveMinimum", jsonvalue.NewFloat(f))
}

// ExclusiveMaximumInt adds the exclusiveMaximum keyword with an
// integer bound.
func (b *Builder) ExclusiveMaximumInt(n int64) *Builder {
	return b.set("exclusiveMaximum", jsonvalue.NewInt(n))
}

// ExclusiveMaximum adds the exclusiveMaximum keyword with a float
// bound.
func (b *Builder) ExclusiveMaximum(f float64) *Builder {
	return b.set("exclusiveMaximum", jsonvalue.NewFloat(f))
}

// MultipleOfInt adds the multipleOf keyword with an integer divisor.
func (b *Builder) MultipleOfInt(n int64) *Builder {
	return b.set("multipleOf", jsonvalue.NewInt(n))
}

// MultipleOf adds the multipleOf keyword with a float divisor.
func (b *Builder) MultipleOf(f float64) *Builder {
	return b.set("multipleOf", jsonvalue.NewFloat(f))
}

// Required adds the required keyword.
func (b *Builder) Required(names ...string) *Builder {
	vals := make([]*jsonvalue.Value, len(names))
	for i, name := range names {
		vals[i] = jsonvalue.NewString(name)
	}
	return b.set("required", jsonvalue.NewArray(vals...))
}

// Property adds one member to the properties keyword,
// keeping the order of Property calls.
// This panics if the sub-schema is nil.
func (b *Builder) Property(name string, sub *jsonvalue.Value) *Builder {
	if sub == nil {
		panic(fmt.Sprintf("properties schema for %q is nil", name))
	}
	props, ok := b.doc.Member("properties")
	if !ok {
		props = jsonvalue.NewObject()
		b.set("properties", props)
	}
	props.SetMember(name, sub)
	return b
}

// PatternProperty adds one member to the patternProperties keyword.
// This panics if the sub-schema is nil.
func (b *Builder) PatternProperty(pattern string, sub *jsonvalue.Value) *Builder {
	if sub == nil {
		panic(fmt.Sprintf("patternProperties schema for %q is nil", pattern))
	}
	props, ok := b.doc.Member("patternProperties")
	if !ok {
		props = jsonvalue.NewObject()
		b.set("patternProperties", props)
	}
	props.SetMember(pattern, sub)
	return b
}

// AdditionalProperties adds the additionalProperties keyword.
// This panics if the sub-schema is nil.
func (b *Builder) AdditionalProperties(sub *jsonvalue.Value) *Builder {
	if sub == nil {
		panic("additionalProperties schema is nil")
	}
	return b.set("additionalProperties", sub)
}

// AllOf adds the allOf keyword.
// This panics if the list of schemas is empty or any is nil.
func (b *Builder) AllOf(subs ...*jsonvalue.Value) *Builder {
	return b.set("allOf", schemaArray("allOf", subs))
}

// AnyOf adds the anyOf keyword.
// This panics if the list of schemas is empty or any is nil.
func (b *Builder) AnyOf(subs ...*jsonvalue.Value) *Builder {
	return b.set("anyOf", schemaArray("anyOf", subs))
}

// OneOf adds the oneOf keyword.
// This panics if the list of schemas is empty or any is nil.
func (b *Builder) OneOf(subs ...*jsonvalue.Value) *Builder {
	return b.set("oneOf", schemaArray("oneOf", subs))
}

func schemaArray(keyword string, subs []*jsonvalue.Value) *jsonvalue.Value {
	if len(subs) == 0 {
		panic(fmt.Sprintf("%s requires at least one schema", keyword))
	}
	for i, sub := range subs {
		if sub == nil {
			panic(fmt.Sprintf("%s schema %d is nil", keyword, i))
		}
	}
	return jsonvalue.NewArray(subs...)
}

// Not adds the not keyword.
// This panics if the sub-schema is nil.
func (b *Builder) Not(sub *jsonvalue.Value) *Builder {
	if sub == nil {
		panic("not schema is nil")
	}
	return b.set("not", sub)
}

// Enum adds the enum keyword.
func (b *Builder) Enum(values ...*jsonvalue.Value) *Builder {
	return b.set("enum", jsonvalue.NewArray(values...))
}

// Const adds the const keyword.
func (b *Builder) Const(value *jsonvalue.Value) *Builder {
	return b.set("const", value)
}

// Pattern adds the pattern keyword.
func (b *Builder) Pattern(expr string) *Builder {
	return b.set("pattern", jsonvalue.NewString(expr))
}
