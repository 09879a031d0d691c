// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validator compiles schema documents into a tree of typed
// validators and evaluates instances against that tree.
//
// A compiled schema is a [Node]. Each supported keyword family is its
// own Node implementation; a schema object compiles into a conjunction
// of one Node per recognized keyword group. Compilation consumes every
// key of the schema object or fails, so unrecognized keywords are
// rejected rather than ignored.
package validator

import (
	"strings"

	"github.com/DrDeano/jsonschema/internal/validerr"
	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

// Node is one element of a compiled schema.
//
// A Node exclusively owns its children and any embedded regular
// expressions; the ownership forms a tree with no cycles.
type Node interface {
	// Validate reports whether instance satisfies this schema element.
	// A non-nil error means no verdict could be reached; it is never
	// used to report an ordinary mismatch.
	Validate(instance *jsonvalue.Value) (bool, error)

	// Release tears down the node and everything it owns, children in
	// reverse construction order. A released node must not be used
	// again, and must not be released twice.
	Release()
}

// boolSchema is the trivial schema: true accepts every instance,
// false rejects every instance.
type boolSchema struct {
	accept bool
}

func (b boolSchema) Validate(*jsonvalue.Value) (bool, error) { return b.accept, nil }

func (b boolSchema) Release() {}

// conjunction requires every child schema to validate.
// An empty conjunction accepts everything.
type conjunction struct {
	children []Node
}

func (c *conjunction) Validate(instance *jsonvalue.Value) (bool, error) {
	for _, child := range c.children {
		ok, err := child.Validate(instance)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (c *conjunction) Release() {
	for i := len(c.children) - 1; i >= 0; i-- {
		c.children[i].Release()
	}
	c.children = nil
}

// recognizedKeywords lists every schema object key the compiler
// consumes. Anything else fails compilation.
var recognizedKeywords = map[string]bool{
	"type":                 true,
	"minItems":             true,
	"maxItems":             true,
	"minLength":            true,
	"maxLength":            true,
	"minimum":              true,
	"maximum":              true,
	"exclusiveMinimum":     true,
	"exclusiveMaximum":     true,
	"multipleOf":           true,
	"properties":           true,
	"patternProperties":    true,
	"additionalProperties": true,
	"required":             true,
	"allOf":                true,
	"anyOf":                true,
	"oneOf":                true,
	"not":                  true,
	"enum":                 true,
	"const":                true,
	"pattern":              true,
}

// Compile translates a schema document into a compiled [Node].
// On failure everything compiled so far is released; no partial
// result is returned.
func Compile(doc *jsonvalue.Value) (Node, error) {
	switch doc.Kind() {
	case jsonvalue.KindBool:
		return boolSchema{accept: doc.Bool()}, nil
	case jsonvalue.KindObject:
		return compileObject(doc)
	default:
		return nil, validerr.NewCompile(validerr.CodeUnsupportedTopLevel, "",
			"schema must be an object or a boolean, got %s", doc.Kind())
	}
}

// compileObject builds a conjunction with one child per recognized
// keyword group present in obj, then checks that the groups consumed
// every key of the object.
func compileObject(obj *jsonvalue.Value) (Node, error) {
	conj := &conjunction{}
	consumed := 0

	fail := func(err error) (Node, error) {
		conj.Release()
		return nil, err
	}
	add := func(n Node, keys int) {
		conj.children = append(conj.children, n)
		consumed += keys
	}

	if v, ok := obj.Member("type"); ok {
		n, err := compileTypes(v)
		if err != nil {
			return fail(err)
		}
		add(n, 1)
	}

	for _, g := range []struct {
		minKey, maxKey string
		kind           minMaxKind
	}{
		{"minItems", "maxItems", minMaxItems},
		{"minLength", "maxLength", minMaxLength},
	} {
		minV, okMin := obj.Member(g.minKey)
		maxV, okMax := obj.Member(g.maxKey)
		if !okMin && !okMax {
			continue
		}
		n, err := compileMinMax(g.kind, minV, g.minKey, maxV, g.maxKey)
		if err != nil {
			return fail(err)
		}
		add(n, boolCount(okMin)+boolCount(okMax))
	}

	for _, g := range []struct {
		minKey, maxKey string
		exclusive      bool
	}{
		{"minimum", "maximum", false},
		{"exclusiveMinimum", "exclusiveMaximum", true},
	} {
		minV, okMin := obj.Member(g.minKey)
		maxV, okMax := obj.Member(g.maxKey)
		if !okMin && !okMax {
			continue
		}
		n, err := compileBounds(g.exclusive, minV, g.minKey, maxV, g.maxKey)
		if err != nil {
			return fail(err)
		}
		add(n, boolCount(okMin)+boolCount(okMax))
	}

	if v, ok := obj.Member("multipleOf"); ok {
		n, err := compileMultipleOf(v)
		if err != nil {
			return fail(err)
		}
		add(n, 1)
	}

	required, okRequired := obj.Member("required")
	properties, okProperties := obj.Member("properties")
	patternProps, okPatternProps := obj.Member("patternProperties")
	additional, okAdditional := obj.Member("additionalProperties")
	if okRequired || okProperties || okPatternProps || okAdditional {
		n, err := compileProperties(required, properties, patternProps, additional)
		if err != nil {
			return fail(err)
		}
		add(n, boolCount(okRequired)+boolCount(okProperties)+
			boolCount(okPatternProps)+boolCount(okAdditional))
	}

	for _, g := range []struct {
		keyword string
		op      combinator
	}{
		{"allOf", combineAll},
		{"anyOf", combineAny},
		{"oneOf", combineOne},
	} {
		v, ok := obj.Member(g.keyword)
		if !ok {
			continue
		}
		n, err := compileCombinator(g.keyword, g.op, v)
		if err != nil {
			return fail(err)
		}
		add(n, 1)
	}

	if v, ok := obj.Member("not"); ok {
		child, err := Compile(v)
		if err != nil {
			return fail(err)
		}
		add(&notSchema{child: child}, 1)
	}

	if v, ok := obj.Member("enum"); ok {
		n, err := compileEnum(v)
		if err != nil {
			return fail(err)
		}
		add(n, 1)
	}

	if v, ok := obj.Member("const"); ok {
		add(compileConst(v), 1)
	}

	if v, ok := obj.Member("pattern"); ok {
		n, err := compilePattern(v)
		if err != nil {
			return fail(err)
		}
		add(n, 1)
	}

	if consumed != obj.Size() {
		var unknown []string
		for key := range obj.Members() {
			if !recognizedKeywords[key] {
				unknown = append(unknown, key)
			}
		}
		return fail(validerr.NewCompile(validerr.CodeNonExhaustiveSchemaValidators, "",
			"unrecognized schema keywords: %s", strings.Join(unknown, ", ")))
	}

	return conj, nil
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

// releaseAll releases nodes in reverse order. It is used by keyword
// compilers to drop already-compiled siblings when a later sibling
// fails.
func releaseAll(nodes []Node) {
	for i := len(nodes) - 1; i >= 0; i-- {
		nodes[i].Release()
	}
}
