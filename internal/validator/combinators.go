// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"github.com/DrDeano/jsonschema/internal/validerr"
	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

// combinator selects how a combinatorSchema composes its children.
type combinator int

const (
	combineAll combinator = iota
	combineAny
	combineOne
)

// combinatorSchema implements allOf, anyOf and oneOf.
type combinatorSchema struct {
	op       combinator
	children []Node
}

// compileCombinator accepts a non-empty array of sub-schemas.
func compileCombinator(keyword string, op combinator, arg *jsonvalue.Value) (Node, error) {
	if arg.Kind() != jsonvalue.KindArray {
		return nil, validerr.NewCompile(validerr.CodeInvalidAllOfType, keyword,
			"got %s, expect an array of schemas", arg.Kind())
	}
	if arg.Len() == 0 {
		return nil, validerr.NewCompile(validerr.CodeAllAnyOneOfEmptyArray, keyword,
			"schema array must not be empty")
	}

	children := make([]Node, 0, arg.Len())
	for i := 0; i < arg.Len(); i++ {
		child, err := Compile(arg.At(i))
		if err != nil {
			releaseAll(children)
			return nil, err
		}
		children = append(children, child)
	}

	return &combinatorSchema{op: op, children: children}, nil
}

func (c *combinatorSchema) Validate(instance *jsonvalue.Value) (bool, error) {
	switch c.op {
	case combineAll:
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

	case combineAny:
		for _, child := range c.children {
			ok, err := child.Validate(instance)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil

	case combineOne:
		count := 0
		for _, child := range c.children {
			ok, err := child.Validate(instance)
			if err != nil {
				return false, err
			}
			if ok {
				count++
				if count > 1 {
					return false, nil
				}
			}
		}
		return count == 1, nil
	}

	return false, nil
}

func (c *combinatorSchema) Release() {
	releaseAll(c.children)
	c.children = nil
}

// notSchema implements the not keyword by negating its child.
type notSchema struct {
	child Node
}

func (n *notSchema) Validate(instance *jsonvalue.Value) (bool, error) {
	ok, err := n.child.Validate(instance)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (n *notSchema) Release() {
	n.child.Release()
	n.child = nil
}
