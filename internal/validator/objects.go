// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"fmt"
	"regexp"

	"github.com/DrDeano/jsonschema/internal/validerr"
	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

// propertyEntry is one element of a propertiesSchema.
// A literal-key entry has re == nil and matches a member by exact key;
// a regex entry matches a member whose key the pattern partially
// matches.
type propertyEntry struct {
	key      string
	re       *regexp.Regexp
	required bool
	child    Node
}

// propertiesSchema implements the joint semantics of properties,
// patternProperties, additionalProperties and required.
//
// The entry list keeps compile order: required names first, then
// properties (replacing the child of an entry already created for a
// required name), then patternProperties in document order.
type propertiesSchema struct {
	entries       []propertyEntry
	additional    Node
	requiredCount int
}

func compileProperties(required, properties, patternProps, additional *jsonvalue.Value) (Node, error) {
	p := &propertiesSchema{}

	fail := func(err error) (Node, error) {
		p.Release()
		return nil, err
	}

	if required != nil {
		if required.Kind() != jsonvalue.KindArray {
			return nil, validerr.NewCompile(validerr.CodePropertiesInvalidType, "required",
				"got %s, expect an array of strings", required.Kind())
		}
		for i := 0; i < required.Len(); i++ {
			name := required.At(i)
			if name.Kind() != jsonvalue.KindString {
				return nil, validerr.NewCompile(validerr.CodePropertiesInvalidType, "required",
					"element %d is %s, expect a string", i, name.Kind())
			}
			p.entries = append(p.entries, propertyEntry{
				key:      string(name.StringBytes()),
				required: true,
				child:    boolSchema{accept: true},
			})
			p.requiredCount++
		}
	}

	if properties != nil {
		if properties.Kind() != jsonvalue.KindObject {
			return fail(validerr.NewCompile(validerr.CodePropertiesInvalidType, "properties",
				"got %s, expect an object", properties.Kind()))
		}
		for name, sub := range properties.Members() {
			child, err := Compile(sub)
			if err != nil {
				return fail(err)
			}
			if i := findLiteralEntry(p.entries, name); i >= 0 {
				p.entries[i].child.Release()
				p.entries[i].child = child
			} else {
				p.entries = append(p.entries, propertyEntry{key: name, child: child})
			}
		}
	}

	if patternProps != nil {
		if patternProps.Kind() != jsonvalue.KindObject {
			return fail(validerr.NewCompile(validerr.CodePropertiesInvalidType, "patternProperties",
				"got %s, expect an object", patternProps.Kind()))
		}
		for src, sub := range patternProps.Members() {
			re, err := regexp.Compile(src)
			if err != nil {
				return fail(fmt.Errorf(`"patternProperties" regexp %q: %w`, src, err))
			}
			child, err := Compile(sub)
			if err != nil {
				return fail(err)
			}
			p.entries = append(p.entries, propertyEntry{re: re, child: child})
		}
	}

	if additional != nil {
		child, err := Compile(additional)
		if err != nil {
			return fail(err)
		}
		p.additional = child
	}

	return p, nil
}

func findLiteralEntry(entries []propertyEntry, key string) int {
	for i := range entries {
		if entries[i].re == nil && entries[i].key == key {
			return i
		}
	}
	return -1
}

func (p *propertiesSchema) Validate(instance *jsonvalue.Value) (bool, error) {
	if instance.Kind() != jsonvalue.KindObject {
		return true, nil
	}

	requiredMatches := 0
	for key, val := range instance.Members() {
		matched := false
		failed := false
		for i := range p.entries {
			e := &p.entries[i]
			if e.re == nil {
				if e.key != key {
					continue
				}
				if e.required {
					requiredMatches++
				}
			} else if !e.re.MatchString(key) {
				continue
			}
			matched = true

			ok, err := e.child.Validate(val)
			if err != nil {
				return false, err
			}
			if !ok {
				failed = true
			}
		}

		// An unmatched or failed member falls through to the
		// additionalProperties schema when one is configured; a failed
		// member rejects the instance regardless of its outcome.
		if (!matched || failed) && p.additional != nil {
			ok, err := p.additional.Validate(val)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		if failed {
			return false, nil
		}
	}

	return requiredMatches >= p.requiredCount, nil
}

func (p *propertiesSchema) Release() {
	if p.additional != nil {
		p.additional.Release()
		p.additional = nil
	}
	for i := len(p.entries) - 1; i >= 0; i-- {
		p.entries[i].child.Release()
		p.entries[i].re = nil
	}
	p.entries = nil
}
