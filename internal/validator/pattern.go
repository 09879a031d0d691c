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

// patternSchema implements the pattern keyword.
// Matching is partial: the pattern may match any substring of the
// instance.
type patternSchema struct {
	re *regexp.Regexp
}

func compilePattern(arg *jsonvalue.Value) (Node, error) {
	if arg.Kind() != jsonvalue.KindString {
		return nil, validerr.NewCompile(validerr.CodeInvalidPatternType, "pattern",
			"got %s, expect a string", arg.Kind())
	}
	re, err := regexp.Compile(string(arg.StringBytes()))
	if err != nil {
		return nil, fmt.Errorf(`"pattern" regexp %q: %w`, arg.StringBytes(), err)
	}
	return &patternSchema{re: re}, nil
}

func (p *patternSchema) Validate(instance *jsonvalue.Value) (bool, error) {
	if instance.Kind() != jsonvalue.KindString {
		return true, nil
	}
	return p.re.Match(instance.StringBytes()), nil
}

func (p *patternSchema) Release() {
	p.re = nil
}
