// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validerr defines the errors returned by schema compilation
// and by validation faults.
//
// The two taxonomies are disjoint: a [CompileError] means the schema
// document itself is malformed and no compiled schema exists, while a
// [ValidateError] means validation could not produce a verdict at all
// (for example a number the pipeline cannot represent, or an invalid
// UTF-8 string). An instance that merely fails its schema is not an
// error; the validator reports that as an ordinary false result.
package validerr

import (
	"errors"
	"fmt"
)

// Code identifies the precise failure within an error taxonomy.
type Code int

const (
	// Compile-time codes.
	CodeInvalidType Code = iota
	CodeInvalidMinMaxItemsType
	CodeInvalidMinimumMaximumType
	CodeInvalidMultipleOfType
	CodeInvalidPatternType
	CodePropertiesInvalidType
	CodeEnumConstInvalidType
	CodeInvalidAllOfType
	CodeInvalidFloatToInt
	CodeMultipleOfLessThanZero
	CodeAllAnyOneOfEmptyArray
	CodeNonExhaustiveSchemaValidators
	CodeUnsupportedTopLevel

	// Codes reported by either taxonomy.
	CodeNumberString
	CodeInvalidUTF8
)

var codeNames = map[Code]string{
	CodeInvalidType:                   "InvalidType",
	CodeInvalidMinMaxItemsType:        "InvalidMinMaxItemsType",
	CodeInvalidMinimumMaximumType:     "InvalidMinimumMaximumType",
	CodeInvalidMultipleOfType:         "InvalidMultipleOfType",
	CodeInvalidPatternType:            "InvalidPatternType",
	CodePropertiesInvalidType:         "PropertiesInvalidType",
	CodeEnumConstInvalidType:          "EnumConstInvalidType",
	CodeInvalidAllOfType:              "InvalidAllOfType",
	CodeInvalidFloatToInt:             "InvalidFloatToInt",
	CodeMultipleOfLessThanZero:        "MultipleOfLessThanZero",
	CodeAllAnyOneOfEmptyArray:         "AllAnyOneOfEmptyArray",
	CodeNonExhaustiveSchemaValidators: "NonExhaustiveSchemaValidators",
	CodeUnsupportedTopLevel:           "UnsupportedTopLevel",
	CodeNumberString:                  "NumberString",
	CodeInvalidUTF8:                   "InvalidUTF8",
}

// String returns the name of the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// CompileError is returned when a schema document cannot be compiled.
// No partial compiled schema survives a CompileError.
type CompileError struct {
	Code    Code
	Keyword string // the offending keyword, if any
	Message string
}

// Error returns the error message that a user should see.
// This implements the error interface.
func (e *CompileError) Error() string {
	if e.Keyword != "" {
		return fmt.Sprintf("%s: %q: %s", e.Code, e.Keyword, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewCompile returns a new [CompileError].
func NewCompile(code Code, keyword, format string, args ...any) *CompileError {
	return &CompileError{
		Code:    code,
		Keyword: keyword,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidateError is returned when validation cannot reach a verdict.
// It is distinct from an instance failing its schema.
type ValidateError struct {
	Code    Code
	Keyword string
	Message string
}

// Error returns the error message that a user should see.
// This implements the error interface.
func (e *ValidateError) Error() string {
	if e.Keyword != "" {
		return fmt.Sprintf("%s: %q: %s", e.Code, e.Keyword, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidate returns a new [ValidateError].
func NewValidate(code Code, keyword, format string, args ...any) *ValidateError {
	return &ValidateError{
		Code:    code,
		Keyword: keyword,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsCompileError reports whether err is or wraps a [CompileError].
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}

// IsValidateError reports whether err is or wraps a [ValidateError].
func IsValidateError(err error) bool {
	var ve *ValidateError
	return errors.As(err, &ve)
}

// CompileCode returns the code of the [CompileError] wrapped by err,
// and reports whether err holds one at all.
func CompileCode(err error) (Code, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return 0, false
}
