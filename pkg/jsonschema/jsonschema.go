// Package jsonschema validates JSON instances against a pragmatic
// subset of JSON Schema Draft 7.
//
// A schema document is compiled once into an immutable [Schema] and
// then evaluated against any number of instances. Validation answers
// a single yes/no question; a non-nil error is reserved for pipeline
// faults (malformed schemas, unrepresentable numbers, invalid UTF-8)
// and never stands in for an ordinary mismatch.
package jsonschema

import (
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"

	"github.com/DrDeano/jsonschema/internal/validator"
	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

// Schema is a compiled schema, ready for repeated validation.
// A Schema is immutable and owns its compiled resources; call
// [Schema.Release] when done with it.
type Schema struct {
	root validator.Node
}

// Compile translates a schema document into a [Schema].
//
// The document must be a JSON object or a boolean. Every key of a
// schema object must be a recognized keyword; unrecognized keywords
// fail compilation rather than being ignored. On failure no partial
// schema is retained.
func Compile(doc *jsonvalue.Value) (*Schema, error) {
	root, err := validator.Compile(doc)
	if err != nil {
		return nil, err
	}
	return &Schema{root: root}, nil
}

// New parses data as JSON and compiles it into a [Schema].
func New(data []byte) (*Schema, error) {
	doc, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("parse schema: %w", err))
	}
	return Compile(doc)
}

// Validate reports whether instance satisfies the schema.
// The instance is only read, never retained or mutated.
func (s *Schema) Validate(instance *jsonvalue.Value) (bool, error) {
	return s.root.Validate(instance)
}

// ValidateJSON parses data as JSON and validates it against the
// schema.
func (s *Schema) ValidateJSON(data []byte) (bool, error) {
	instance, err := jsonvalue.Parse(data)
	if err != nil {
		return false, motmedelErrors.NewWithTrace(fmt.Errorf("parse instance: %w", err))
	}
	return s.Validate(instance)
}

// Release tears down the compiled schema. The schema must not be used
// or released again afterward.
func (s *Schema) Release() {
	if s.root != nil {
		s.root.Release()
		s.root = nil
	}
}

// CompileAndValidate compiles doc, validates instance against it, and
// releases the intermediate schema before returning.
func CompileAndValidate(doc, instance *jsonvalue.Value) (bool, error) {
	s, err := Compile(doc)
	if err != nil {
		return false, err
	}
	defer s.Release()
	return s.Validate(instance)
}
