// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"testing"

	"github.com/DrDeano/jsonschema/pkg/jsonvalue"
)

func mustParse(t *testing.T, data string) *jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse(%q): %v", data, err)
	}
	return v
}

func mustCompile(t *testing.T, schema string) Node {
	t.Helper()
	n, err := Compile(mustParse(t, schema))
	if err != nil {
		t.Fatalf("Compile(%s): %v", schema, err)
	}
	return n
}

func TestValidate(t *testing.T) {
	tests := []struct {
		schema   string
		instance string
		want     bool
	}{
		// Boolean and empty schemas.
		{`true`, `1`, true},
		{`true`, `{"any":"thing"}`, true},
		{`false`, `1`, false},
		{`false`, `null`, false},
		{`{}`, `1`, true},
		{`{}`, `[1,2,3]`, true},

		// type.
		{`{"type":"integer"}`, `1`, true},
		{`{"type":"integer"}`, `1.0`, true},
		{`{"type":"integer"}`, `1.1`, false},
		{`{"type":"integer"}`, `"1"`, false},
		{`{"type":"number"}`, `1`, true},
		{`{"type":"number"}`, `1.5`, true},
		{`{"type":"number"}`, `"1"`, false},
		{`{"type":"string"}`, `"hi"`, true},
		{`{"type":"string"}`, `1`, false},
		{`{"type":"object"}`, `{}`, true},
		{`{"type":"object"}`, `[]`, false},
		{`{"type":"array"}`, `[]`, true},
		{`{"type":"array"}`, `{}`, false},
		{`{"type":"boolean"}`, `true`, true},
		{`{"type":"boolean"}`, `null`, false},
		{`{"type":"null"}`, `null`, true},
		{`{"type":"null"}`, `false`, false},
		{`{"type":["string","null"]}`, `null`, true},
		{`{"type":["string","null"]}`, `"x"`, true},
		{`{"type":["string","null"]}`, `1`, false},

		// minItems / maxItems.
		{`{"minItems":2}`, `[1,2]`, true},
		{`{"minItems":2}`, `[1]`, false},
		{`{"maxItems":2}`, `[1,2]`, true},
		{`{"maxItems":2}`, `[1,2,3]`, false},
		{`{"minItems":1,"maxItems":2}`, `[1,2]`, true},
		{`{"minItems":1,"maxItems":2}`, `[]`, false},
		{`{"minItems":2}`, `"not an array"`, true},
		{`{"minItems":2.0}`, `[1]`, false},

		// minLength / maxLength count code points, not bytes.
		{`{"minLength":2}`, `"ab"`, true},
		{`{"minLength":2}`, `"a"`, false},
		{`{"maxLength":1}`, `"😀"`, true},
		{`{"maxLength":1}`, `"ab"`, false},
		{`{"minLength":2,"maxLength":2}`, `"héllo"`, false},
		{`{"maxLength":5}`, `"héllo"`, true},
		{`{"minLength":2}`, `12`, true},

		// minimum / maximum.
		{`{"minimum":0,"maximum":10}`, `0`, true},
		{`{"minimum":0,"maximum":10}`, `10`, true},
		{`{"minimum":0,"maximum":10}`, `-1`, false},
		{`{"minimum":0,"maximum":10}`, `11`, false},
		{`{"minimum":0.5}`, `0.5`, true},
		{`{"minimum":0.5}`, `0.4`, false},
		{`{"minimum":0}`, `"zero"`, true},
		// Integer instances compare in integer space; float bounds
		// truncate.
		{`{"minimum":1.5}`, `1`, true},
		{`{"maximum":1.5}`, `2`, false},
		// Float instances compare in float space; integer bounds widen.
		{`{"minimum":1}`, `0.5`, false},
		{`{"minimum":1}`, `1.5`, true},

		// exclusiveMinimum / exclusiveMaximum.
		{`{"minimum":0,"exclusiveMaximum":10}`, `0`, true},
		{`{"minimum":0,"exclusiveMaximum":10}`, `10`, false},
		{`{"exclusiveMinimum":0}`, `0`, false},
		{`{"exclusiveMinimum":0}`, `1`, true},
		{`{"exclusiveMinimum":0,"exclusiveMaximum":1}`, `0.5`, true},

		// multipleOf.
		{`{"multipleOf":3}`, `9`, true},
		{`{"multipleOf":3}`, `10`, false},
		{`{"multipleOf":0.1}`, `1.1`, true},
		{`{"multipleOf":0.1}`, `1.05`, false},
		{`{"multipleOf":0.5}`, `3`, true},
		{`{"multipleOf":2}`, `4.0`, true},
		{`{"multipleOf":2}`, `5.0`, false},
		{`{"multipleOf":3}`, `"nine"`, true},

		// properties / required.
		{`{"properties":{"a":{"type":"integer"}},"required":["a"]}`, `{"a":1}`, true},
		{`{"properties":{"a":{"type":"integer"}},"required":["a"]}`, `{}`, false},
		{`{"properties":{"a":{"type":"integer"}}}`, `{}`, true},
		{`{"properties":{"a":{"type":"integer"}}}`, `{"a":"x"}`, false},
		{`{"properties":{"a":{"type":"integer"}}}`, `{"b":"x"}`, true},
		{`{"required":["a","b"]}`, `{"a":1,"b":2,"c":3}`, true},
		{`{"required":["a","b"]}`, `{"a":1}`, false},
		{`{"properties":{"a":{}}}`, `"not an object"`, true},

		// patternProperties / additionalProperties.
		{`{"patternProperties":{"^x":{"type":"integer"}},"additionalProperties":false}`, `{"x1":1,"y":2}`, false},
		{`{"patternProperties":{"^x":{"type":"integer"}},"additionalProperties":false}`, `{"x1":1,"x2":2}`, true},
		{`{"patternProperties":{"^x":{"type":"integer"}}}`, `{"x1":"no"}`, false},
		{`{"additionalProperties":false}`, `{}`, true},
		{`{"additionalProperties":false}`, `{"a":1}`, false},
		{`{"additionalProperties":{"type":"integer"}}`, `{"a":1,"b":2}`, true},
		{`{"additionalProperties":{"type":"integer"}}`, `{"a":"x"}`, false},
		{`{"properties":{"a":{}},"additionalProperties":false}`, `{"a":1}`, true},
		{`{"properties":{"a":{}},"additionalProperties":false}`, `{"a":1,"b":2}`, false},
		// A member that matched but failed rejects even when
		// additionalProperties would accept it.
		{`{"properties":{"a":{"type":"integer"}},"additionalProperties":true}`, `{"a":"x"}`, false},

		// allOf / anyOf / oneOf.
		{`{"allOf":[{"type":"integer"},{"minimum":0}]}`, `1`, true},
		{`{"allOf":[{"type":"integer"},{"minimum":0}]}`, `-1`, false},
		{`{"allOf":[{"type":"integer"},{"minimum":0}]}`, `0.5`, false},
		{`{"anyOf":[{"type":"integer"},{"minimum":0}]}`, `0.5`, true},
		{`{"anyOf":[{"type":"string"},{"type":"null"}]}`, `1`, false},
		{`{"oneOf":[{"type":"integer"},{"minimum":0}]}`, `1`, false},
		{`{"oneOf":[{"type":"integer"},{"minimum":0}]}`, `-1`, true},
		{`{"oneOf":[{"type":"integer"},{"minimum":0}]}`, `0.5`, true},
		{`{"oneOf":[{"type":"string"},{"type":"null"}]}`, `1`, false},

		// not.
		{`{"not":{"type":"string"}}`, `"hi"`, false},
		{`{"not":{"type":"string"}}`, `1`, true},
		{`{"not":true}`, `1`, false},
		{`{"not":false}`, `1`, true},

		// enum / const.
		{`{"enum":[1,"two",null]}`, `1`, true},
		{`{"enum":[1,"two",null]}`, `"two"`, true},
		{`{"enum":[1,"two",null]}`, `null`, true},
		{`{"enum":[1,"two",null]}`, `2`, false},
		{`{"enum":[1]}`, `1.0`, true},
		{`{"enum":[1.0]}`, `1`, true},
		{`{"enum":[1.5]}`, `1`, false},
		{`{"enum":[]}`, `1`, false},
		{`{"const":"x"}`, `"x"`, true},
		{`{"const":"x"}`, `"y"`, false},
		{`{"const":{"a":[1,2]}}`, `{"a":[2,1]}`, true},
		{`{"const":{"a":[1,2]}}`, `{"a":[1,3]}`, false},
		{`{"const":{"a":1}}`, `{"a":1,"b":2}`, false},
		{`{"const":[1,2]}`, `[1,2,3]`, false},

		// pattern matches any substring.
		{`{"pattern":"^a"}`, `"abc"`, true},
		{`{"pattern":"b"}`, `"abc"`, true},
		{`{"pattern":"^b"}`, `"abc"`, false},
		{`{"pattern":"^a"}`, `1`, true},

		// Several keyword groups conjoin.
		{`{"type":"integer","minimum":0,"multipleOf":2}`, `4`, true},
		{`{"type":"integer","minimum":0,"multipleOf":2}`, `3`, false},
		{`{"type":"integer","minimum":0,"multipleOf":2}`, `-2`, false},
		{`{"type":"integer","minimum":0,"multipleOf":2}`, `"4"`, false},
	}

	for _, test := range tests {
		n := mustCompile(t, test.schema)
		got, err := n.Validate(mustParse(t, test.instance))
		if err != nil {
			t.Errorf("Validate(%s, %s): %v", test.schema, test.instance, err)
			continue
		}
		if got != test.want {
			t.Errorf("Validate(%s, %s) = %t, want %t", test.schema, test.instance, got, test.want)
		}
		n.Release()
	}
}

func TestNestedSchemas(t *testing.T) {
	schema := `{
		"type": "object",
		"required": ["name", "tags"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"tags": {
				"type": "array",
				"minItems": 1,
				"maxItems": 3
			},
			"age": {"type": "integer", "minimum": 0}
		},
		"additionalProperties": false
	}`

	tests := []struct {
		instance string
		want     bool
	}{
		{`{"name":"n","tags":["a"]}`, true},
		{`{"name":"n","tags":["a"],"age":3}`, true},
		{`{"name":"","tags":["a"]}`, false},
		{`{"name":"n","tags":[]}`, false},
		{`{"name":"n","tags":["a","b","c","d"]}`, false},
		{`{"name":"n","tags":["a"],"age":-1}`, false},
		{`{"name":"n","tags":["a"],"extra":true}`, false},
		{`{"tags":["a"]}`, false},
	}

	n := mustCompile(t, schema)
	defer n.Release()
	for _, test := range tests {
		got, err := n.Validate(mustParse(t, test.instance))
		if err != nil {
			t.Errorf("Validate(%s): %v", test.instance, err)
			continue
		}
		if got != test.want {
			t.Errorf("Validate(%s) = %t, want %t", test.instance, got, test.want)
		}
	}
}

func TestInvalidUTF8Length(t *testing.T) {
	n := mustCompile(t, `{"minLength":1}`)
	defer n.Release()

	bad := jsonvalue.NewString("a\xffb")
	if _, err := n.Validate(bad); err == nil {
		t.Error("Validate on invalid UTF-8 succeeded, want error")
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	n := mustCompile(t, `{"properties":{"a":{"type":"integer"}},"required":["a"],"pattern":"x"}`)
	defer n.Release()

	instance := mustParse(t, `{"a":1}`)
	for i := 0; i < 3; i++ {
		got, err := n.Validate(instance)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if !got {
			t.Fatalf("Validate = false on run %d, want true", i)
		}
	}
}
