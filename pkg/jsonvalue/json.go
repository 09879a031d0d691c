package jsonvalue

import (
	"bytes"
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// MarshalJSON marshals a [Value] back into JSON text.
// Object members are written in document order.
// This implements [encoding/json.Marshaler].
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := marshalValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalValue(buf *bytes.Buffer, v *Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")

	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))

	case KindInt:
		buf.Write(strconv.AppendInt(nil, v.i, 10))

	case KindFloat:
		data, err := gojson.Marshal(v.f)
		if err != nil {
			return err
		}
		buf.Write(data)

	case KindNumberString:
		// Already raw JSON number text.
		buf.Write(v.s)

	case KindString:
		data, err := gojson.Marshal(string(v.s))
		if err != nil {
			return err
		}
		buf.Write(data)

	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')

	case KindObject:
		buf.WriteByte('{')
		first := true
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			key, err := gojson.Marshal(pair.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := marshalValue(buf, pair.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')

	default:
		return fmt.Errorf("cannot marshal value of kind %d", int(v.kind))
	}

	return nil
}

// String returns the JSON text of the value, for debugging.
func (v *Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid value: %v>", err)
	}
	return string(data)
}
