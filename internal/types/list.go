package types

import (
	"bytes"
	"strings"
)

var _ Value = NewListValue()

// ListValue is an ordered list of values.
type ListValue []Value

// NewListValue returns a list holding vs. The slice is shared, not copied.
func NewListValue(vs ...Value) ListValue {
	return ListValue(vs)
}

func (v ListValue) V() any {
	return []Value(v)
}

func (v ListValue) Type() Type {
	return TypeList
}

func (v ListValue) IsZero() (bool, error) {
	return len(v) == 0, nil
}

func (v ListValue) Len() int {
	return len(v)
}

func (v ListValue) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

func (v ListValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := e.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

func AsList(v Value) ListValue {
	lv, ok := v.(ListValue)
	if !ok {
		return ListValue(v.V().([]Value))
	}

	return lv
}

// Items returns the elements of v if it is a list, or v itself otherwise.
func Items(v Value) []Value {
	if v.Type() == TypeList {
		return AsList(v)
	}

	return []Value{v}
}
