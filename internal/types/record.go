package types

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var _ Value = NewRecordValue()

// A Field is a named column of a record.
type Field struct {
	Name  string
	Value Value
}

// RecordValue is an ordered set of named columns.
type RecordValue struct {
	fields []Field
}

// NewRecordValue returns a record made of the given fields, in order.
func NewRecordValue(fields ...Field) *RecordValue {
	return &RecordValue{fields: fields}
}

// Add appends a column to the record. If the column already exists, its value is replaced.
// It must only be called while the record is being built.
func (r *RecordValue) Add(name string, v Value) *RecordValue {
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = v
			return r
		}
	}

	r.fields = append(r.fields, Field{Name: name, Value: v})
	return r
}

// Get returns the value of the given column.
func (r *RecordValue) Get(name string) (Value, error) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, nil
		}
	}

	return nil, errors.Wrapf(ErrColumnNotFound, "cannot find column %q", name)
}

// Fields returns the columns of the record. The returned slice must not be modified.
func (r *RecordValue) Fields() []Field {
	return r.fields
}

func (r *RecordValue) Len() int {
	return len(r.fields)
}

func (r *RecordValue) V() any {
	return r
}

func (r *RecordValue) Type() Type {
	return TypeRecord
}

func (r *RecordValue) IsZero() (bool, error) {
	return len(r.fields) == 0, nil
}

func (r *RecordValue) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Value.String())
	}
	sb.WriteByte('}')

	return sb.String()
}

func (r *RecordValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(f.Name))
		buf.WriteByte(':')
		data, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func AsRecord(v Value) *RecordValue {
	return v.V().(*RecordValue)
}
