package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrColumnNotFound is returned by records when the requested column doesn't exist.
	ErrColumnNotFound = errors.New("column not found")

	// ErrIncomparable is returned when two values cannot be ordered relative to each other.
	ErrIncomparable = errors.New("values are not comparable")
)

// Type represents the kind of a value flowing through a pipeline.
type Type uint8

// List of supported types.
const (
	// TypeAny denotes the absence of type
	TypeAny Type = iota
	TypeNull
	TypeBoolean
	TypeInteger
	TypeDouble
	TypeText
	TypeTimestamp
	TypeList
	TypeRecord
	TypeBlock
)

func (t Type) String() string {
	switch t {
	case TypeAny:
		return "any"
	case TypeNull:
		return "nothing"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeDouble:
		return "double"
	case TypeText:
		return "text"
	case TypeTimestamp:
		return "timestamp"
	case TypeList:
		return "list"
	case TypeRecord:
		return "record"
	case TypeBlock:
		return "block"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// IsNumber returns true if t is either an integer or a double.
func (t Type) IsNumber() bool {
	return t == TypeInteger || t == TypeDouble
}

// IsAny returns whether this is type is Any or a real type
func (t Type) IsAny() bool {
	return t == TypeAny
}

// A Value is a single item of a pipeline.
// Values are immutable: copying a Value shares it.
type Value interface {
	Type() Type
	V() any
	String() string
	IsZero() (bool, error)
	MarshalJSON() ([]byte, error)
}
