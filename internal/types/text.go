package types

import (
	"strconv"
)

var _ Value = NewTextValue("")

type TextValue string

// NewTextValue returns a text value.
func NewTextValue(x string) TextValue {
	return TextValue(x)
}

func (v TextValue) V() any {
	return string(v)
}

func (v TextValue) Type() Type {
	return TypeText
}

func (v TextValue) IsZero() (bool, error) {
	return v == "", nil
}

func (v TextValue) String() string {
	return strconv.Quote(string(v))
}

func (v TextValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(v))), nil
}
