package types

var _ Value = NewNullValue()

// NullValue is the absence of a value.
type NullValue struct{}

// NewNullValue returns a null value.
func NewNullValue() NullValue {
	return NullValue{}
}

func (v NullValue) V() any {
	return nil
}

func (v NullValue) Type() Type {
	return TypeNull
}

func (v NullValue) IsZero() (bool, error) {
	return false, nil
}

func (v NullValue) String() string {
	return "null"
}

func (v NullValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
