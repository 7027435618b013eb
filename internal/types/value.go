package types

import (
	"time"
)

func AsBool(v Value) bool {
	return v.V().(bool)
}

func AsInt64(v Value) int64 {
	iv, ok := v.(IntegerValue)
	if ok {
		return int64(iv)
	}

	return v.V().(int64)
}

func AsFloat64(v Value) float64 {
	dv, ok := v.(DoubleValue)
	if !ok {
		return v.V().(float64)
	}

	return float64(dv)
}

func AsTime(v Value) time.Time {
	tv, ok := v.(TimestampValue)
	if !ok {
		return v.V().(time.Time)
	}

	return time.Time(tv)
}

func AsString(v Value) string {
	tv, ok := v.(TextValue)
	if !ok {
		return v.V().(string)
	}

	return string(tv)
}

func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}

// IsTrue reports whether v is the boolean true.
// Any other value, including non-zero numbers and non-empty text, is not true.
func IsTrue(v Value) bool {
	if v == nil || v.Type() != TypeBoolean {
		return false
	}

	return AsBool(v)
}

// IsTruthy returns whether v is not Equal to the zero value of its type.
func IsTruthy(v Value) (bool, error) {
	if IsNull(v) {
		return false, nil
	}

	b, err := v.IsZero()
	return !b, err
}
