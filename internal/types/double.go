package types

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
)

var _ Value = NewDoubleValue(0)

type DoubleValue float64

// NewDoubleValue returns a double precision floating point value.
func NewDoubleValue(x float64) DoubleValue {
	return DoubleValue(x)
}

func (v DoubleValue) V() any {
	return float64(v)
}

func (v DoubleValue) Type() Type {
	return TypeDouble
}

func (v DoubleValue) IsZero() (bool, error) {
	return v == 0, nil
}

func (v DoubleValue) String() string {
	f := AsFloat64(v)
	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 {
		if abs < 1e-6 || abs >= 1e15 {
			fmt = 'e'
		}
	}

	// By default the precision is -1 to use the smallest number of digits.
	// See https://pkg.go.dev/strconv#FormatFloat
	prec := -1
	// if the number is round, add .0
	if float64(int64(f)) == f {
		prec = 1
	}
	return strconv.FormatFloat(f, fmt, prec, 64)
}

func (v DoubleValue) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.Errorf("cannot encode %v as json", f)
	}

	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}
