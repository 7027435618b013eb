package types

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Compare returns an integer comparing a and b: 0 if a == b, -1 if a < b, and +1 if a > b.
// Integers and doubles compare with each other, every other kind only compares
// with values of the same kind. Records and blocks have no order.
func Compare(a, b Value) (int, error) {
	ta, tb := a.Type(), b.Type()

	if ta.IsNumber() && tb.IsNumber() {
		switch {
		case ta == TypeInteger && tb == TypeInteger:
			return compareOrdered(AsInt64(a), AsInt64(b)), nil
		case ta == TypeInteger:
			return compareIntDouble(AsInt64(a), AsFloat64(b)), nil
		case tb == TypeInteger:
			return -compareIntDouble(AsInt64(b), AsFloat64(a)), nil
		}

		return compareOrdered(AsFloat64(a), AsFloat64(b)), nil
	}

	if ta != tb {
		return 0, errors.Wrapf(ErrIncomparable, "cannot compare %s with %s", ta, tb)
	}

	switch ta {
	case TypeNull:
		return 0, nil
	case TypeBoolean:
		return compareOrdered(boolToInt(AsBool(a)), boolToInt(AsBool(b))), nil
	case TypeText:
		return compareOrdered(AsString(a), AsString(b)), nil
	case TypeTimestamp:
		return AsTime(a).Compare(AsTime(b)), nil
	case TypeList:
		return compareLists(AsList(a), AsList(b))
	}

	return 0, errors.Wrapf(ErrIncomparable, "cannot compare %s values", ta)
}

// Equal reports whether a and b hold the same value.
// Values of different kinds are never equal, except integers and doubles.
func Equal(a, b Value) bool {
	if a.Type() == TypeRecord && b.Type() == TypeRecord {
		return equalRecords(AsRecord(a), AsRecord(b))
	}

	if a.Type() == TypeBlock || b.Type() == TypeBlock {
		return a == b
	}

	c, err := Compare(a, b)
	return err == nil && c == 0
}

// compareIntDouble compares i and d exactly, without converting i to a double,
// which would round integers above 2^53.
func compareIntDouble(i int64, d float64) int {
	switch {
	case math.IsNaN(d):
		return compareOrdered(float64(i), d)
	case d >= math.MaxInt64:
		return -1
	case d < math.MinInt64:
		return 1
	}

	trunc := math.Trunc(d)
	if c := compareOrdered(i, int64(trunc)); c != 0 {
		return c
	}

	return compareOrdered(trunc, d)
}

func compareLists(a, b ListValue) (int, error) {
	for i := 0; i < len(a) && i < len(b); i++ {
		c, err := Compare(a[i], b[i])
		if err != nil || c != 0 {
			return c, err
		}
	}

	return compareOrdered(len(a), len(b)), nil
}

func equalRecords(a, b *RecordValue) bool {
	if a.Len() != b.Len() {
		return false
	}

	fa, fb := a.Fields(), b.Fields()
	for i := range fa {
		if fa[i].Name != fb[i].Name || !Equal(fa[i].Value, fb[i].Value) {
			return false
		}
	}

	return true
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
