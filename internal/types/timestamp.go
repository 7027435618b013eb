package types

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dromara/carbon/v2"
)

var _ Value = NewTimestampValue(time.Time{})

type TimestampValue time.Time

// NewTimestampValue returns a timestamp value, normalized to UTC.
func NewTimestampValue(x time.Time) TimestampValue {
	return TimestampValue(x.UTC())
}

func (v TimestampValue) V() any {
	return time.Time(v)
}

func (v TimestampValue) Type() Type {
	return TypeTimestamp
}

func (v TimestampValue) IsZero() (bool, error) {
	return time.Time(v).IsZero(), nil
}

func (v TimestampValue) String() string {
	return time.Time(v).Format(time.RFC3339Nano)
}

func (v TimestampValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.String())), nil
}

// ParseTimestamp parses s using any of the layouts understood by carbon.
// Timestamps without a timezone are considered to be UTC.
func ParseTimestamp(s string) (time.Time, error) {
	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return time.Time{}, errors.Errorf("invalid timestamp %q", s)
	}

	return c.StdTime(), nil
}
