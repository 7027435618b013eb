package types

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// ParseJSON decodes a single JSON value.
// Objects become records, with their keys kept in document order.
func ParseJSON(data []byte) (Value, error) {
	v, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid json")
	}

	return parseJSONValue(dt, v)
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (Value, error) {
	switch dataType {
	case jsonparser.Null:
		return NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return NewBooleanValue(b), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// if it's too big to fit in an int64, let's try parsing this as a floating point number
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}

			return NewDoubleValue(f), nil
		}

		return NewIntegerValue(i), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return NewTextValue(s), nil
	case jsonparser.Array:
		var list ListValue
		var perr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			if perr != nil {
				return
			}
			if err != nil {
				perr = err
				return
			}

			v, err := parseJSONValue(dataType, value)
			if err != nil {
				perr = err
				return
			}
			list = append(list, v)
		})
		if perr != nil {
			return nil, perr
		}
		if err != nil {
			return nil, errors.Wrap(err, "invalid json array")
		}

		return list, nil
	case jsonparser.Object:
		r := NewRecordValue()
		err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
			v, err := parseJSONValue(dataType, value)
			if err != nil {
				return err
			}

			r.Add(string(key), v)
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, "invalid json object")
		}

		return r, nil
	}

	return nil, errors.Errorf("unsupported json value %q", data)
}
