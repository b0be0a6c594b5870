package validators

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Field names of a raw transaction.
const (
	FieldTransactionID = "transaction_id"
	FieldAmount        = "amount"
	FieldType          = "type"
	FieldParentID      = "parent_id"
)

// ParseID parses an identifier taken from a URL path segment.
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &ConversionError{Field: field, Value: raw, Err: err}
	}
	return id, nil
}

// ParseAmount accepts JSON numbers and numeric strings. Booleans, objects and
// non-finite values are rejected.
func ParseAmount(v any) (float64, error) {
	var (
		f   float64
		err error
	)

	switch x := v.(type) {
	case json.Number:
		f, err = strconv.ParseFloat(x.String(), 64)
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(x), 64)
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	default:
		err = errUnsupportedType
	}

	if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		err = errNotFinite
	}
	if err != nil {
		return 0, &ConversionError{Field: FieldAmount, Value: v, Err: err}
	}
	return f, nil
}

// ParseType accepts strings only. Blank strings are reported as missing.
func ParseType(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &ConversionError{Field: FieldType, Value: v, Err: errUnsupportedType}
	}
	if strings.TrimSpace(s) == "" {
		return "", &MissingFieldError{Field: FieldType}
	}
	return s, nil
}

// ParseParentID returns nil for an absent parent (nil or empty string).
func ParseParentID(v any) (*int64, error) {
	var (
		id  int64
		err error
	)

	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil, nil
		}
		id, err = strconv.ParseInt(s, 10, 64)
	case json.Number:
		id, err = strconv.ParseInt(x.String(), 10, 64)
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			err = errNotInteger
		}
		id = int64(x)
	case int:
		id = int64(x)
	case int32:
		id = int64(x)
	case int64:
		id = x
	default:
		err = errUnsupportedType
	}

	if err != nil {
		return nil, &ConversionError{Field: FieldParentID, Value: v, Err: err}
	}
	return &id, nil
}
