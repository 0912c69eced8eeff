// Package convert implements the coercion of Go values to the relational
// type codes of the catalog.
//
// Three entry points cover three distinct failure domains: Coerce
// (identity, text and URL targets), CoerceNumeric (integral, decimal and
// floating point targets) and CoerceTemporal (date and time targets).
// All three pass nil values and values already of the target kind through
// unchanged and fail with a ConvertError everywhere else.
package convert

import (
	"fmt"
	"math/big"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yazun/plgo/driver/internal/types"
	"github.com/yazun/plgo/driver/pgsql"
)

// A ConvertError is returned by coercion functions if a value cannot be
// coerced to the target type code.
type ConvertError struct {
	err error
	tc  types.TypeCode
	v   any
}

func (e *ConvertError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("unsupported %[1]s conversion: %[2]T %[2]v", e.tc, e.v)
	}
	return fmt.Sprintf("unsupported %[1]s conversion: %[2]T %[2]v - %[3]s", e.tc, e.v, e.err)
}

// Unwrap returns the nested error.
func (e *ConvertError) Unwrap() error { return e.err }

func newConvertError(tc types.TypeCode, v any, err error) *ConvertError {
	return &ConvertError{tc: tc, v: v, err: err}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		*big.Int, decimal.Decimal:
		return true
	default:
		return false
	}
}

// text returns the canonical textual representation of string, numeric,
// boolean and temporal values.
func text(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case *big.Int:
		return v.String(), true
	case decimal.Decimal:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		return v.Format(pgsql.TimestampFormat), true
	case pgsql.Date:
		return v.String(), true
	case pgsql.Time:
		return v.String(), true
	case pgsql.Timestamp:
		return v.String(), true
	case uuid.UUID:
		return v.String(), true
	default:
		return "", false
	}
}

// Coerce returns v coerced to the target type code tc. A nil value or a
// value already of the target kind is returned unchanged. String targets
// accept numeric, boolean and temporal values via their canonical text
// representation; the datalink target accepts a string holding a URL.
func Coerce(tc types.TypeCode, v any) (any, error) {
	if v == nil || types.ForValue(v) == tc {
		return v, nil
	}

	switch {
	case tc.IsString():
		if s, ok := text(v); ok {
			return s, nil
		}
	case tc == types.TcDatalink:
		if s, ok := v.(string); ok {
			u, err := url.Parse(s)
			if err != nil {
				return nil, newConvertError(tc, v, err)
			}
			return u, nil
		}
	}
	return nil, newConvertError(tc, v, nil)
}

// CoerceNumeric returns v coerced to the numeric target type code tc. A
// nil value or a value that already is numeric is returned unchanged;
// narrowing to the width of tc is left to the caller.
func CoerceNumeric(tc types.TypeCode, v any) (any, error) {
	if v == nil || isNumeric(v) {
		return v, nil
	}

	switch {
	case tc.IsInteger():
		switch v := v.(type) {
		case string:
			i64, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, newConvertError(tc, v, err)
			}
			return i64, nil
		case bool:
			if v {
				return int64(1), nil
			}
			return int64(0), nil
		}
	case tc.IsDecimal():
		switch v := v.(type) {
		case string:
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, newConvertError(tc, v, err)
			}
			return d, nil
		case bool:
			if v {
				return decimal.NewFromInt(1), nil
			}
			return decimal.NewFromInt(0), nil
		}
	case tc.IsFloat():
		switch v := v.(type) {
		case string:
			f64, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, newConvertError(tc, v, err)
			}
			return f64, nil
		case bool:
			if v {
				return float64(1), nil
			}
			return float64(0), nil
		}
	}
	return nil, newConvertError(tc, v, nil)
}

// dateOf returns midnight of the date of t in loc.
func dateOf(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// timeOf returns the time of day of t in loc anchored at the epoch date.
func timeOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(1970, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// CoerceTemporal returns v coerced to the temporal target type code tc.
// loc is the calendar context used for date and time of day field
// manipulation. A nil value is returned unchanged without consulting loc.
func CoerceTemporal(tc types.TypeCode, v any, loc *time.Location) (any, error) {
	if v == nil || types.ForValue(v) == tc {
		return v, nil
	}

	switch tc {
	case types.TcTimestamp:
		switch v := v.(type) {
		case pgsql.Date:
			return pgsql.Timestamp(dateOf(time.Time(v), loc)), nil
		case pgsql.Time:
			return pgsql.Timestamp(timeOf(time.Time(v), loc)), nil
		case string:
			t, err := time.ParseInLocation(pgsql.TimestampFormat, v, loc)
			if err != nil {
				return nil, newConvertError(tc, v, err)
			}
			return pgsql.Timestamp(t), nil
		}
	case types.TcDate:
		switch v := v.(type) {
		case pgsql.Timestamp:
			return pgsql.Date(dateOf(time.Time(v), loc)), nil
		case time.Time:
			return pgsql.Date(dateOf(v, loc)), nil
		case string:
			t, err := time.ParseInLocation(pgsql.DateFormat, v, loc)
			if err != nil {
				return nil, newConvertError(tc, v, err)
			}
			return pgsql.Date(t), nil
		}
	case types.TcTime:
		switch v := v.(type) {
		case pgsql.Timestamp:
			return pgsql.Time(timeOf(time.Time(v), loc)), nil
		case time.Time:
			return pgsql.Time(timeOf(v, loc)), nil
		case string:
			t, err := time.ParseInLocation(pgsql.TimeFormat, v, loc)
			if err != nil {
				return nil, newConvertError(tc, v, err)
			}
			// anchor the parsed time of day at the epoch date
			return pgsql.Time(timeOf(t, loc)), nil
		}
	}
	return nil, newConvertError(tc, v, nil)
}
