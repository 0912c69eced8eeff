package driver

import (
	"time"

	"github.com/yazun/plgo/driver/internal/convert"
)

/*
The coercion entry points are split by target family on purpose: each has
its own set of legal source kinds and its own pass-through rule, and a
single polymorphic function would hide which conversions are legal for
which targets. Parameter binding and result reading pick the entry point
by the type code of the parameter or column.
*/

// A ConvertError is returned by the coercion entry points if a value
// cannot be coerced to the target type code.
type ConvertError = convert.ConvertError

// Coerce returns v coerced to the target type code tc. A nil value or a
// value already of the target kind is returned unchanged. String targets
// accept numeric, boolean and temporal values via their canonical text
// representation; the datalink target accepts a string holding a URL.
// Any other combination fails with a coercion error naming both kinds.
func Coerce(tc TypeCode, v any) (any, error) { return convert.Coerce(tc, v) }

// CoerceNumeric returns v coerced to the numeric target type code tc. A
// nil value or a value that already is numeric is returned unchanged;
// narrowing to the width of tc is left to the caller. Strings parse per
// target family (base 10 integer, decimal text, floating point text) and
// booleans map to one/zero.
func CoerceNumeric(tc TypeCode, v any) (any, error) { return convert.CoerceNumeric(tc, v) }

// CoerceTemporal returns v coerced to the temporal target type code tc,
// using loc as the calendar context for date and time of day field
// manipulation. A nil value is returned unchanged without consulting
// loc.
func CoerceTemporal(tc TypeCode, v any, loc *time.Location) (any, error) {
	return convert.CoerceTemporal(tc, v, loc)
}
