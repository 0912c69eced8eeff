package types

import (
	"math/big"
	"net/url"
	"reflect"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yazun/plgo/driver/pgsql"
)

var bytesType = reflect.TypeFor[[]byte]()

// typeCodeOfType maps Go value types to their type code. Array shaped
// types other than []byte are handled in For before this table is
// consulted.
var typeCodeOfType = map[reflect.Type]TypeCode{
	reflect.TypeFor[string]():          TcVarchar,
	reflect.TypeFor[int8]():            TcTinyint,
	reflect.TypeFor[int16]():           TcSmallint,
	reflect.TypeFor[int32]():           TcInteger,
	reflect.TypeFor[int]():             TcInteger,
	reflect.TypeFor[int64]():           TcBigint,
	reflect.TypeFor[float32]():         TcReal,
	reflect.TypeFor[float64]():         TcDouble,
	reflect.TypeFor[decimal.Decimal](): TcDecimal,
	reflect.TypeFor[*big.Int]():        TcNumeric,
	reflect.TypeFor[bool]():            TcBoolean,
	bytesType:                          TcVarbinary,
	reflect.TypeFor[time.Time]():       TcTimestamp,
	reflect.TypeFor[pgsql.Date]():      TcDate,
	reflect.TypeFor[pgsql.Time]():      TcTime,
	reflect.TypeFor[pgsql.Timestamp](): TcTimestamp,
	reflect.TypeFor[pgsql.BitSet]():    TcBit,
	reflect.TypeFor[*url.URL]():        TcDatalink,
}

// typeCodeOfName maps backend type names to type codes. Names that map to
// TcOther (e.g. point) are not listed and default automatically. Entries
// are grouped by type code; the leading underscore marks the backend's
// array variants, which all map to TcArray.
var typeCodeOfName = map[string]TypeCode{
	"int2": TcSmallint,

	"int4": TcInteger,
	"oid":  TcInteger,

	"int8": TcBigint,

	"cash":  TcDouble,
	"money": TcDouble,

	"numeric": TcNumeric,

	"float4": TcReal,

	"float8": TcDouble,

	"bpchar": TcChar,
	"char":   TcChar,
	"char2":  TcChar,
	"char4":  TcChar,
	"char8":  TcChar,
	"char16": TcChar,

	"varchar":  TcVarchar,
	"text":     TcVarchar,
	"name":     TcVarchar,
	"filename": TcVarchar,

	"bytea": TcBinary,

	"bool": TcBoolean,

	"bit": TcBit,

	"date": TcDate,

	"time":   TcTime,
	"timetz": TcTime,

	"abstime":     TcTimestamp,
	"timestamp":   TcTimestamp,
	"timestamptz": TcTimestamp,

	"_bool":      TcArray,
	"_char":      TcArray,
	"_int2":      TcArray,
	"_int4":      TcArray,
	"_text":      TcArray,
	"_oid":       TcArray,
	"_varchar":   TcArray,
	"_int8":      TcArray,
	"_float4":    TcArray,
	"_float8":    TcArray,
	"_abstime":   TcArray,
	"_date":      TcArray,
	"_time":      TcArray,
	"_timestamp": TcArray,
	"_numeric":   TcArray,
	"_bytea":     TcArray,
}

// For returns the type code for Go type t. Array shaped types other than
// a byte slice map to TcArray regardless of their element type; types not
// covered by the catalog map to TcOther.
func For(t reflect.Type) TypeCode {
	if t == nil {
		return TcOther
	}
	if kind := t.Kind(); (kind == reflect.Slice || kind == reflect.Array) && t != bytesType {
		return TcArray
	}
	if tc, ok := typeCodeOfType[t]; ok {
		return tc
	}
	return TcOther
}

// ForValue returns the type code for value v.
func ForValue(v any) TypeCode {
	if v == nil {
		return TcOther
	}
	return For(reflect.TypeOf(v))
}

// ForName returns the type code for a backend type name. Lookup is by
// exact match; unknown names map to TcOther.
func ForName(name string) TypeCode {
	if tc, ok := typeCodeOfName[name]; ok {
		return tc
	}
	return TcOther
}
