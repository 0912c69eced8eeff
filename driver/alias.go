package driver

import (
	"github.com/yazun/plgo/driver/internal/types"
	"github.com/yazun/plgo/driver/pgsql"
)

// Version is the release of the backend a call scope runs in (see
// Conn.ServerVersion).
type Version = pgsql.Version

// Temporal and bit string argument / scan types.
type (
	Date      = pgsql.Date
	Time      = pgsql.Time
	Timestamp = pgsql.Timestamp
	BitSet    = pgsql.BitSet
)

// TypeCode identifies the relational type category of a parameter or
// column independent of the backend specific type name.
type TypeCode = types.TypeCode

// TypeCode constants.
const (
	TcOther     = types.TcOther
	TcBit       = types.TcBit
	TcTinyint   = types.TcTinyint
	TcSmallint  = types.TcSmallint
	TcInteger   = types.TcInteger
	TcBigint    = types.TcBigint
	TcFloat     = types.TcFloat
	TcReal      = types.TcReal
	TcDouble    = types.TcDouble
	TcNumeric   = types.TcNumeric
	TcDecimal   = types.TcDecimal
	TcChar      = types.TcChar
	TcVarchar   = types.TcVarchar
	TcBinary    = types.TcBinary
	TcVarbinary = types.TcVarbinary
	TcBlob      = types.TcBlob
	TcClob      = types.TcClob
	TcBoolean   = types.TcBoolean
	TcDate      = types.TcDate
	TcTime      = types.TcTime
	TcTimestamp = types.TcTimestamp
	TcDatalink  = types.TcDatalink
	TcArray     = types.TcArray
)

// TypeCodeForValue returns the type code the catalog assigns to value v.
// Array shaped values other than byte slices map to TcArray regardless
// of their element type; values unknown to the catalog map to TcOther.
func TypeCodeForValue(v any) TypeCode { return types.ForValue(v) }

// TypeCodeForName returns the type code for a backend type name. Lookup
// is by exact match; unknown names map to TcOther.
func TypeCodeForName(name string) TypeCode { return types.ForName(name) }
