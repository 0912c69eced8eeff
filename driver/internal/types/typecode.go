// Package types implements the relational type catalog of the driver.
package types

import "fmt"

// TypeCode identifies the relational type category of a parameter or
// column independent of the backend specific type name.
type TypeCode byte

const (
	TcOther TypeCode = iota
	TcBit
	TcTinyint
	TcSmallint
	TcInteger
	TcBigint
	TcFloat
	TcReal
	TcDouble
	TcNumeric
	TcDecimal
	TcChar
	TcVarchar
	TcBinary
	TcVarbinary
	TcBlob
	TcClob
	TcBoolean
	TcDate
	TcTime
	TcTimestamp
	TcDatalink
	TcArray
)

var typeCodeText = [...]string{
	TcOther:     "OTHER",
	TcBit:       "BIT",
	TcTinyint:   "TINYINT",
	TcSmallint:  "SMALLINT",
	TcInteger:   "INTEGER",
	TcBigint:    "BIGINT",
	TcFloat:     "FLOAT",
	TcReal:      "REAL",
	TcDouble:    "DOUBLE",
	TcNumeric:   "NUMERIC",
	TcDecimal:   "DECIMAL",
	TcChar:      "CHAR",
	TcVarchar:   "VARCHAR",
	TcBinary:    "BINARY",
	TcVarbinary: "VARBINARY",
	TcBlob:      "BLOB",
	TcClob:      "CLOB",
	TcBoolean:   "BOOLEAN",
	TcDate:      "DATE",
	TcTime:      "TIME",
	TcTimestamp: "TIMESTAMP",
	TcDatalink:  "DATALINK",
	TcArray:     "ARRAY",
}

func (tc TypeCode) String() string {
	if int(tc) < len(typeCodeText) {
		return typeCodeText[tc]
	}
	return fmt.Sprintf("TypeCode(%d)", int(tc))
}

// IsInteger returns true if the type code represents an integral type.
func (tc TypeCode) IsInteger() bool {
	return tc == TcTinyint || tc == TcSmallint || tc == TcInteger || tc == TcBigint
}

// IsDecimal returns true if the type code represents an exact decimal type.
func (tc TypeCode) IsDecimal() bool { return tc == TcNumeric || tc == TcDecimal }

// IsFloat returns true if the type code represents a floating point type.
func (tc TypeCode) IsFloat() bool { return tc == TcFloat || tc == TcReal || tc == TcDouble }

// IsNumeric returns true if the type code represents a numeric type.
func (tc TypeCode) IsNumeric() bool { return tc.IsInteger() || tc.IsDecimal() || tc.IsFloat() }

// IsString returns true if the type code represents a character type.
func (tc TypeCode) IsString() bool { return tc == TcChar || tc == TcVarchar || tc == TcClob }

// IsTemporal returns true if the type code represents a date or time type.
func (tc TypeCode) IsTemporal() bool { return tc == TcDate || tc == TcTime || tc == TcTimestamp }
