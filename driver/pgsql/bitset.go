package pgsql

import (
	"fmt"
	"strings"
)

// BitSet is a variable length bit string value (backend types bit and
// varbit). The zero value is the empty bit string.
type BitSet struct {
	bits []bool
}

// ParseBitSet parses a bit string in the backend text format, e.g. "10101".
func ParseBitSet(s string) (BitSet, error) {
	bits := make([]bool, len(s))
	for i, c := range s {
		switch c {
		case '0': // nop
		case '1':
			bits[i] = true
		default:
			return BitSet{}, fmt.Errorf("invalid bit string character %q in %q", c, s)
		}
	}
	return BitSet{bits: bits}, nil
}

// Len returns the number of bits.
func (bs BitSet) Len() int { return len(bs.bits) }

// Bit reports whether bit i is set.
func (bs BitSet) Bit(i int) bool { return bs.bits[i] }

func (bs BitSet) String() string {
	var b strings.Builder
	b.Grow(len(bs.bits))
	for _, bit := range bs.bits {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
