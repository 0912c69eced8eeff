// Package sqlrewrite normalizes client SQL for execution through the
// backend's native positional parameter syntax.
package sqlrewrite

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParameterMarker is the prefix of the positional parameters the
// placeholders are rewritten to.
const ParameterMarker = '$'

// Rewrite scans query once from left to right and returns the normalized
// text together with the number of placeholders found.
//
// Outside of quoted regions every '?' placeholder is replaced by a
// positional marker ($1, $2, ...) and every run of whitespace collapses
// into a single space. Single and double quoted regions as well as
// backslash escaped character pairs are copied verbatim. Rewrite never
// fails: an unbalanced quote leaves the remainder of the input quoted and
// therefore untouched.
func Rewrite(query string) (string, int) {
	var b strings.Builder
	b.Grow(len(query))

	var quote rune // active quote character, 0 outside of quoted regions
	paramIndex := 1

	for i := 0; i < len(query); {
		r, width := utf8.DecodeRuneInString(query[i:])
		i += width

		switch {
		case r == '\\':
			// The escape and the escaped character form a fixed pair;
			// neither takes part in quote toggling or placeholder
			// substitution.
			b.WriteRune(r)
			if i < len(query) {
				r, width = utf8.DecodeRuneInString(query[i:])
				i += width
				b.WriteRune(r)
			}

		case r == '\'' || r == '"':
			// Quoting is keyed by the exact quote character; the other
			// quote character inside a region is ordinary text.
			switch quote {
			case 0:
				quote = r
			case r:
				quote = 0
			}
			b.WriteRune(r)

		case r == '?' && quote == 0:
			b.WriteByte(ParameterMarker)
			b.WriteString(strconv.Itoa(paramIndex))
			paramIndex++

		case quote == 0 && unicode.IsSpace(r):
			// Collapse the whole whitespace run into one space.
			for i < len(query) {
				r, width = utf8.DecodeRuneInString(query[i:])
				if !unicode.IsSpace(r) {
					break
				}
				i += width
			}
			b.WriteByte(' ')

		default:
			b.WriteRune(r)
		}
	}
	return b.String(), paramIndex - 1
}
