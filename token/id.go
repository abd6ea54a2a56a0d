package token

import (
	"regexp"
	"unicode/utf8"
)

// Identifier shapes as described in [IDs]. The patterns are compiled once and shared.
//
// [IDs]: https://graphviz.org/doc/info/lang.html#ids
var (
	alphabeticID = regexp.MustCompile(`^[a-zA-Z\x{80}-\x{FF}_][a-zA-Z\x{80}-\x{FF}_0-9]*$`)
	numeralID    = regexp.MustCompile(`^(?:\.[0-9]+|[0-9]+(?:\.[0-9]*)?)$`)
	quotedID     = regexp.MustCompile(`(?s)^"(?:[^"\\]|\\.)*"$`)
)

// IsUnquotedID reports whether id can be written without quotes. An unquoted ID is either a
// string of letters, digits and underscores not starting with a digit or a numeral. A single
// character must be an ASCII letter or digit or in the range \200-\377. Numerals are never
// negative since '-' always starts an edge operator. Keywords are not considered.
func IsUnquotedID(id string) bool {
	if utf8.RuneCountInString(id) == 1 {
		r, _ := utf8.DecodeRuneInString(id)
		return isASCIIAlphanumeric(r) || isExtendedASCII(r)
	}
	return alphabeticID.MatchString(id) || numeralID.MatchString(id)
}

// IsQuotedID reports whether id is a double-quoted string in which quotes are only present if
// escaped by a backslash. The quotes are part of id.
func IsQuotedID(id string) bool {
	return quotedID.MatchString(id)
}

func isASCIIAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// isExtendedASCII reports whether r is in the range \200-\377 of the DOT language.
func isExtendedASCII(r rune) bool {
	return r >= 0x80 && r <= 0xFF
}
