package token

import (
	"cmp"
	"strconv"
)

// Position describes a position in DOT source code.
type Position struct {
	Line   int // Line is the line number starting at 1. A line of zero is not valid.
	Column int // Column is the horizontal position in terms of runes starting at 1. A column of zero is not valid.
}

// IsValid reports whether the position points into source code.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// String returns the position in line:column format.
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Compare returns -1 if p is before o, +1 if p is after o and 0 if they are equal.
func (p Position) Compare(o Position) int {
	if c := cmp.Compare(p.Line, o.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, o.Column)
}

// Before reports whether the position p is before o.
func (p Position) Before(o Position) bool {
	return p.Compare(o) < 0
}

// After reports whether the position p is after o.
func (p Position) After(o Position) bool {
	return p.Compare(o) > 0
}
