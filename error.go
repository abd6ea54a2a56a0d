package dotparse

import (
	"fmt"

	"github.com/teleivo/dotparse/token"
)

// Phase identifies the stage of parsing that produced an [Error].
type Phase int

const (
	// PhaseTokenize marks lexical errors like an unterminated quoted string.
	PhaseTokenize Phase = iota
	// PhaseParse marks structural and grammatical errors like a missing closing brace.
	PhaseParse
)

func (p Phase) String() string {
	switch p {
	case PhaseTokenize:
		return "tokenize"
	case PhaseParse:
		return "parse"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Error represents a tokenize or parse error in DOT source code.
// The position Pos points to the beginning of the offending lexeme or token, or to the end of the
// input if the input ended unexpectedly. Lexeme is empty in the latter case.
type Error struct {
	Phase  Phase
	Pos    token.Position
	Lexeme string
	Reason string
}

// Error formats the error as "line:column: reason" followed by the offending lexeme if known.
func (e Error) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Reason)
	}
	return fmt.Sprintf("%d:%d: %s: %q", e.Pos.Line, e.Pos.Column, e.Reason, e.Lexeme)
}
