package dotparse

import (
	"strings"
	"unicode/utf8"

	"github.com/teleivo/dotparse/token"
)

const (
	eof = -1 // end of file
)

// Tokenize splits DOT source code into tokens. Whitespace and comments are dropped. Tokenizing
// stops at the first lexical error which is returned as an [Error] with phase [PhaseTokenize].
func Tokenize(src string) ([]token.Token, error) {
	tokens, _, err := tokenize(src)
	return tokens, err
}

// tokenize returns the tokens of src together with the position right after the last rune.
func tokenize(src string) ([]token.Token, token.Position, error) {
	tz := newTokenizer(src)
	for ; tz.cur >= 0; tz.next() {
		if err := tz.step(); err != nil {
			return nil, token.Position{}, err
		}
	}
	if err := tz.finish(); err != nil {
		return nil, token.Position{}, err
	}
	return tz.tokens, tz.pos(), nil
}

// tokenizer scans runes left to right. A lexeme is buffered until a delimiter, whitespace or a
// closing quote ends it.
type tokenizer struct {
	src       string
	offset    int
	cur       rune
	curLine   int
	curColumn int
	peek      rune
	eof       bool
	curRaw    string // bytes of cur if they are not valid UTF-8
	peekRaw   string

	tokens   []token.Token
	buf      []rune
	bufStart token.Position
	inQuote  bool // inside a quoted string
	escape   bool // previous rune was an unconsumed '\'
	dash     bool // previous rune was a lone '-'
	dashPos  token.Position
}

func newTokenizer(src string) *tokenizer {
	tz := tokenizer{
		src:     src,
		cur:     eof,
		peek:    eof,
		curLine: 1,
	}

	// initialize current and peek runes
	tz.next()
	tz.next()
	tz.curColumn = 1

	return &tz
}

// next reads one rune and advances the tokenizer's position markers depending on the read rune.
func (tz *tokenizer) next() {
	if tz.cur == '\n' {
		tz.curLine++
		tz.curColumn = 1
	} else if tz.cur >= 0 {
		tz.curColumn++
	}

	if tz.eof {
		tz.cur = eof
		tz.curRaw = ""
		return
	}

	tz.cur = tz.peek
	tz.curRaw = tz.peekRaw
	tz.peekRaw = ""

	if tz.offset < len(tz.src) {
		r, size := utf8.DecodeRuneInString(tz.src[tz.offset:])
		if r == utf8.RuneError && size == 1 {
			tz.peekRaw = tz.src[tz.offset : tz.offset+size]
		}
		tz.offset += size
		tz.peek = r
	} else {
		tz.eof = true
		tz.peek = eof
	}
}

func (tz *tokenizer) pos() token.Position {
	return token.Position{Line: tz.curLine, Column: tz.curColumn}
}

// step processes the current rune. The order of the cases encodes the priority of the rules.
func (tz *tokenizer) step() error {
	switch {
	case tz.curRaw != "":
		return tz.error(tz.pos(), tz.curRaw, "invalid UTF-8 encoding")
	case tz.dash:
		tz.dash = false
		switch tz.cur {
		case '-':
			tz.emit(token.UndirectedEdge, tz.dashPos)
		case '>':
			tz.emit(token.DirectedEdge, tz.dashPos)
		default:
			return tz.error(tz.dashPos, "-", "expected '-' or '>' after '-', quote IDs containing '-'")
		}
	case tz.escape:
		tz.escape = false
		tz.buffer()
	case tz.cur == '\\':
		tz.escape = true
		tz.buffer()
	case tz.inQuote:
		tz.buffer()
		if tz.cur == '"' {
			tz.inQuote = false
			return tz.flush()
		}
	case tz.cur == '"':
		if err := tz.flush(); err != nil {
			return err
		}
		tz.inQuote = true
		tz.buffer()
	case isStartOfComment(tz.cur, tz.peek):
		if err := tz.flush(); err != nil {
			return err
		}
		return tz.skipComment()
	case isDelimiter(tz.cur):
		if err := tz.flush(); err != nil {
			return err
		}
		tz.emit(delimiterKinds[tz.cur], tz.pos())
	case tz.cur == '-':
		if err := tz.flush(); err != nil {
			return err
		}
		tz.dash = true
		tz.dashPos = tz.pos()
	case isWhitespace(tz.cur):
		return tz.flush()
	default:
		tz.buffer()
	}
	return nil
}

// finish handles the end of input.
func (tz *tokenizer) finish() error {
	if tz.dash {
		return tz.error(tz.dashPos, "-", "expected '-' or '>' after '-', quote IDs containing '-'")
	}
	if tz.inQuote {
		return tz.error(tz.pos(), string(tz.buf), "unterminated quoted string: missing closing '\"'")
	}
	return tz.flush()
}

func (tz *tokenizer) emit(kind token.Kind, start token.Position) {
	tz.tokens = append(tz.tokens, token.Token{Kind: kind, Literal: kind.String(), Start: start})
}

func (tz *tokenizer) buffer() {
	if len(tz.buf) == 0 {
		tz.bufStart = tz.pos()
	}
	tz.buf = append(tz.buf, tz.cur)
}

// flush converts the buffered lexeme into a keyword or identifier token. Identifiers are validated
// before they are accepted.
func (tz *tokenizer) flush() error {
	if len(tz.buf) == 0 {
		return nil
	}
	lexeme := string(tz.buf)
	start := tz.bufStart
	tz.buf = tz.buf[:0]

	if lexeme[0] == '"' {
		if lexeme == `""` {
			return tz.error(start, lexeme, "empty quoted string, IDs cannot be empty")
		}
		if !token.IsQuotedID(lexeme) {
			return tz.error(start, lexeme, "invalid quoted string: only '\"' escaped by '\\' may appear inside")
		}
		tz.tokens = append(tz.tokens, token.Token{Kind: token.Identifier, Literal: unquote(lexeme), Start: start})
		return nil
	}

	if kind, ok := token.Lookup(lexeme); ok {
		tz.tokens = append(tz.tokens, token.Token{Kind: kind, Literal: lexeme, Start: start})
		return nil
	}

	if !token.IsUnquotedID(lexeme) {
		if utf8.RuneCountInString(lexeme) == 1 {
			return tz.error(start, lexeme, "invalid single character ID: must be a letter or digit")
		}
		return tz.error(start, lexeme, "invalid ID: must be letters, digits and underscores not starting with a digit, a number like '1', '1.2', '.1', or quoted")
	}

	tz.tokens = append(tz.tokens, token.Token{Kind: token.Identifier, Literal: lexeme, Start: start})
	return nil
}

// skipComment advances to the last rune of the comment starting at the current rune. Line
// comments end before the newline so the newline is handled as whitespace.
func (tz *tokenizer) skipComment() error {
	start := tz.pos()
	if tz.cur == '/' && tz.peek == '*' {
		tz.next() // advance to the '*' so it cannot close the comment
		for tz.peek >= 0 {
			tz.next()
			if tz.cur == '*' && tz.peek == '/' {
				tz.next()
				return nil
			}
		}
		return tz.error(start, "/*", "unterminated block comment: missing closing '*/'")
	}

	for tz.peek >= 0 && tz.peek != '\n' {
		tz.next()
	}
	return nil
}

func (tz *tokenizer) error(pos token.Position, lexeme, reason string) error {
	return Error{
		Phase:  PhaseTokenize,
		Pos:    pos,
		Lexeme: lexeme,
		Reason: reason,
	}
}

// unquote strips the surrounding quotes of a quoted ID. An escaped quote turns into a quote and a
// backslash followed by a newline is a line continuation and removed. All other escapes are kept
// as is since they carry meaning for attributes like labels.
func unquote(lexeme string) string {
	in := lexeme[1 : len(lexeme)-1]
	if !strings.ContainsRune(in, '\\') {
		return in
	}

	var out strings.Builder
	out.Grow(len(in))
	for i := 0; i < len(in); i++ {
		if in[i] != '\\' || i+1 == len(in) {
			out.WriteByte(in[i])
			continue
		}

		switch next := in[i+1]; {
		case next == '"':
			out.WriteByte('"')
			i++
		case next == '\n':
			i++
		case next == '\r' && i+2 < len(in) && in[i+2] == '\n':
			i += 2
		default:
			out.WriteByte('\\')
			out.WriteByte(next)
			i++
		}
	}
	return out.String()
}

var delimiterKinds = map[rune]token.Kind{
	':': token.Colon,
	',': token.Comma,
	';': token.Semicolon,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'=': token.Equal,
}

// isDelimiter determines if the rune is a single rune delimiter. Edge operators are thus not
// considered.
func isDelimiter(r rune) bool {
	_, ok := delimiterKinds[r]
	return ok
}

// isWhitespace determines if the rune is considered whitespace. It does not include non-breaking
// whitespace \240 which is considered whitespace by [unicode.IsSpace].
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func isStartOfComment(cur, peek rune) bool {
	return cur == '#' || (cur == '/' && (peek == '/' || peek == '*'))
}
