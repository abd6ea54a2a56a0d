// Package dotparse parses source code in the [DOT language] into an abstract syntax tree.
//
// Parsing happens in two steps. [Tokenize] turns the source into tokens. The parser then checks
// the graph head
//
//	graph : [ 'strict' ] ( 'graph' | 'digraph' ) [ ID ] '{' stmt_list '}'
//
// without backtracking and parses the statements between the outer braces using backtracking
// parser combinators. Parsing stops at the first error. Errors are of type [Error].
//
// Parsing has no side effects. A [Parser] is safe for concurrent use.
//
// [DOT language]: https://graphviz.org/doc/info/lang.html
package dotparse

import (
	"fmt"

	"github.com/teleivo/dotparse/ast"
	"github.com/teleivo/dotparse/token"
)

// DefaultMaxDepth is the maximum nesting depth of subgraphs used if [Config.MaxDepth] is not set.
const DefaultMaxDepth = 256

// Config configures a Parser.
type Config struct {
	// MaxDepth limits how deep subgraphs can be nested. Subgraphs directly inside the graph are at
	// depth 1. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parser parses DOT source code into an [ast.DotGraph].
type Parser struct {
	maxDepth int
}

// NewParser creates a new parser using the given configuration.
func NewParser(cfg Config) *Parser {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Parser{maxDepth: maxDepth}
}

// Parse parses src using the default configuration.
func Parse(src string) (*ast.DotGraph, error) {
	return NewParser(Config{}).Parse(src)
}

// Parse parses a single graph from src. It returns either the graph or an [Error].
func (p *Parser) Parse(src string) (*ast.DotGraph, error) {
	tokens, end, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	graph, body, err := p.parseHead(tokens, end)
	if err != nil {
		return nil, err
	}

	stmts, rest, _ := newGrammar().stmtList(body)
	if len(rest) > 0 {
		return nil, errorAt(rest[0], "cannot start a statement")
	}
	graph.Stmts = stmts

	return graph, nil
}

// parseHead parses the graph head and returns the graph together with the tokens strictly between
// the outer braces.
//
//	graph : [ 'strict' ] ( 'graph' | 'digraph' ) [ ID ] '{' stmt_list '}'
func (p *Parser) parseHead(tokens []token.Token, end token.Position) (*ast.DotGraph, []token.Token, error) {
	graph := &ast.DotGraph{}
	var i int

	if i < len(tokens) && tokens[i].Kind == token.Strict {
		graph.Strict = true
		i++
	}

	want := token.Graph | token.Digraph
	if !graph.Strict {
		want |= token.Strict
	}
	if i == len(tokens) {
		return nil, nil, errorAtEnd(end, "expected "+want.String())
	}
	switch tokens[i].Kind {
	case token.Graph:
		graph.Type = ast.Graph
	case token.Digraph:
		graph.Type = ast.Digraph
	default:
		return nil, nil, errorAt(tokens[i], "expected "+want.String())
	}
	i++

	if i < len(tokens) && tokens[i].Kind == token.Identifier {
		graph.ID = tokens[i].Literal
		i++
	}

	if i == len(tokens) {
		return nil, nil, errorAtEnd(end, "expected {")
	}
	if tokens[i].Kind != token.LeftBrace {
		if graph.ID == "" {
			return nil, nil, errorAt(tokens[i], "expected identifier or {")
		}
		return nil, nil, errorAt(tokens[i], "expected {")
	}

	closing, err := p.matchBrace(tokens, i, end)
	if err != nil {
		return nil, nil, err
	}
	if closing+1 < len(tokens) {
		return nil, nil, errorAt(tokens[closing+1], "unexpected token after graph")
	}

	return graph, tokens[i+1 : closing], nil
}

// matchBrace returns the index of the brace closing the brace at index open. Braces of nested
// subgraphs are matched along the way and their depth is limited to the configured maximum.
func (p *Parser) matchBrace(tokens []token.Token, open int, end token.Position) (int, error) {
	var depth int
	for i := open; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case token.LeftBrace:
			depth++
			if depth-1 > p.maxDepth {
				return 0, errorAt(tokens[i], fmt.Sprintf("subgraphs nested deeper than %d", p.maxDepth))
			}
		case token.RightBrace:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, errorAtEnd(end, "expected } to close graph")
}

func errorAt(tok token.Token, reason string) error {
	return Error{
		Phase:  PhaseParse,
		Pos:    tok.Start,
		Lexeme: tok.String(),
		Reason: reason,
	}
}

func errorAtEnd(end token.Position, reason string) error {
	return Error{
		Phase:  PhaseParse,
		Pos:    end,
		Reason: reason,
	}
}
