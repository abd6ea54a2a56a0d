// Package token defines constants representing the lexical tokens of the DOT language together with
// operations like printing or detecting keywords.
package token

import (
	"strings"
)

// Kind represents the types of lexical tokens of the DOT language. Every kind is a distinct bit so
// that a set of kinds can be expressed as a bitmask like Graph|Digraph.
type Kind uint32

const (
	Identifier Kind = 1 << iota // like _A 12 "234"

	// Delimiters
	Colon          // :
	Comma          // ,
	Semicolon      // ;
	LeftBrace      // {
	RightBrace     // }
	LeftBracket    // [
	RightBracket   // ]
	Equal          // =
	UndirectedEdge // --
	DirectedEdge   // ->

	// Keywords
	Digraph  // digraph
	Edge     // edge
	Graph    // graph
	Node     // node
	Strict   // strict
	Subgraph // subgraph
)

const (
	delimiters = Colon | Comma | Semicolon | LeftBrace | RightBrace | LeftBracket | RightBracket | Equal | UndirectedEdge | DirectedEdge
	keywords   = Digraph | Edge | Graph | Node | Strict | Subgraph
)

var kindStrings = map[Kind]string{
	Identifier: "identifier",

	Colon:          ":",
	Comma:          ",",
	Semicolon:      ";",
	LeftBrace:      "{",
	RightBrace:     "}",
	LeftBracket:    "[",
	RightBracket:   "]",
	Equal:          "=",
	UndirectedEdge: "--",
	DirectedEdge:   "->",

	Digraph:  "digraph",
	Edge:     "edge",
	Graph:    "graph",
	Node:     "node",
	Strict:   "strict",
	Subgraph: "subgraph",
}

// String returns the DOT spelling of a single kind. A set of kinds is rendered as "x, y or z".
func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}

	var out strings.Builder
	var parts []string
	for remaining := k; remaining != 0; {
		bit := remaining & -remaining
		parts = append(parts, kindStrings[bit])
		remaining &^= bit
	}
	for i, part := range parts {
		if i > 0 {
			if i == len(parts)-1 {
				out.WriteString(" or ")
			} else {
				out.WriteString(", ")
			}
		}
		out.WriteString(part)
	}
	return out.String()
}

// IsKeyword reports whether the kind is one of the DOT keywords.
func (k Kind) IsKeyword() bool {
	return k != 0 && k&^keywords == 0 && k&(k-1) == 0
}

// IsDelimiter reports whether the kind is one of the DOT delimiters including the edge operators.
func (k Kind) IsDelimiter() bool {
	return k != 0 && k&^delimiters == 0 && k&(k-1) == 0
}

// Token represents a token of the DOT language.
type Token struct {
	Kind Kind
	// Literal is the identifier text for identifiers with surrounding quotes removed. For keywords
	// it is the spelling found in the source and for delimiters their DOT representation.
	Literal string
	Start   Position
}

func (t Token) String() string {
	if t.Kind == Identifier || t.Kind.IsKeyword() {
		return t.Literal
	}

	return t.Kind.String()
}

// maxKeywordLen is the length of the longest DOT keyword which is "subgraph".
const maxKeywordLen = 8

var keywordKinds = map[string]Kind{
	"digraph":  Digraph,
	"edge":     Edge,
	"graph":    Graph,
	"node":     Node,
	"strict":   Strict,
	"subgraph": Subgraph,
}

// Lookup returns the keyword kind of the given lexeme. DOT keywords are case-insensitive. The
// boolean is false if the lexeme is not a keyword.
func Lookup(lexeme string) (Kind, bool) {
	if len(lexeme) > maxKeywordLen {
		return 0, false
	}

	kind, ok := keywordKinds[strings.ToLower(lexeme)]
	return kind, ok
}
