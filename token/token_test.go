package token_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/dotparse/token"
)

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		in     string
		want   token.Kind
		wantOK bool
	}{
		"Graph":          {in: "graph", want: token.Graph, wantOK: true},
		"GraphUpper":     {in: "GRAPH", want: token.Graph, wantOK: true},
		"GraphMixed":     {in: "Graph", want: token.Graph, wantOK: true},
		"Digraph":        {in: "diGraph", want: token.Digraph, wantOK: true},
		"Node":           {in: "NODE", want: token.Node, wantOK: true},
		"Edge":           {in: "EdGE", want: token.Edge, wantOK: true},
		"Subgraph":       {in: "SUBGRAPH", want: token.Subgraph, wantOK: true},
		"Strict":         {in: "strict", want: token.Strict, wantOK: true},
		"Identifier":     {in: "graphs", wantOK: false},
		"LongIdentifier": {in: "subgraphs_are_fun", wantOK: false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := token.Lookup(test.in)

			assert.Equals(t, ok, test.wantOK, "Lookup(%q)", test.in)
			assert.Equals(t, got, test.want, "Lookup(%q)", test.in)
		})
	}
}

func TestKind(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		tests := map[string]struct {
			in   token.Kind
			want string
		}{
			"Single":   {in: token.DirectedEdge, want: "->"},
			"Keyword":  {in: token.Subgraph, want: "subgraph"},
			"Two":      {in: token.Graph | token.Digraph, want: "digraph or graph"},
			"Three":    {in: token.Strict | token.Graph | token.Digraph, want: "digraph, graph or strict"},
			"Identity": {in: token.Identifier, want: "identifier"},
		}

		for name, test := range tests {
			t.Run(name, func(t *testing.T) {
				assert.Equals(t, test.in.String(), test.want, "String()")
			})
		}
	})

	t.Run("Classification", func(t *testing.T) {
		for _, k := range []token.Kind{token.Graph, token.Digraph, token.Node, token.Edge, token.Subgraph, token.Strict} {
			assert.True(t, k.IsKeyword(), "%s.IsKeyword()", k)
			assert.False(t, k.IsDelimiter(), "%s.IsDelimiter()", k)
		}
		for _, k := range []token.Kind{token.Colon, token.Comma, token.Semicolon, token.LeftBrace, token.RightBrace, token.LeftBracket, token.RightBracket, token.Equal, token.UndirectedEdge, token.DirectedEdge} {
			assert.True(t, k.IsDelimiter(), "%s.IsDelimiter()", k)
			assert.False(t, k.IsKeyword(), "%s.IsKeyword()", k)
		}
		assert.False(t, token.Identifier.IsKeyword(), "identifier is no keyword")
		assert.False(t, token.Identifier.IsDelimiter(), "identifier is no delimiter")
		assert.False(t, (token.Graph | token.Node).IsKeyword(), "a set of kinds is no keyword")
	})
}

func TestTokenString(t *testing.T) {
	tests := map[string]struct {
		in   token.Token
		want string
	}{
		"Identifier": {in: token.Token{Kind: token.Identifier, Literal: "a b"}, want: "a b"},
		"Keyword":    {in: token.Token{Kind: token.Graph, Literal: "GRAPH"}, want: "GRAPH"},
		"Delimiter":  {in: token.Token{Kind: token.LeftBrace, Literal: "{"}, want: "{"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equals(t, test.in.String(), test.want, "String()")
		})
	}
}
