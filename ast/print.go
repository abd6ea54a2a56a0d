package ast

import (
	"strings"

	"github.com/teleivo/dotparse/token"
)

// String renders the graph in the DOT language with one statement per line. Parsing the result
// yields an equal graph.
func (g *DotGraph) String() string {
	var out strings.Builder
	if g.Strict {
		out.WriteString("strict ")
	}
	out.WriteString(g.Type.String())
	out.WriteRune(' ')
	if g.ID != "" {
		out.WriteString(QuoteID(g.ID))
		out.WriteRune(' ')
	}
	out.WriteRune('{')
	if len(g.Stmts) > 0 {
		out.WriteRune('\n')
	}
	for _, stmt := range g.Stmts {
		out.WriteRune('\t')
		out.WriteString(stmt.String())
		out.WriteRune('\n')
	}
	out.WriteRune('}')

	return out.String()
}

func (ns *NodeStmt) String() string {
	var out strings.Builder

	out.WriteString(ns.ID.String())
	if ns.AttrList != nil {
		out.WriteRune(' ')
		out.WriteString(ns.AttrList.String())
	}

	return out.String()
}

func (ni NodeID) String() string {
	if ni.Port == nil {
		return QuoteID(ni.ID)
	}
	return QuoteID(ni.ID) + ni.Port.String()
}

// String renders the port including its leading colon.
func (p Port) String() string {
	var out strings.Builder

	if p.ID != "" {
		out.WriteRune(':')
		out.WriteString(QuoteID(p.ID))
	}
	if p.Compass != NoCompass {
		out.WriteRune(':')
		out.WriteString(QuoteID(p.Compass.String()))
	}

	return out.String()
}

func (e *EdgeStmt) String() string {
	var out strings.Builder

	out.WriteString(e.Left.String())
	for cur := &e.Right; cur != nil; cur = cur.Next {
		out.WriteRune(' ')
		out.WriteString(cur.Op.String())
		out.WriteRune(' ')
		out.WriteString(cur.To.String())
	}
	if e.AttrList != nil {
		out.WriteRune(' ')
		out.WriteString(e.AttrList.String())
	}

	return out.String()
}

func (a *AttrStmt) String() string {
	return a.Kind.String() + " " + a.AttrList.String()
}

// String renders the list as a single bracketed list.
func (al AttrList) String() string {
	var out strings.Builder

	out.WriteRune('[')
	for i, attr := range al {
		if i > 0 {
			out.WriteRune(',')
		}
		out.WriteString(attr.String())
	}
	out.WriteRune(']')

	return out.String()
}

func (a *Attribute) String() string {
	return QuoteID(a.Name) + "=" + QuoteID(a.Value)
}

func (s *Subgraph) String() string {
	var out strings.Builder

	out.WriteString("subgraph ")
	if s.ID != "" {
		out.WriteString(QuoteID(s.ID))
		out.WriteRune(' ')
	}
	out.WriteRune('{')
	for i, stmt := range s.Stmts {
		if i > 0 {
			out.WriteString("; ")
		}
		out.WriteString(stmt.String())
	}
	out.WriteRune('}')

	return out.String()
}

// QuoteID returns id as written in DOT source code. IDs that cannot be written unquoted and
// keywords are quoted and their quotes escaped.
func QuoteID(id string) string {
	if token.IsUnquotedID(id) {
		if _, ok := token.Lookup(id); !ok {
			return id
		}
	}
	return `"` + strings.ReplaceAll(id, `"`, `\"`) + `"`
}
