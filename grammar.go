package dotparse

import (
	"github.com/teleivo/dotparse/ast"
	c "github.com/teleivo/dotparse/internal/combinator"
	"github.com/teleivo/dotparse/token"
)

// grammar holds the productions of the DOT grammar
//
//	stmt_list  : [ stmt [ ';' ] stmt_list ]
//	stmt       : edge_stmt | attr_stmt | subgraph | node_stmt | ID '=' ID
//	attr_stmt  : ( 'graph' | 'node' | 'edge' ) attr_list
//	attr_list  : '[' [ a_list ] ']' [ attr_list ]
//	a_list     : ID '=' ID [ ( ';' | ',' ) ] [ a_list ]
//	edge_stmt  : ( node_id | subgraph ) edgeRHS [ attr_list ]
//	edgeRHS    : edgeop ( node_id | subgraph ) [ edgeRHS ]
//	node_stmt  : node_id [ attr_list ]
//	node_id    : ID [ port ]
//	port       : ':' compass_pt | ':' ID [ ':' compass_pt ]
//	subgraph   : [ 'subgraph' [ ID ] ] '{' stmt_list '}'
//	compass_pt : 'n' | 'ne' | 'e' | 'se' | 's' | 'sw' | 'w' | 'nw' | 'c' | '_'
//
// The alternatives of stmt are tried in the listed order. A grammar memoizes subgraphs and must
// therefore only be used for a single token slice.
type grammar struct {
	compass   c.Parser[ast.Compass]
	port      c.Parser[ast.Port]
	nodeID    c.Parser[ast.NodeID]
	attribute c.Parser[ast.Attribute]
	aList     c.Parser[ast.AttrList]
	attrList  c.Parser[ast.AttrList]
	attrStmt  c.Parser[*ast.AttrStmt]
	nodeStmt  c.Parser[*ast.NodeStmt]
	edgeRHS   c.Parser[ast.EdgeRHS]
	edgeStmt  c.Parser[*ast.EdgeStmt]
	subgraph  c.Parser[*ast.Subgraph]
	stmt      c.Parser[ast.Stmt]
	stmtList  c.Parser[[]ast.Stmt]
}

func newGrammar() *grammar {
	g := &grammar{}

	id := c.Map(c.Token(token.Identifier), func(t token.Token) string { return t.Literal })
	colon := c.Token(token.Colon)

	g.compass = c.MapOK(c.Token(token.Identifier), func(t token.Token) (ast.Compass, bool) {
		return ast.IsCompassPoint(t.Literal)
	})

	// a compass point right after the colon always wins over a port name
	compassPort := c.Map(c.Preceded(colon, g.compass), func(cp ast.Compass) ast.Port {
		return ast.Port{Compass: cp}
	})
	namedPort := c.Map(
		c.Seq2(c.Preceded(colon, id), c.Optional(c.Preceded(colon, g.compass))),
		func(r c.Pair[string, c.Maybe[ast.Compass]]) ast.Port {
			return ast.Port{ID: r.First, Compass: r.Second.Value}
		},
	)
	g.port = c.Alt(compassPort, namedPort)

	g.nodeID = c.Map(c.Seq2(id, c.Optional(g.port)), func(r c.Pair[string, c.Maybe[ast.Port]]) ast.NodeID {
		nid := ast.NodeID{ID: r.First}
		if r.Second.Valid {
			port := r.Second.Value
			nid.Port = &port
		}
		return nid
	})

	g.attribute = c.Map(c.Seq3(id, c.Token(token.Equal), id), func(r c.Triple[string, token.Token, string]) ast.Attribute {
		return ast.Attribute{Name: r.First, Value: r.Third}
	})
	g.aList = c.Map(c.SepBy(g.attribute, c.Token(token.Semicolon|token.Comma)), func(attrs []ast.Attribute) ast.AttrList {
		return ast.AttrList(attrs)
	})
	g.attrList = c.Map(
		c.Many1(c.Delimited(c.Token(token.LeftBracket), g.aList, c.Token(token.RightBracket))),
		func(groups []ast.AttrList) ast.AttrList {
			// non-nil even for [] so that an empty list is distinguishable from no list
			result := ast.AttrList{}
			for _, group := range groups {
				result = append(result, group...)
			}
			return result
		},
	)
	optionalAttrList := c.Map(c.Optional(g.attrList), func(m c.Maybe[ast.AttrList]) ast.AttrList {
		return m.Value
	})

	g.attrStmt = c.Map(c.Seq2(c.Token(token.Graph|token.Node|token.Edge), g.attrList), func(r c.Pair[token.Token, ast.AttrList]) *ast.AttrStmt {
		return &ast.AttrStmt{Kind: attrStmtKind(r.First), AttrList: r.Second}
	})

	// edge_stmt and subgraph both start with a subgraph, memoizing avoids parsing nested subgraphs
	// an exponential number of times
	g.subgraph = c.Memo(c.Map(
		c.Seq2(
			c.Optional(c.Preceded(c.Token(token.Subgraph), c.Optional(id))),
			c.Delimited(c.Token(token.LeftBrace), c.Lazy(func() c.Parser[[]ast.Stmt] { return g.stmtList }), c.Token(token.RightBrace)),
		),
		func(r c.Pair[c.Maybe[c.Maybe[string]], []ast.Stmt]) *ast.Subgraph {
			return &ast.Subgraph{ID: r.First.Value.Value, Stmts: r.Second}
		},
	))

	operand := c.Alt(
		c.Map(g.subgraph, func(s *ast.Subgraph) ast.EdgeOperand { return s }),
		c.Map(g.nodeID, func(nid ast.NodeID) ast.EdgeOperand { return nid }),
	)
	g.edgeRHS = c.Map(c.Many1(c.Seq2(c.Token(token.UndirectedEdge|token.DirectedEdge), operand)), linkEdgeRHS)
	g.edgeStmt = c.Map(c.Seq3(operand, g.edgeRHS, optionalAttrList), func(r c.Triple[ast.EdgeOperand, ast.EdgeRHS, ast.AttrList]) *ast.EdgeStmt {
		return &ast.EdgeStmt{Left: r.First, Right: r.Second, AttrList: r.Third}
	})

	// a node ID followed by '=' is the start of an attribute statement
	g.nodeStmt = c.Map(c.Seq2(c.NotFollowedBy(g.nodeID, c.Token(token.Equal)), optionalAttrList), func(r c.Pair[ast.NodeID, ast.AttrList]) *ast.NodeStmt {
		return &ast.NodeStmt{ID: r.First, AttrList: r.Second}
	})

	g.stmt = c.Alt(
		asStmt(g.edgeStmt),
		asStmt(g.attrStmt),
		asStmt(g.subgraph),
		asStmt(g.nodeStmt),
		c.Map(g.attribute, func(a ast.Attribute) ast.Stmt { return &a }),
	)
	g.stmtList = c.SepBy(g.stmt, c.Token(token.Semicolon))

	return g
}

func asStmt[T ast.Stmt](p c.Parser[T]) c.Parser[ast.Stmt] {
	return c.Map(p, func(s T) ast.Stmt { return s })
}

// linkEdgeRHS links the operators and operands of an edge chain back to front so that arbitrarily
// long chains are built without recursion.
func linkEdgeRHS(chain []c.Pair[token.Token, ast.EdgeOperand]) ast.EdgeRHS {
	var next *ast.EdgeRHS
	for i := len(chain) - 1; i > 0; i-- {
		next = &ast.EdgeRHS{Op: edgeOp(chain[i].First), To: chain[i].Second, Next: next}
	}
	return ast.EdgeRHS{Op: edgeOp(chain[0].First), To: chain[0].Second, Next: next}
}

func edgeOp(t token.Token) ast.EdgeOp {
	if t.Kind == token.DirectedEdge {
		return ast.Directed
	}
	return ast.UnDirected
}

func attrStmtKind(t token.Token) ast.AttrStmtKind {
	switch t.Kind {
	case token.Node:
		return ast.NodeAttr
	case token.Edge:
		return ast.EdgeAttr
	default:
		return ast.GraphAttr
	}
}
