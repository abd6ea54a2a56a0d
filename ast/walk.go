package ast

import "github.com/teleivo/dotparse/internal/assert"

// Inspect traverses the tree rooted at n in depth-first order. It calls f(n) and, if f returns
// true, inspects the children of n in source order. Attributes in attribute lists are visited as
// *Attribute pointing into the list.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	case *DotGraph:
		inspectStmts(n.Stmts, f)
	case *Subgraph:
		inspectStmts(n.Stmts, f)
	case *NodeStmt:
		Inspect(n.ID, f)
		inspectAttrs(n.AttrList, f)
	case *EdgeStmt:
		for _, operand := range n.Operands() {
			Inspect(operand, f)
		}
		inspectAttrs(n.AttrList, f)
	case *AttrStmt:
		inspectAttrs(n.AttrList, f)
	case NodeID, *Attribute:
	default:
		assert.Fail("unexpected node type %T", n)
	}
}

func inspectStmts(stmts []Stmt, f func(Node) bool) {
	for _, stmt := range stmts {
		Inspect(stmt, f)
	}
}

func inspectAttrs(al AttrList, f func(Node) bool) {
	for i := range al {
		Inspect(&al[i], f)
	}
}

// Stats counts the elements of a graph.
type Stats struct {
	Nodes      int // Nodes is the number of distinct node IDs.
	Edges      int // Edges is the number of edge operators. An edge to or from a subgraph counts once.
	Subgraphs  int
	Attributes int
}

// Count returns statistics about the graph.
func Count(g *DotGraph) Stats {
	var stats Stats
	nodes := make(map[string]struct{})
	Inspect(g, func(n Node) bool {
		switch n := n.(type) {
		case NodeID:
			nodes[n.ID] = struct{}{}
		case *EdgeStmt:
			stats.Edges += len(n.Operands()) - 1
		case *Subgraph:
			stats.Subgraphs++
		case *Attribute:
			stats.Attributes++
		}
		return true
	})
	stats.Nodes = len(nodes)
	return stats
}
