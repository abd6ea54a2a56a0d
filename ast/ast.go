// Package ast contains an abstract syntax tree representation of the [DOT language].
//
// A [DotGraph] owns the entire tree. Statements and edge operands are sealed interfaces so a type
// switch over [Stmt] or [EdgeOperand] covers a closed set of types.
//
// [DOT language]: https://graphviz.org/doc/info/lang.html
package ast

// GraphType distinguishes undirected from directed graphs.
type GraphType int

const (
	Graph   GraphType = iota // Graph is an undirected graph declared using the graph keyword.
	Digraph                  // Digraph is a directed graph declared using the digraph keyword.
)

func (gt GraphType) String() string {
	if gt == Digraph {
		return "digraph"
	}
	return "graph"
}

// DotGraph is a directed or undirected DOT graph.
type DotGraph struct {
	Type   GraphType
	Strict bool   // Strict forbids multi-edges. It is recorded but not enforced.
	ID     string // ID is the optional identifier of the graph.
	Stmts  []Stmt
}

// Node is implemented by all nodes of the tree. String renders the node in the DOT language.
type Node interface {
	String() string
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// EdgeOperand is implemented by nodes that can be connected by an edge, which is a [NodeID] or a
// [Subgraph].
type EdgeOperand interface {
	Node
	edgeOperand()
}

// NodeStmt is a node statement defining a node with optional attributes.
type NodeStmt struct {
	ID       NodeID   // ID is the identifier of the node targeted by the node statement.
	AttrList AttrList // AttrList is nil if the statement has no attribute list.
}

func (*NodeStmt) stmtNode() {}

// NodeID identifies a node with an optional port.
type NodeID struct {
	ID   string // ID is the identifier of the node.
	Port *Port  // Port is an optional port an edge can attach to.
}

func (NodeID) edgeOperand() {}

// Port defines a node port where an edge can attach to. At least one of ID or Compass is set.
type Port struct {
	ID      string  // ID is the name of the port. It is empty if the port is only a compass point.
	Compass Compass // Compass is NoCompass if the port has no compass point.
}

// Compass is the position at which an edge can attach to a node
// https://graphviz.org/docs/attr-types/portPos.
type Compass int

const (
	NoCompass  Compass = iota // NoCompass marks the absence of a compass point.
	North                     // n
	NorthEast                 // ne
	East                      // e
	SouthEast                 // se
	South                     // s
	SouthWest                 // sw
	West                      // w
	NorthWest                 // nw
	Center                    // c
	Underscore                // _
)

var compassStrings = map[Compass]string{
	North:      "n",
	NorthEast:  "ne",
	East:       "e",
	SouthEast:  "se",
	South:      "s",
	SouthWest:  "sw",
	West:       "w",
	NorthWest:  "nw",
	Center:     "c",
	Underscore: "_",
}

func (c Compass) String() string {
	return compassStrings[c]
}

var compassPoints = map[string]Compass{
	"n":  North,
	"ne": NorthEast,
	"e":  East,
	"se": SouthEast,
	"s":  South,
	"sw": SouthWest,
	"w":  West,
	"nw": NorthWest,
	"c":  Center,
	"_":  Underscore,
}

// IsCompassPoint returns the compass point spelled by in. Compass points are case-sensitive.
func IsCompassPoint(in string) (Compass, bool) {
	c, ok := compassPoints[in]
	return c, ok
}

// EdgeOp is the operator connecting edge operands.
type EdgeOp int

const (
	UnDirected EdgeOp = iota // --
	Directed                 // ->
)

func (op EdgeOp) String() string {
	if op == Directed {
		return "->"
	}
	return "--"
}

// EdgeStmt is an edge statement connecting nodes or subgraphs.
type EdgeStmt struct {
	Left     EdgeOperand // Left is the left node identifier or subgraph of the edge statement.
	Right    EdgeRHS     // Right is the edge statements right hand side.
	AttrList AttrList    // AttrList is nil if the statement has no attribute list.
}

func (*EdgeStmt) stmtNode() {}

// Operands returns all edge operands in order. For "a -> b -> c" it returns a, b and c.
func (e *EdgeStmt) Operands() []EdgeOperand {
	result := []EdgeOperand{e.Left}
	for cur := &e.Right; cur != nil; cur = cur.Next {
		result = append(result, cur.To)
	}
	return result
}

// EdgeRHS is the right-hand side of an edge statement. A chain like "a -> b -> c" is a linked
// list of right-hand sides owned by the statement.
type EdgeRHS struct {
	Op   EdgeOp      // Op is the operator preceding To.
	To   EdgeOperand // To is the node identifier or subgraph the edge connects to.
	Next *EdgeRHS    // Next is the optional continuation of the chain.
}

// AttrStmtKind is the target of an attribute statement.
type AttrStmtKind int

const (
	GraphAttr AttrStmtKind = iota // graph
	NodeAttr                      // node
	EdgeAttr                      // edge
)

func (k AttrStmtKind) String() string {
	switch k {
	case NodeAttr:
		return "node"
	case EdgeAttr:
		return "edge"
	default:
		return "graph"
	}
}

// AttrStmt is an attribute statement setting default attributes for a graph, nodes or edges.
type AttrStmt struct {
	Kind     AttrStmtKind
	AttrList AttrList
}

func (*AttrStmt) stmtNode() {}

// AttrList is an ordered list of attributes. Multiple bracketed lists like [a=1][b=2] are
// flattened into a single list. Duplicate names are kept; later ones take precedence for
// consumers.
type AttrList []Attribute

// Value returns the value of the last attribute with the given name.
func (al AttrList) Value(name string) (string, bool) {
	for i := len(al) - 1; i >= 0; i-- {
		if al[i].Name == name {
			return al[i].Value, true
		}
	}
	return "", false
}

// Attribute is a name=value pair. It is a statement when it appears outside of an attribute
// list.
type Attribute struct {
	Name  string
	Value string
}

func (*Attribute) stmtNode() {}

// Subgraph is a subgraph with an optional identifier. A subgraph can be a statement or an edge
// operand.
type Subgraph struct {
	ID    string // ID is the optional identifier of the subgraph.
	Stmts []Stmt
}

func (*Subgraph) stmtNode()    {}
func (*Subgraph) edgeOperand() {}
