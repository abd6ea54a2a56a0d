package ast

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestStringer(t *testing.T) {
	tests := map[string]struct {
		in   Node
		want string
	}{
		"NodeStmt": {
			in:   &NodeStmt{ID: NodeID{ID: "foo"}},
			want: `foo`,
		},
		"NodeStmtWithAttrList": {
			in: &NodeStmt{
				ID:       NodeID{ID: "foo"},
				AttrList: AttrList{{Name: "a", Value: "b"}, {Name: "c", Value: "d"}},
			},
			want: `foo [a=b,c=d]`,
		},
		"NodeStmtWithEmptyAttrList": {
			in:   &NodeStmt{ID: NodeID{ID: "foo"}, AttrList: AttrList{}},
			want: `foo []`,
		},
		"NodeStmtWithPortWithName": {
			in:   &NodeStmt{ID: NodeID{ID: "foo", Port: &Port{ID: "f0"}}},
			want: `foo:f0`,
		},
		"NodeStmtWithPortWithNameAndCompassPoint": {
			in:   &NodeStmt{ID: NodeID{ID: "foo", Port: &Port{ID: "f0", Compass: NorthWest}}},
			want: `foo:f0:nw`,
		},
		"NodeStmtWithPortWithUnderscore": {
			in:   &NodeStmt{ID: NodeID{ID: "foo", Port: &Port{Compass: Underscore}}},
			want: `foo:"_"`,
		},
		"EdgeStmt": {
			in: &EdgeStmt{
				Left: NodeID{ID: "a"},
				Right: EdgeRHS{
					Op:   Directed,
					To:   NodeID{ID: "b"},
					Next: &EdgeRHS{Op: UnDirected, To: &Subgraph{Stmts: []Stmt{&NodeStmt{ID: NodeID{ID: "c"}}}}},
				},
				AttrList: AttrList{{Name: "color", Value: "red"}},
			},
			want: `a -> b -- subgraph {c} [color=red]`,
		},
		"AttrStmt": {
			in:   &AttrStmt{Kind: NodeAttr, AttrList: AttrList{{Name: "shape", Value: "box"}}},
			want: `node [shape=box]`,
		},
		"Attribute": {
			in:   &Attribute{Name: "label", Value: "a b"},
			want: `label="a b"`,
		},
		"Subgraph": {
			in: &Subgraph{ID: "cluster_0", Stmts: []Stmt{
				&NodeStmt{ID: NodeID{ID: "a"}},
				&Attribute{Name: "rank", Value: "same"},
			}},
			want: `subgraph cluster_0 {a; rank=same}`,
		},
		"Graph": {
			in: &DotGraph{
				Strict: true,
				Type:   Digraph,
				ID:     "G",
				Stmts: []Stmt{
					&NodeStmt{ID: NodeID{ID: "a"}},
					&EdgeStmt{Left: NodeID{ID: "a"}, Right: EdgeRHS{Op: Directed, To: NodeID{ID: "b"}}},
				},
			},
			want: "strict digraph G {\n\ta\n\ta -> b\n}",
		},
		"EmptyGraph": {
			in:   &DotGraph{},
			want: "graph {}",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equals(t, test.in.String(), test.want, "String()")
		})
	}
}

func TestQuoteID(t *testing.T) {
	tests := map[string]string{
		"a":        `a`,
		"_a1":      `_a1`,
		"1.5":      `1.5`,
		"-1":       `"-1"`,
		"-.5":      `"-.5"`,
		"_":        `"_"`,
		"a b":      `"a b"`,
		"a-b":      `"a-b"`,
		"graph":    `"graph"`,
		"Subgraph": `"Subgraph"`,
		`say "hi"`: `"say \"hi\""`,
		`a\lb`:     `"a\lb"`,
	}

	for in, want := range tests {
		assert.Equals(t, QuoteID(in), want, "QuoteID(%q)", in)
	}
}

func TestAttrListValue(t *testing.T) {
	al := AttrList{{Name: "color", Value: "red"}, {Name: "shape", Value: "box"}, {Name: "color", Value: "blue"}}

	got, ok := al.Value("color")

	assert.True(t, ok, "Value(%q) should be found", "color")
	assert.Equals(t, got, "blue", "Value(%q) should return the last value", "color")

	_, ok = al.Value("label")

	assert.False(t, ok, "Value(%q) should not be found", "label")
}

func TestIsCompassPoint(t *testing.T) {
	for _, want := range []Compass{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest, Center, Underscore} {
		got, ok := IsCompassPoint(want.String())

		assert.True(t, ok, "IsCompassPoint(%q)", want.String())
		assert.Equals(t, got, want, "IsCompassPoint(%q)", want.String())
	}

	for _, in := range []string{"N", "north", "", "x"} {
		_, ok := IsCompassPoint(in)

		assert.False(t, ok, "IsCompassPoint(%q)", in)
	}
}

func TestCount(t *testing.T) {
	g := &DotGraph{
		Stmts: []Stmt{
			&AttrStmt{Kind: GraphAttr, AttrList: AttrList{{Name: "rankdir", Value: "LR"}}},
			&NodeStmt{ID: NodeID{ID: "a"}, AttrList: AttrList{{Name: "shape", Value: "box"}}},
			&EdgeStmt{
				Left: NodeID{ID: "a"},
				Right: EdgeRHS{
					Op: Directed,
					To: NodeID{ID: "b"},
					Next: &EdgeRHS{Op: Directed, To: &Subgraph{Stmts: []Stmt{
						&NodeStmt{ID: NodeID{ID: "c"}},
						&NodeStmt{ID: NodeID{ID: "d"}},
					}}},
				},
			},
			&Attribute{Name: "label", Value: "x"},
		},
	}

	got := Count(g)

	assert.EqualValues(t, got, Stats{Nodes: 4, Edges: 2, Subgraphs: 1, Attributes: 3}, "Count()")
}

func TestInspectSkipsChildren(t *testing.T) {
	g := &DotGraph{
		Stmts: []Stmt{
			&Subgraph{Stmts: []Stmt{&NodeStmt{ID: NodeID{ID: "hidden"}}}},
			&NodeStmt{ID: NodeID{ID: "visible"}},
		},
	}

	var ids []string
	Inspect(g, func(n Node) bool {
		if nid, ok := n.(NodeID); ok {
			ids = append(ids, nid.ID)
		}
		_, isSubgraph := n.(*Subgraph)
		return !isSubgraph
	})

	assert.EqualValues(t, ids, []string{"visible"}, "Inspect should not visit children if f returns false")
}
