package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/teleivo/dotparse/ast"
	"github.com/teleivo/dotparse/internal/assert"
	"gopkg.in/yaml.v3"
)

// format represents the output format of the AST.
type format string

const (
	// Default prints the AST as an indented tree.
	Default format = "default"
	// JSON prints the AST as JSON.
	JSON format = "json"
	// YAML prints the AST as YAML.
	YAML format = "yaml"
)

func newFormat(in string) (format, error) {
	switch format(in) {
	case Default, JSON, YAML:
		return format(in), nil
	}
	return "", fmt.Errorf("invalid format %q, valid ones are %q, %q or %q", in, Default, JSON, YAML)
}

// node is the serializable form of an AST node.
type node struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Type     string      `json:"type,omitempty" yaml:"type,omitempty"`
	Strict   bool        `json:"strict,omitempty" yaml:"strict,omitempty"`
	ID       string      `json:"id,omitempty" yaml:"id,omitempty"`
	Port     string      `json:"port,omitempty" yaml:"port,omitempty"`
	Compass  string      `json:"compass,omitempty" yaml:"compass,omitempty"`
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Value    string      `json:"value,omitempty" yaml:"value,omitempty"`
	Ops      []string    `json:"ops,omitempty" yaml:"ops,omitempty"`
	Attrs    []attribute `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []node      `json:"children,omitempty" yaml:"children,omitempty"`
}

type attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

func render(w io.Writer, g *ast.DotGraph, ft format) error {
	tree := toNode(g)

	switch ft {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	default:
		var out strings.Builder
		renderDefault(&out, tree, 0)
		_, err := io.WriteString(w, out.String())
		return err
	}
}

func renderDefault(out *strings.Builder, n node, indent int) {
	out.WriteString(strings.Repeat("\t", indent))
	out.WriteString(n.Kind)
	for _, field := range [][2]string{
		{"type", n.Type},
		{"id", n.ID},
		{"port", n.Port},
		{"compass", n.Compass},
		{"name", n.Name},
		{"value", n.Value},
	} {
		if field[1] != "" {
			fmt.Fprintf(out, " %s=%q", field[0], field[1])
		}
	}
	if n.Strict {
		out.WriteString(" strict")
	}
	if len(n.Ops) > 0 {
		fmt.Fprintf(out, " ops=%s", strings.Join(n.Ops, ","))
	}
	out.WriteRune('\n')

	for _, attr := range n.Attrs {
		out.WriteString(strings.Repeat("\t", indent+1))
		fmt.Fprintf(out, "attr %q=%q\n", attr.Name, attr.Value)
	}
	for _, child := range n.Children {
		renderDefault(out, child, indent+1)
	}
}

func toNode(n ast.Node) node {
	switch n := n.(type) {
	case *ast.DotGraph:
		return node{Kind: "graph", Type: n.Type.String(), Strict: n.Strict, ID: n.ID, Children: toNodes(n.Stmts)}
	case *ast.Subgraph:
		return node{Kind: "subgraph", ID: n.ID, Children: toNodes(n.Stmts)}
	case *ast.NodeStmt:
		return node{Kind: "node_stmt", Attrs: toAttrs(n.AttrList), Children: []node{toNode(n.ID)}}
	case ast.NodeID:
		result := node{Kind: "node_id", ID: n.ID}
		if n.Port != nil {
			result.Port = n.Port.ID
			result.Compass = n.Port.Compass.String()
		}
		return result
	case *ast.EdgeStmt:
		result := node{Kind: "edge_stmt", Attrs: toAttrs(n.AttrList)}
		for cur := &n.Right; cur != nil; cur = cur.Next {
			result.Ops = append(result.Ops, cur.Op.String())
		}
		for _, operand := range n.Operands() {
			result.Children = append(result.Children, toNode(operand))
		}
		return result
	case *ast.AttrStmt:
		return node{Kind: "attr_stmt", Type: n.Kind.String(), Attrs: toAttrs(n.AttrList)}
	case *ast.Attribute:
		return node{Kind: "attribute", Name: n.Name, Value: n.Value}
	default:
		assert.Fail("unexpected node type %T", n)
		return node{}
	}
}

func toNodes(stmts []ast.Stmt) []node {
	var result []node
	for _, stmt := range stmts {
		result = append(result, toNode(stmt))
	}
	return result
}

func toAttrs(al ast.AttrList) []attribute {
	var result []attribute
	for _, attr := range al {
		result = append(result, attribute{Name: attr.Name, Value: attr.Value})
	}
	return result
}
