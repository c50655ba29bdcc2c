package mhgen

import "strings"

// Node is the interface implemented by template nodes: [*Element] and
// [*Arbitrary]. The set is closed.
type Node interface {
	node()         // marker method to ensure type safety
	Pos() Position // returns the source position of the node
}

// Attribute is the interface implemented by [*StaticAttr] and [*DynAttr].
type Attribute interface {
	attribute()
	Pos() Position
}

// Comment represents a single comment (line or block).
type Comment struct {
	Text    string // Raw text including delimiters (// or /* */)
	Span    Span
	IsBlock bool // true for /* */ comments, false for // comments
}

// Name is a hyphen-joined identifier such as "data-id" or "aria-label". Names
// compare by Value only.
type Name struct {
	Value string
	Span  Span
}

// String returns the name text.
func (n *Name) String() string { return n.Value }

// Equal reports whether n and other spell the same name.
func (n *Name) Equal(other *Name) bool {
	return n != nil && other != nil && n.Value == other.Value
}

// Expr is a Go expression captured verbatim from the template.
type Expr struct {
	Code string
	Span Span
}

// Arbitrary is a "+expr" node: the value is rendered as element content.
type Arbitrary struct {
	Expr *Expr
	Span Span
}

func (a *Arbitrary) node()         {}
func (a *Arbitrary) Pos() Position { return a.Span.Start }

// Element represents name.class#id(attrs) { children }.
type Element struct {
	Name    *Name
	Classes []*Name // in source order, duplicates kept
	ID      *Name   // nil when there is no #id marker
	Attrs   []Attribute
	// Children of the element. SelfClose is set when the element had no
	// children block at all; an empty block renders <x></x>.
	Children  []Node
	SelfClose bool
	Span      Span
}

func (e *Element) node()         {}
func (e *Element) Pos() Position { return e.Span.Start }

// StaticAttr is an attribute whose name is known at compile time. Value is
// nil for a presence-only attribute.
type StaticAttr struct {
	Name  *Name
	Value *Expr
	Span  Span
}

func (a *StaticAttr) attribute()    {}
func (a *StaticAttr) Pos() Position { return a.Span.Start }

// DynAttr is an attribute whose name is computed when the template renders.
type DynAttr struct {
	Name  *Expr
	Value *Expr
	Span  Span
}

func (a *DynAttr) attribute()    {}
func (a *DynAttr) Pos() Position { return a.Span.Start }

// File represents a complete template file for code generation.
type File struct {
	Package   string
	Imports   []Import
	Templates []*Template
	Position  Position
}

// Import represents a Go import statement.
type Import struct {
	Alias    string // optional alias (empty if none)
	Path     string // import path
	Position Position
}

// Template represents a templ declaration.
type Template struct {
	Name     string
	Params   string // raw parameter list without parentheses
	Body     []Node
	Doc      []*Comment // doc comments before templ
	Position Position
}

// DocText returns the doc comments with their markers removed.
func (t *Template) DocText() []string {
	var lines []string
	for _, c := range t.Doc {
		text := c.Text
		if c.IsBlock {
			text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
			for _, line := range strings.Split(text, "\n") {
				lines = append(lines, strings.TrimSpace(line))
			}
			continue
		}
		lines = append(lines, strings.TrimSpace(strings.TrimPrefix(text, "//")))
	}
	return lines
}

// Walk calls fn for every node in nodes, depth first, parents before
// children. Returning false from fn skips the node's children.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if !fn(n) {
			continue
		}
		if el, ok := n.(*Element); ok {
			Walk(el.Children, fn)
		}
	}
}
