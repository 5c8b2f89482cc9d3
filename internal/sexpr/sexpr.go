// Package sexpr is the output-side intermediate representation: the
// translator builds a tree of s-expression nodes and serializes it once,
// instead of concatenating strings at every recursive step.
package sexpr

import "strings"

type Node interface {
	isNode()
	// Write serializes the node into b.
	Write(b *strings.Builder)
}

// Symbol is a bare SMT-LIB2 atom: an operator, identifier, or literal.
type Symbol string

// List is a parenthesized application like "(+ x y)".
type List []Node

// Blank is an intentionally empty slot. A conditional chain without a
// terminating else leaves its innermost ite branch blank, which
// serializes to nothing: "(ite c t )".
type Blank struct{}

// Seq is a sequence of sibling top-level forms joined by newlines. A
// function body with let prefixes and a trailing expression is one Seq.
type Seq []Node

func (Symbol) isNode() {}
func (List) isNode()   {}
func (Blank) isNode()  {}
func (Seq) isNode()    {}

func (s Symbol) Write(b *strings.Builder) {
	b.WriteString(string(s))
}

func (l List) Write(b *strings.Builder) {
	b.WriteString("(")
	for i, child := range l {
		if i > 0 {
			b.WriteString(" ")
		}
		child.Write(b)
	}
	b.WriteString(")")
}

func (Blank) Write(b *strings.Builder) {}

func (s Seq) Write(b *strings.Builder) {
	for i, child := range s {
		if i > 0 {
			b.WriteString("\n")
		}
		child.Write(b)
	}
}

// Serialize renders a node to its textual SMT-LIB2 form.
func Serialize(n Node) string {
	var b strings.Builder
	n.Write(&b)
	return b.String()
}

// NewList builds a List from its children.
func NewList(children ...Node) List {
	return List(children)
}

// Len reports how many sibling forms a node serializes to: a Seq counts
// its children, anything else is a single form.
func Len(n Node) int {
	if seq, ok := n.(Seq); ok {
		return len(seq)
	}
	return 1
}

// ContainsBlank reports whether any descendant is a Blank slot.
func ContainsBlank(n Node) bool {
	switch node := n.(type) {
	case Blank:
		return true
	case List:
		for _, child := range node {
			if ContainsBlank(child) {
				return true
			}
		}
	case Seq:
		for _, child := range node {
			if ContainsBlank(child) {
				return true
			}
		}
	}
	return false
}
