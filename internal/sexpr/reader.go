package sexpr

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The reader parses SMT-LIB2 s-expression text back into nodes. Tests
// and the CLI --check pass use it to verify that emitted output is
// well-formed, and to flag the documented compatibility deviation where
// a define-fun body carries more than one sibling expression.

var smtLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Atom", Pattern: `[^()\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type document struct {
	Forms []*form `parser:"@@*"`
}

type form struct {
	Atom *string `parser:"  @Atom"`
	List []*form `parser:"| '(' @@* ')'"`
	// participle cannot distinguish "()" from a missing list, so empty
	// lists round-trip through a nil List slice; see toNode.
}

var reader = participle.MustBuild[document](
	participle.Lexer(smtLexer),
	participle.Elide("Whitespace"),
)

// Read parses s-expression text into its top-level forms.
func Read(text string) ([]Node, error) {
	doc, err := reader.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("malformed s-expression: %w", err)
	}

	nodes := make([]Node, 0, len(doc.Forms))
	for _, f := range doc.Forms {
		nodes = append(nodes, toNode(f))
	}
	return nodes, nil
}

func toNode(f *form) Node {
	if f.Atom != nil {
		return Symbol(*f.Atom)
	}
	children := make(List, 0, len(f.List))
	for _, child := range f.List {
		children = append(children, toNode(child))
	}
	return children
}
