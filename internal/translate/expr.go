package translate

import (
	"fmt"
	"strings"

	"py2smt/internal/ast"
	"py2smt/internal/sexpr"
)

// binaryOps maps source operators to SMT-LIB2 function symbols. "!=" is
// absent because it expands to (not (= l r)) rather than a single
// symbol. "%" is the one true rename: SMT-LIB2 calls it mod.
var binaryOps = map[string]string{
	"+":   "+",
	"-":   "-",
	"*":   "*",
	"/":   "/",
	"%":   "mod",
	"==":  "=",
	"<":   "<",
	"<=":  "<=",
	">":   ">",
	">=":  ">=",
	"and": "and",
	"or":  "or",
}

func (t *Translator) translateExpr(expr ast.Expr) (sexpr.Node, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return t.translateLiteral(e)

	case *ast.IdentExpr:
		// Boolean names are accepted in any casing.
		switch strings.ToLower(e.Name) {
		case "true":
			return sexpr.Symbol("true"), nil
		case "false":
			return sexpr.Symbol("false"), nil
		}
		return sexpr.Symbol(e.Name), nil

	case *ast.ParenExpr:
		// Grouping is structural in the tree; the parens carry nothing.
		return t.translateExpr(e.Value)

	case *ast.BinaryExpr:
		left, err := t.translateExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := t.translateExpr(e.Right)
		if err != nil {
			return nil, err
		}

		if e.Op == "!=" {
			return sexpr.NewList(sexpr.Symbol("not"),
				sexpr.NewList(sexpr.Symbol("="), left, right)), nil
		}

		symbol, ok := binaryOps[e.Op]
		if !ok {
			return nil, &UnsupportedConstructError{
				Construct: fmt.Sprintf("operator %q", e.Op),
				Pos:       e.Pos,
			}
		}
		return sexpr.NewList(sexpr.Symbol(symbol), left, right), nil

	case *ast.UnaryExpr:
		value, err := t.translateExpr(e.Value)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case "-":
			return sexpr.NewList(sexpr.Symbol("-"), value), nil
		case "not":
			return sexpr.NewList(sexpr.Symbol("not"), value), nil
		}
		return nil, &UnsupportedConstructError{
			Construct: fmt.Sprintf("unary operator %q", e.Op),
			Pos:       e.Pos,
		}

	case *ast.CallExpr:
		return nil, &UnsupportedConstructError{Construct: "function call", Pos: e.Pos}

	case *ast.BadExpr:
		return nil, &UnsupportedConstructError{Construct: "unparsed expression", Pos: e.Pos}

	default:
		return nil, &UnsupportedConstructError{
			Construct: "unknown expression kind",
			Pos:       expr.NodePos(),
		}
	}
}

func (t *Translator) translateLiteral(lit *ast.LiteralExpr) (sexpr.Node, error) {
	switch lit.Kind {
	case ast.NumberLit:
		// The source lexeme is already the natural decimal form.
		return sexpr.Symbol(lit.Value), nil
	case ast.BoolLit:
		if lit.Value == "True" {
			return sexpr.Symbol("true"), nil
		}
		return sexpr.Symbol("false"), nil
	case ast.StringLit:
		return nil, &UnsupportedConstructError{Construct: "string literal", Pos: lit.Pos}
	case ast.NoneLit:
		return nil, &UnsupportedConstructError{Construct: "None literal", Pos: lit.Pos}
	default:
		return nil, &UnsupportedConstructError{Construct: "unknown literal kind", Pos: lit.Pos}
	}
}
