// Package translate walks parsed function bodies and emits SMT-LIB2
// define-fun forms encoding control and data flow as nested let and ite
// expressions. The translator is a pure function from tree to text; it
// holds no state across invocations.
package translate

import (
	"fmt"
	"strings"

	"py2smt/internal/ast"
	"py2smt/internal/sexpr"
)

// DefaultType is applied to parameters and return values when the
// caller configures nothing. The source language is untyped, so one
// global label covers every symbol.
const DefaultType = "Int"

// Options is the translation-time type configuration: one type for all
// parameters, one for the return value, no per-symbol typing.
//
// Strict toggles the compatibility output shapes. By default a
// conditional chain without an else leaves a blank ite slot and
// trailing statements become sibling expressions, neither of which is
// valid SMT-LIB2. In strict mode those shapes are errors instead.
type Options struct {
	ParamType  string
	ReturnType string
	Strict     bool
}

func (o Options) withDefaults() Options {
	if o.ParamType == "" {
		o.ParamType = DefaultType
	}
	if o.ReturnType == "" {
		o.ReturnType = o.ParamType
	}
	return o
}

type Translator struct {
	opts Options
}

func New(opts Options) *Translator {
	return &Translator{opts: opts.withDefaults()}
}

// TranslateModule translates every function definition independently
// and newline-joins the successful outputs. A failed definition yields
// a FunctionError and does not affect its siblings.
func (t *Translator) TranslateModule(module *ast.Module) (string, []*FunctionError) {
	var outputs []string
	var failures []*FunctionError

	for _, fn := range module.Functions {
		output, err := t.TranslateFunction(fn)
		if err != nil {
			failures = append(failures, &FunctionError{
				Name: fn.Name.Value,
				Pos:  fn.Pos,
				Err:  err,
			})
			continue
		}
		outputs = append(outputs, output)
	}

	return strings.Join(outputs, "\n"), failures
}

// TranslateFunction emits
//
//	(define-fun name ((p0 T) (p1 T) ...) R body)
//
// with parameter order preserved and the body's sibling forms joined by
// newlines inside the closing paren.
func (t *Translator) TranslateFunction(fn *ast.FunctionDef) (string, error) {
	body, err := t.translateBody(fn.Body)
	if err != nil {
		return "", err
	}

	if t.opts.Strict {
		if sexpr.ContainsBlank(body) {
			return "", &StrictModeError{
				Reason: fmt.Sprintf("function %q: conditional chain has no else branch", fn.Name.Value),
				Pos:    fn.Pos,
			}
		}
		if !wellFormedBody(body) {
			return "", &StrictModeError{
				Reason: fmt.Sprintf("function %q: body does not reduce to let prefixes and a single value expression", fn.Name.Value),
				Pos:    fn.Pos,
			}
		}
	}

	params := make(sexpr.List, 0, len(fn.Params))
	for _, param := range fn.Params {
		params = append(params, sexpr.NewList(
			sexpr.Symbol(param.Name.Value),
			sexpr.Symbol(t.opts.ParamType),
		))
	}

	form := sexpr.NewList(
		sexpr.Symbol("define-fun"),
		sexpr.Symbol(fn.Name.Value),
		params,
		sexpr.Symbol(t.opts.ReturnType),
		body,
	)

	return sexpr.Serialize(form), nil
}

// translateBody is the central recursive driver. Statements are
// processed left to right; every statement contributes one sibling form
// to the sequence. An assignment's let prefixes the textual remainder
// rather than nesting it, and statements after a return are still
// emitted in order; both are deliberate compatibility behaviors.
func (t *Translator) translateBody(stmts []ast.Stmt) (sexpr.Node, error) {
	forms := make(sexpr.Seq, 0, len(stmts))

	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.AssignStmt:
			if len(s.Targets) != 1 {
				return nil, &UnsupportedConstructError{
					Construct: "assignment with multiple targets",
					Pos:       s.Pos,
				}
			}
			value, err := t.translateExpr(s.Value)
			if err != nil {
				return nil, err
			}
			forms = append(forms, sexpr.NewList(
				sexpr.Symbol("let"),
				sexpr.Symbol(s.Targets[0].Value),
				value,
			))

		case *ast.IfStmt:
			form, err := t.translateConditional(s)
			if err != nil {
				return nil, err
			}
			forms = append(forms, form)

		case *ast.ReturnStmt:
			if s.Value == nil {
				forms = append(forms, sexpr.Symbol("nil"))
				continue
			}
			value, err := t.translateExpr(s.Value)
			if err != nil {
				return nil, err
			}
			forms = append(forms, value)

		case *ast.AugAssignStmt:
			return nil, &UnsupportedConstructError{Construct: "augmented assignment", Pos: s.Pos}
		case *ast.WhileStmt:
			return nil, &UnsupportedConstructError{Construct: "while loop", Pos: s.Pos}
		case *ast.ForStmt:
			return nil, &UnsupportedConstructError{Construct: "for loop", Pos: s.Pos}
		case *ast.ExprStmt:
			return nil, &UnsupportedConstructError{Construct: "expression statement", Pos: s.Pos}
		case *ast.PassStmt:
			return nil, &UnsupportedConstructError{Construct: "pass statement", Pos: s.Pos}
		case *ast.BadStmt:
			return nil, &UnsupportedConstructError{Construct: "unparsed statement", Pos: s.Pos}
		default:
			return nil, &UnsupportedConstructError{
				Construct: "unknown statement kind",
				Pos:       stmt.NodePos(),
			}
		}
	}

	return forms, nil
}

// wellFormedBody reports whether every statement sequence in the
// emitted tree has the one shape a solver can consume: zero or more let
// prefixes followed by exactly one value expression. Anything else is
// the compatibility deviation (trailing siblings after a conditional or
// return, or a body ending in an assignment).
func wellFormedBody(n sexpr.Node) bool {
	switch node := n.(type) {
	case sexpr.Seq:
		if len(node) == 0 {
			return false
		}
		for i, form := range node {
			last := i == len(node)-1
			if isLetForm(form) {
				if last {
					return false
				}
				continue
			}
			if !last {
				return false
			}
			if !wellFormedBody(form) {
				return false
			}
		}
		return true
	case sexpr.List:
		for _, child := range node {
			if !wellFormedBody(child) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func isLetForm(n sexpr.Node) bool {
	list, ok := n.(sexpr.List)
	return ok && len(list) > 0 && list[0] == sexpr.Symbol("let")
}

// translateConditional folds the branch list right to left into nested
// ite forms, so the first branch's condition ends up outermost. The
// innermost fallback is the translated else body, or a blank slot when
// the chain has none.
func (t *Translator) translateConditional(cond *ast.IfStmt) (sexpr.Node, error) {
	if len(cond.Branches) == 0 {
		return nil, &MalformedConditionalError{Pos: cond.Pos}
	}

	var fallback sexpr.Node = sexpr.Blank{}
	if cond.Else != nil {
		translated, err := t.translateBody(cond.Else)
		if err != nil {
			return nil, err
		}
		fallback = translated
	}

	for i := len(cond.Branches) - 1; i >= 0; i-- {
		branch := cond.Branches[i]

		test, err := t.translateExpr(branch.Cond)
		if err != nil {
			return nil, err
		}
		body, err := t.translateBody(branch.Body)
		if err != nil {
			return nil, err
		}

		fallback = sexpr.NewList(sexpr.Symbol("ite"), test, body, fallback)
	}

	return fallback, nil
}
