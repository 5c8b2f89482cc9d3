package translate

import (
	"fmt"

	"py2smt/internal/ast"
)

// UnsupportedConstructError reports a statement or expression kind
// outside the translatable grammar: loops, calls, augmented or chained
// assignment, string literals, and so on. Translation of the enclosing
// function aborts immediately; no partial output is produced.
type UnsupportedConstructError struct {
	Construct string
	Pos       ast.Position
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct: %s", e.Construct)
}

// MalformedConditionalError reports a conditional chain with zero
// branches. The parser never builds one, but the translator guards the
// invariant for programmatically constructed trees.
type MalformedConditionalError struct {
	Pos ast.Position
}

func (e *MalformedConditionalError) Error() string {
	return "malformed conditional: chain has no branches"
}

// StrictModeError reports output shapes that are legal in compatibility
// mode but are not valid SMT-LIB2: an ite with a blank branch slot, or
// a function body that serializes to more than one sibling expression.
type StrictModeError struct {
	Reason string
	Pos    ast.Position
}

func (e *StrictModeError) Error() string {
	return e.Reason
}

// FunctionError associates a translation failure with the function it
// occurred in. Failures are per-function: one bad definition never
// blocks translation of its siblings.
type FunctionError struct {
	Name string
	Pos  ast.Position
	Err  error
}

func (e *FunctionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Err.Error())
}

func (e *FunctionError) Unwrap() error {
	return e.Err
}
