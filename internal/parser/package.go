package parser

import "py2smt/internal/ast"

// ParseSource tokenizes and parses preprocessed source text into a
// module. Errors are collected rather than thrown so callers can report
// every problem at once.
func ParseSource(path string, source string) (*ast.Module, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	module := parser.ParseModule()

	return module, parser.errors, scanner.errors
}
