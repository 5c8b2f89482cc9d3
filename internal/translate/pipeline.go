package translate

import (
	"py2smt/internal/parser"
	"py2smt/internal/preprocessor"
)

// Result carries everything a caller needs to report on one conversion:
// the SMT-LIB2 output for the functions that translated cleanly, plus
// the scan, parse, and per-function translation errors.
type Result struct {
	Output     string
	ScanErrors []parser.ScanError
	ParseCount int
	ParseErrs  []parser.ParseError
	FnErrors   []*FunctionError
}

// HasErrors reports whether any stage failed.
func (r *Result) HasErrors() bool {
	return len(r.ScanErrors) > 0 || len(r.ParseErrs) > 0 || len(r.FnErrors) > 0
}

// ConvertSource runs the whole pipeline on raw source text: strip
// comments, build the tree, translate. Functions with parse errors are
// never translated; functions that parsed are translated independently
// of each other.
func ConvertSource(path, source string, opts Options) *Result {
	clean := preprocessor.StripComments(source)
	module, parseErrs, scanErrs := parser.ParseSource(path, clean)

	result := &Result{
		ScanErrors: scanErrs,
		ParseErrs:  parseErrs,
	}
	if module != nil {
		result.ParseCount = len(module.Functions)
	}

	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		return result
	}

	output, fnErrs := New(opts).TranslateModule(module)
	result.Output = output
	result.FnErrors = fnErrs
	return result
}
