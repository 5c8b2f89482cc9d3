// Package errors renders scanner, parser, and translation failures as
// source-anchored diagnostics with stable codes.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"py2smt/internal/ast"
	"py2smt/internal/parser"
	"py2smt/internal/translate"
)

type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
)

// Diagnostic is one reportable finding anchored to a source position.
type Diagnostic struct {
	Level    Level
	Code     string // stable code like E0301
	Message  string
	Position ast.Position
	Length   int // width of the marked region, at least 1
	Notes    []string
	HelpText string
}

// Reporter formats diagnostics against one source file.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FromScanError converts a lexical failure into a diagnostic.
func FromScanError(err parser.ScanError) Diagnostic {
	code := ErrorIllegalCharacter
	switch {
	case strings.Contains(err.Message, "indentation"):
		code = ErrorInconsistentIndent
	case strings.Contains(err.Message, "unterminated"):
		code = ErrorUnterminatedString
	}
	return Diagnostic{
		Level:    Error,
		Code:     code,
		Message:  err.Message,
		Position: ast.Position{Line: err.Position.Line, Column: err.Position.Column, Offset: err.Position.Offset},
		Length:   err.Length,
	}
}

// FromParseError converts a syntactic failure into a diagnostic.
func FromParseError(err parser.ParseError) Diagnostic {
	code := ErrorUnexpectedToken
	if strings.Contains(err.Message, "function definition at top level") {
		code = ErrorStatementOutsideFunction
	}
	return Diagnostic{
		Level:    Error,
		Code:     code,
		Message:  err.Message,
		Position: ast.Position{Line: err.Position.Line, Column: err.Position.Column, Offset: err.Position.Offset},
	}
}

// FromFunctionError converts a per-function translation failure into a
// diagnostic, classifying by the wrapped error kind.
func FromFunctionError(err *translate.FunctionError) Diagnostic {
	diag := Diagnostic{
		Level:    Error,
		Code:     ErrorUnsupportedConstruct,
		Message:  err.Error(),
		Position: err.Pos,
	}

	switch inner := err.Err.(type) {
	case *translate.UnsupportedConstructError:
		diag.Position = inner.Pos
		diag.HelpText = "only assignments, conditionals, returns, and arithmetic are translatable"
	case *translate.MalformedConditionalError:
		diag.Code = ErrorMalformedConditional
		diag.Position = inner.Pos
	case *translate.StrictModeError:
		diag.Code = ErrorStrictViolation
		diag.Position = inner.Pos
		diag.Notes = []string{"rerun without strict mode to emit the compatibility shape"}
	}
	return diag
}

// Format renders one diagnostic in the style of modern compiler output:
// a coded header, the location, and the offending line with a marker.
func (r *Reporter) Format(d Diagnostic) string {
	var out strings.Builder

	levelColor := levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if d.Code != "" {
		out.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		out.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(d.Level)), d.Message))
	}

	width := lineNumberWidth(d.Position.Line)
	indent := strings.Repeat(" ", width)

	out.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column))
	out.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if d.Position.Line > 0 && d.Position.Line <= len(r.lines) {
		out.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, d.Position.Line)),
			dim("│"),
			r.lines[d.Position.Line-1]))
		out.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), r.marker(d)))
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		out.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note))
	}
	if d.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		out.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), helpColor("help:"), d.HelpText))
	}

	out.WriteString("\n")
	return out.String()
}

// FormatAll renders every diagnostic from a pipeline result.
func (r *Reporter) FormatAll(result *translate.Result) string {
	var out strings.Builder
	for _, err := range result.ScanErrors {
		out.WriteString(r.Format(FromScanError(err)))
	}
	for _, err := range result.ParseErrs {
		out.WriteString(r.Format(FromParseError(err)))
	}
	for _, err := range result.FnErrors {
		out.WriteString(r.Format(FromFunctionError(err)))
	}
	return out.String()
}

func levelColor(level Level) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) marker(d Diagnostic) string {
	length := d.Length
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, d.Position.Column-1))
	markerColor := color.New(color.FgRed, color.Bold)
	if d.Level == Warning {
		markerColor = color.New(color.FgYellow, color.Bold)
	}
	return spaces + markerColor.SprintFunc()(strings.Repeat("^", length))
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}
