package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"py2smt/internal/parser"
	"py2smt/internal/translate"
)

// ConvertScanErrors transforms lexical errors into LSP diagnostics.
// These cover tokenization issues like stray characters, unterminated
// strings, and indentation that matches no open block.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		endChar := uint32(scanErr.Position.Column - 1 + scanErr.Length)
		if scanErr.Length == 0 {
			endChar = uint32(scanErr.Position.Column + 3)
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: endChar,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("py2smt-scanner"),
			Message:  scanErr.Message,
		})
	}

	return diagnostics
}

// ConvertParseErrors transforms syntax errors into LSP diagnostics.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line: uint32(parseErr.Position.Line - 1),
					// Rough span for visibility
					Character: uint32(parseErr.Position.Column + 5),
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("py2smt-parser"),
			Message:  parseErr.Message,
		})
	}

	return diagnostics
}

// ConvertFunctionErrors transforms per-function translation failures
// into LSP diagnostics anchored at the offending construct.
func ConvertFunctionErrors(fnErrors []*translate.FunctionError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, fnErr := range fnErrors {
		pos := fnErr.Pos
		switch inner := fnErr.Err.(type) {
		case *translate.UnsupportedConstructError:
			pos = inner.Pos
		case *translate.MalformedConditionalError:
			pos = inner.Pos
		case *translate.StrictModeError:
			pos = inner.Pos
		}

		line := max(pos.Line-1, 0)
		char := max(pos.Column-1, 0)

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: uint32(char)},
				End:   protocol.Position{Line: uint32(line), Character: uint32(char + 6)},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("py2smt-translate"),
			Message:  fnErr.Error(),
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
