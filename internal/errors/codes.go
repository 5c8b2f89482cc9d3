package errors

// Error code ranges:
// E0100-E0199: Scanner errors
// E0200-E0299: Parser errors
// E0300-E0399: Translation errors
// W0001+:      Warnings

const (
	// E0101: Character the scanner cannot start a token with
	ErrorIllegalCharacter = "E0101"

	// E0102: Indentation that matches no level on the indent stack
	ErrorInconsistentIndent = "E0102"

	// E0103: String literal with no closing quote on the line
	ErrorUnterminatedString = "E0103"

	// E0201: Token that no production accepts at this point
	ErrorUnexpectedToken = "E0201"

	// E0202: Statement at module level outside any function definition
	ErrorStatementOutsideFunction = "E0202"

	// E0301: Statement or expression kind outside the translatable subset
	ErrorUnsupportedConstruct = "E0301"

	// E0302: Conditional chain with no branches
	ErrorMalformedConditional = "E0302"

	// E0303: Output shape rejected under strict mode
	ErrorStrictViolation = "E0303"

	// W0001: Compatibility output that is not valid SMT-LIB2
	WarningNonSolverOutput = "W0001"
)

// Describe returns a human-readable description of an error code.
func Describe(code string) string {
	switch code {
	case ErrorIllegalCharacter:
		return "Character cannot start any token"
	case ErrorInconsistentIndent:
		return "Indentation does not match any open block"
	case ErrorUnterminatedString:
		return "String literal is missing its closing quote"
	case ErrorUnexpectedToken:
		return "Token is not valid at this point in the program"
	case ErrorStatementOutsideFunction:
		return "Only function definitions are allowed at module level"
	case ErrorUnsupportedConstruct:
		return "Construct is outside the translatable subset"
	case ErrorMalformedConditional:
		return "Conditional chain has no branches"
	case ErrorStrictViolation:
		return "Output shape is not valid SMT-LIB2"
	case WarningNonSolverOutput:
		return "Output preserves compatibility quirks a solver will reject"
	default:
		return "Unknown error code"
	}
}

// IsWarning reports whether a code is a warning rather than an error.
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// Category returns the pipeline stage an error code belongs to.
func Category(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Scanner"
	case code >= "E0200" && code < "E0300":
		return "Parser"
	case code >= "E0300" && code < "E0400":
		return "Translation"
	case IsWarning(code):
		return "Warning"
	default:
		return "Unknown"
	}
}
