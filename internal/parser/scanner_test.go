package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanTypes(t *testing.T, source string) ([]TokenType, []ScanError) {
	t.Helper()
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types, scanner.errors
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "def if elif else return and or not True False None while for in pass radius"
	expected := []TokenType{
		DEF, IF, ELIF, ELSE, RETURN, AND, OR, NOT, TRUE, FALSE,
		NONE, WHILE, FOR, IN, PASS, IDENTIFIER,
		NEWLINE, EOF,
	}

	types, errs := scanTypes(t, input)
	assert.Empty(t, errs)
	assert.Equal(t, expected, types)
}

func TestSimpleFunctionLayout(t *testing.T) {
	source := "def f(x):\n    return x\n"
	expected := []TokenType{
		DEF, IDENTIFIER, LEFT_PAREN, IDENTIFIER, RIGHT_PAREN, COLON, NEWLINE,
		INDENT, RETURN, IDENTIFIER, NEWLINE,
		DEDENT, EOF,
	}

	types, errs := scanTypes(t, source)
	assert.Empty(t, errs)
	assert.Equal(t, expected, types)
}

func TestNestedBlocksEmitMatchingDedents(t *testing.T) {
	source := "def f(x):\n    if x:\n        return 1\n    return 0\n"
	expected := []TokenType{
		DEF, IDENTIFIER, LEFT_PAREN, IDENTIFIER, RIGHT_PAREN, COLON, NEWLINE,
		INDENT, IF, IDENTIFIER, COLON, NEWLINE,
		INDENT, RETURN, NUMBER, NEWLINE,
		DEDENT, RETURN, NUMBER, NEWLINE,
		DEDENT, EOF,
	}

	types, errs := scanTypes(t, source)
	assert.Empty(t, errs)
	assert.Equal(t, expected, types)
}

func TestBlankAndCommentLinesProduceNoLayoutTokens(t *testing.T) {
	source := "def f(x):\n\n    # just a comment\n    return x\n"
	expected := []TokenType{
		DEF, IDENTIFIER, LEFT_PAREN, IDENTIFIER, RIGHT_PAREN, COLON, NEWLINE,
		INDENT, RETURN, IDENTIFIER, NEWLINE,
		DEDENT, EOF,
	}

	types, errs := scanTypes(t, source)
	assert.Empty(t, errs)
	assert.Equal(t, expected, types)
}

func TestMissingFinalNewline(t *testing.T) {
	types, errs := scanTypes(t, "def f(x):\n    return x")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{
		DEF, IDENTIFIER, LEFT_PAREN, IDENTIFIER, RIGHT_PAREN, COLON, NEWLINE,
		INDENT, RETURN, IDENTIFIER, NEWLINE,
		DEDENT, EOF,
	}, types)
}

func TestImplicitLineJoiningInsideParens(t *testing.T) {
	source := "x = (1 +\n     2)\n"
	expected := []TokenType{
		IDENTIFIER, EQUAL, LEFT_PAREN, NUMBER, PLUS, NUMBER, RIGHT_PAREN,
		NEWLINE, EOF,
	}

	types, errs := scanTypes(t, source)
	assert.Empty(t, errs)
	assert.Equal(t, expected, types)
}

func TestExplicitLineContinuation(t *testing.T) {
	source := "x = 1 + \\\n2\n"
	expected := []TokenType{
		IDENTIFIER, EQUAL, NUMBER, PLUS, NUMBER, NEWLINE, EOF,
	}

	types, errs := scanTypes(t, source)
	assert.Empty(t, errs)
	assert.Equal(t, expected, types)
}

func TestTabIndentationAdvancesToNextStop(t *testing.T) {
	// One tab and eight spaces land on the same column, so the second
	// line continues the same block.
	source := "def f(x):\n\treturn x\n"
	types, errs := scanTypes(t, source)
	assert.Empty(t, errs)
	assert.Contains(t, types, INDENT)
	assert.Contains(t, types, DEDENT)
}

func TestOperators(t *testing.T) {
	input := "a != b ** c // d <= e >= f == g"
	expected := []TokenType{
		IDENTIFIER, BANG_EQUAL, IDENTIFIER, STAR_STAR, IDENTIFIER,
		SLASH_SLASH, IDENTIFIER, LESS_EQUAL, IDENTIFIER,
		GREATER_EQUAL, IDENTIFIER, EQUAL_EQUAL, IDENTIFIER,
		NEWLINE, EOF,
	}

	types, errs := scanTypes(t, input)
	assert.Empty(t, errs)
	assert.Equal(t, expected, types)
}

func TestAugmentedAssignOperators(t *testing.T) {
	input := "a += 1\nb -= 2\nc *= 3\nd /= 4\ne %= 5\n"
	types, errs := scanTypes(t, input)
	assert.Empty(t, errs)
	assert.Contains(t, types, PLUS_EQUAL)
	assert.Contains(t, types, MINUS_EQUAL)
	assert.Contains(t, types, STAR_EQUAL)
	assert.Contains(t, types, SLASH_EQUAL)
	assert.Contains(t, types, PERCENT_EQUAL)
}

func TestNumberLexemes(t *testing.T) {
	scanner := NewScanner("pi = 3.14 + 42")
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.errors)

	var numbers []string
	for _, tok := range tokens {
		if tok.Type == NUMBER {
			numbers = append(numbers, tok.Lexeme)
		}
	}
	assert.Equal(t, []string{"3.14", "42"}, numbers)
}

func TestStringLexemeExcludesQuotes(t *testing.T) {
	scanner := NewScanner(`x = 'label'`)
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.errors)

	require.Len(t, tokens, 5) // x = 'label' NEWLINE EOF
	assert.Equal(t, STRING, tokens[2].Type)
	assert.Equal(t, "label", tokens[2].Lexeme)
}

func TestInconsistentIndentation(t *testing.T) {
	source := "def f(x):\n        return x\n    return x\n"
	_, errs := scanTypes(t, source)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "inconsistent indentation")
}

func TestUnterminatedString(t *testing.T) {
	_, errs := scanTypes(t, "x = 'oops\n")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "unterminated string")
}

func TestLoneBang(t *testing.T) {
	_, errs := scanTypes(t, "x = a ! b\n")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "did you mean '!='")
}

func TestUnexpectedCharacter(t *testing.T) {
	_, errs := scanTypes(t, "x = a @ b\n")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "unexpected character")
}

func TestTokenPositions(t *testing.T) {
	scanner := NewScanner("def f(x):\n    return x\n")
	tokens := scanner.ScanTokens()
	require.Empty(t, scanner.errors)

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Position)  // def
	assert.Equal(t, Position{Line: 1, Column: 5, Offset: 4}, tokens[1].Position)  // f
	assert.Equal(t, Position{Line: 2, Column: 5, Offset: 14}, tokens[8].Position) // return
}
