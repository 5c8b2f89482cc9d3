package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Layout
	NEWLINE
	INDENT
	DEDENT

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING

	// Keywords
	DEF
	IF
	ELIF
	ELSE
	RETURN
	AND
	OR
	NOT
	TRUE
	FALSE
	NONE
	WHILE
	FOR
	IN
	PASS

	// Operators
	PLUS
	MINUS
	STAR
	STAR_STAR
	SLASH
	SLASH_SLASH
	PERCENT
	EQUAL
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL

	// Augmented assignment operators
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL

	// Separators
	COMMA
	COLON
	SEMICOLON
	LEFT_PAREN
	RIGHT_PAREN
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

type ScanError struct {
	Message  string
	Position Position
	Length   int // how many characters it covers
}

type ParseError struct {
	Message  string
	Position Position
}
