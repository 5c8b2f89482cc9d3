package parser

import (
	"fmt"
	"unicode"
)

const tabWidth = 8

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startColumn int
	column      int
	indents     []int
	parenDepth  int
	atLineStart bool
	errors      []ScanError
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source:      source,
		line:        1,
		column:      1,
		indents:     []int{0},
		atLineStart: true,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		if s.atLineStart && s.parenDepth == 0 {
			s.scanIndentation()
			continue
		}
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}

	// Close the final logical line and unwind the indentation stack so
	// the parser always sees NEWLINE/DEDENT before EOF.
	if !s.atLineStart {
		s.emit(NEWLINE, "")
	}
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.emit(DEDENT, "")
	}
	s.emit(EOF, "")

	return s.tokens
}

// scanIndentation measures leading whitespace of a logical line and emits
// INDENT/DEDENT tokens against the indentation stack. Blank lines and
// comment-only lines produce no tokens at all.
func (s *Scanner) scanIndentation() {
	s.start = s.current
	s.startColumn = s.column

	indent := 0
	for {
		switch s.peek() {
		case ' ':
			indent++
			s.advance()
			continue
		case '\t':
			indent += tabWidth - indent%tabWidth
			s.advance()
			continue
		case '\r':
			s.advance()
			continue
		}
		break
	}

	if s.isAtEnd() {
		return
	}

	switch s.peek() {
	case '\n':
		s.advance() // blank line
		return
	case '#':
		for !s.isAtEnd() && s.peek() != '\n' {
			s.advance()
		}
		return
	}

	s.atLineStart = false

	if indent > s.indents[len(s.indents)-1] {
		s.indents = append(s.indents, indent)
		s.emit(INDENT, "")
		return
	}

	for indent < s.indents[len(s.indents)-1] {
		s.indents = s.indents[:len(s.indents)-1]
		s.emit(DEDENT, "")
	}
	if indent != s.indents[len(s.indents)-1] {
		s.reportError("inconsistent indentation")
		s.indents = append(s.indents, indent)
	}
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.parenDepth++
		s.addToken(LEFT_PAREN)
	case ')':
		if s.parenDepth > 0 {
			s.parenDepth--
		}
		s.addToken(RIGHT_PAREN)
	case ',':
		s.addToken(COMMA)
	case ':':
		s.addToken(COLON)
	case ';':
		s.addToken(SEMICOLON)

	case '+':
		if s.matchNext('=') {
			s.addToken(PLUS_EQUAL)
		} else {
			s.addToken(PLUS)
		}
	case '-':
		if s.matchNext('=') {
			s.addToken(MINUS_EQUAL)
		} else {
			s.addToken(MINUS)
		}
	case '*':
		s.scanStarOperator()
	case '/':
		s.scanSlashOperator()
	case '%':
		if s.matchNext('=') {
			s.addToken(PERCENT_EQUAL)
		} else {
			s.addToken(PERCENT)
		}
	case '=':
		if s.matchNext('=') {
			s.addToken(EQUAL_EQUAL)
		} else {
			s.addToken(EQUAL)
		}
	case '!':
		if s.matchNext('=') {
			s.addToken(BANG_EQUAL)
		} else {
			s.reportError("unexpected character: '!' (did you mean '!='?)")
		}
	case '<':
		if s.matchNext('=') {
			s.addToken(LESS_EQUAL)
		} else {
			s.addToken(LESS)
		}
	case '>':
		if s.matchNext('=') {
			s.addToken(GREATER_EQUAL)
		} else {
			s.addToken(GREATER)
		}

	// Whitespace (ignored)
	case ' ', '\r', '\t':
	case '\\':
		// Explicit line joining: swallow the escaped newline.
		if !s.matchNext('\n') {
			s.reportError("unexpected character after line continuation")
		}
	case '\n':
		if s.parenDepth == 0 {
			s.emit(NEWLINE, "\n")
			s.atLineStart = true
		}

	case '#':
		for !s.isAtEnd() && s.peek() != '\n' {
			s.advance()
		}

	case '"', '\'':
		s.scanString(c)

	default:
		if isDigit(c) {
			s.scanNumber()
		} else if isAlpha(c) {
			s.scanIdentifier()
		} else {
			s.reportError(fmt.Sprintf("unexpected character: %q", c))
		}
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('*') {
		s.addToken(STAR_STAR)
	} else if s.matchNext('=') {
		s.addToken(STAR_EQUAL)
	} else {
		s.addToken(STAR)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('/') {
		s.addToken(SLASH_SLASH)
	} else if s.matchNext('=') {
		s.addToken(SLASH_EQUAL)
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(lookupIdentifier(s.source[s.start:s.current]))
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	s.addToken(NUMBER)
}

func (s *Scanner) scanString(quote byte) {
	for !s.isAtEnd() && s.peek() != quote && s.peek() != '\n' {
		s.advance()
	}
	if s.isAtEnd() || s.peek() == '\n' {
		s.reportError("unterminated string literal")
		return
	}
	s.advance()
	value := s.source[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, Token{Type: STRING, Lexeme: value, Position: Position{
		Line: s.line, Column: s.startColumn, Offset: s.start},
	})
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: text,
		Position: Position{
			Line:   s.line,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

// emit appends a synthetic token that has no backing lexeme in the
// source (layout tokens and EOF).
func (s *Scanner) emit(tokenType TokenType, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Position: Position{
			Line:   s.line,
			Column: s.column,
			Offset: s.current,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.line, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
