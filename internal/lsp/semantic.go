package lsp

import (
	"py2smt/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions.
// TokenType is an index into SemanticTokenTypes.
// TokenModifiers is a bitmask based on SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

var SemanticTokenTypes = []string{
	"function",
	"variable",
	"parameter",
	"keyword",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
}

const (
	tokenFunction = iota
	tokenVariable
	tokenParameter
	tokenKeyword
	tokenNumber
	tokenString
	tokenOperator
)

const modifierDeclaration = 1 << 0

// collectSemanticTokens classifies the token stream for highlighting.
// The name after def is a function declaration; identifiers between the
// signature parens are parameters; everything else named is a variable.
func collectSemanticTokens(source string) []SemanticToken {
	var tokens []SemanticToken

	raw := parser.NewScanner(source).ScanTokens()

	afterDef := false
	signatureDepth := 0

	for _, tok := range raw {
		switch tok.Type {
		case parser.NEWLINE, parser.INDENT, parser.DEDENT, parser.EOF:
			continue
		case parser.LEFT_PAREN:
			if afterDef {
				signatureDepth++
			}
			continue
		case parser.RIGHT_PAREN:
			if signatureDepth > 0 {
				signatureDepth--
				if signatureDepth == 0 {
					afterDef = false
				}
			}
			continue
		case parser.COMMA, parser.COLON, parser.SEMICOLON:
			continue
		}

		var entry SemanticToken
		entry.Line = uint32(tok.Position.Line - 1)
		entry.StartChar = uint32(tok.Position.Column - 1)
		entry.Length = uint32(len(tok.Lexeme))

		switch tok.Type {
		case parser.DEF, parser.IF, parser.ELIF, parser.ELSE, parser.RETURN,
			parser.AND, parser.OR, parser.NOT, parser.WHILE, parser.FOR,
			parser.IN, parser.PASS, parser.TRUE, parser.FALSE, parser.NONE:
			entry.TokenType = tokenKeyword
		case parser.NUMBER:
			entry.TokenType = tokenNumber
		case parser.STRING:
			entry.TokenType = tokenString
			// Lexeme excludes the quotes; widen to cover them.
			entry.Length += 2
		case parser.IDENTIFIER:
			switch {
			case afterDef && signatureDepth == 0:
				entry.TokenType = tokenFunction
				entry.TokenModifiers = modifierDeclaration
			case signatureDepth > 0:
				entry.TokenType = tokenParameter
				entry.TokenModifiers = modifierDeclaration
			default:
				entry.TokenType = tokenVariable
			}
		default:
			entry.TokenType = tokenOperator
		}

		if tok.Type == parser.DEF {
			afterDef = true
			signatureDepth = 0
		}

		tokens = append(tokens, entry)
	}

	return tokens
}

// encodeSemanticTokens packs tokens into the LSP wire format using
// delta-line, delta-start compression.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length,
			uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
