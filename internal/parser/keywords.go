package parser

var KEYWORDS = map[string]TokenType{
	"def":    DEF,
	"if":     IF,
	"elif":   ELIF,
	"else":   ELSE,
	"return": RETURN,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
	"True":   TRUE,
	"False":  FALSE,
	"None":   NONE,
	"while":  WHILE,
	"for":    FOR,
	"in":     IN,
	"pass":   PASS,
}
