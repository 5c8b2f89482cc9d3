package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"py2smt/internal/translate"
)

func TestConvertsDefinitionAfterBlankLine(t *testing.T) {
	input := strings.Join([]string{
		"def double(x):",
		"    return x + x",
		"",
	}, "\n")

	var out strings.Builder
	Start(strings.NewReader(input), &out, translate.Options{})

	assert.Contains(t, out.String(), "(define-fun double ((x Int)) Int (+ x x))")
}

func TestConvertsDanglingDefinitionAtEOF(t *testing.T) {
	input := "def id(x):\n    return x"

	var out strings.Builder
	Start(strings.NewReader(input), &out, translate.Options{})

	assert.Contains(t, out.String(), "(define-fun id ((x Int)) Int x)")
}

func TestReportsErrorsInline(t *testing.T) {
	input := strings.Join([]string{
		"def bad(x):",
		"    while x > 0:",
		"        x = x - 1",
		"    return x",
		"",
	}, "\n")

	var out strings.Builder
	Start(strings.NewReader(input), &out, translate.Options{})

	assert.Contains(t, out.String(), "while loop")
	assert.NotContains(t, out.String(), "define-fun")
}
