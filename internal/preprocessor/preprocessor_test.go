package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripLineComments(t *testing.T) {
	source := "x = 1  # set x\ny = 2\n"
	result := StripComments(source)

	assert.Equal(t, "x = 1  \ny = 2\n", result)
}

func TestStripDocstring(t *testing.T) {
	source := "def f(x):\n    \"\"\"This is a docstring.\n    It spans lines.\n    \"\"\"\n    return x\n"
	result := StripComments(source)

	assert.NotContains(t, result, "docstring")
	assert.Contains(t, result, "def f(x):")
	assert.Contains(t, result, "return x")
}

func TestStripCommentInsideDocstringLine(t *testing.T) {
	// '#' removal runs first, so a '#' inside a docstring is stripped
	// along with the rest of the block.
	source := "\"\"\"header # note\"\"\"\nx = 1"
	result := StripComments(source)

	assert.NotContains(t, result, "header")
	assert.Contains(t, result, "x = 1")
}

func TestUnterminatedDocstringDropsTail(t *testing.T) {
	// Best effort: the opening delimiter starts a removed segment that
	// runs to the end of input. No error is raised here.
	source := "x = 1\n\"\"\"unterminated\ny = 2"
	result := StripComments(source)

	assert.Equal(t, "x = 1\n", result)
}

func TestFixpointOnCleanSource(t *testing.T) {
	source := "def f(x):\n    y = x + 1\n    return y\n"

	once := StripComments(source)
	twice := StripComments(once)

	assert.Equal(t, source, once, "comment-free source should pass through unchanged")
	assert.Equal(t, once, twice, "StripComments should be a fixpoint")
}

func TestFixpointAfterStripping(t *testing.T) {
	source := "pi = 3.14  # tau / 2\n\"\"\"block\"\"\"\nreturn pi\n"

	once := StripComments(source)
	twice := StripComments(once)

	assert.Equal(t, once, twice)
}

func TestEmptyInput(t *testing.T) {
	assert.Equal(t, "", StripComments(""))
}
