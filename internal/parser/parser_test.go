package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"py2smt/internal/ast"
)

func parseModule(t *testing.T, source string) *ast.Module {
	t.Helper()
	module, parseErrors, scanErrors := ParseSource("test.py", source)
	require.Empty(t, scanErrors, "should have no scan errors")
	require.Empty(t, parseErrors, "should have no parse errors")
	require.NotNil(t, module)
	return module
}

func TestParseFunctionDef(t *testing.T) {
	module := parseModule(t, "def area(pi, radius):\n    return pi * radius * radius\n")

	require.Len(t, module.Functions, 1)
	fn := module.Functions[0]
	assert.Equal(t, "area", fn.Name.Value)

	require.Len(t, fn.Params, 2)
	assert.Equal(t, "pi", fn.Params[0].Name.Value)
	assert.Equal(t, "radius", fn.Params[1].Name.Value)

	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
	require.NotNil(t, ret.Value)
}

func TestParseMultipleFunctions(t *testing.T) {
	module := parseModule(t, "def a(x):\n    return x\n\ndef b(y):\n    return y\n")
	require.Len(t, module.Functions, 2)
	assert.Equal(t, "a", module.Functions[0].Name.Value)
	assert.Equal(t, "b", module.Functions[1].Name.Value)
}

func TestParseNoParameters(t *testing.T) {
	module := parseModule(t, "def answer():\n    return 42\n")
	assert.Empty(t, module.Functions[0].Params)
}

func TestParseAssignment(t *testing.T) {
	module := parseModule(t, "def f(x):\n    pi = 3.14\n    return pi\n")

	fn := module.Functions[0]
	require.Len(t, fn.Body, 2)

	assign, ok := fn.Body[0].(*ast.AssignStmt)
	require.True(t, ok)
	require.Len(t, assign.Targets, 1)
	assert.Equal(t, "pi", assign.Targets[0].Value)

	lit, ok := assign.Value.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, ast.NumberLit, lit.Kind)
	assert.Equal(t, "3.14", lit.Value)
}

func TestParseChainedAssignment(t *testing.T) {
	module := parseModule(t, "def f(x):\n    a = b = x\n    return a\n")

	assign, ok := module.Functions[0].Body[0].(*ast.AssignStmt)
	require.True(t, ok)
	require.Len(t, assign.Targets, 2)
	assert.Equal(t, "a", assign.Targets[0].Value)
	assert.Equal(t, "b", assign.Targets[1].Value)
}

func TestParseAugmentedAssignment(t *testing.T) {
	module := parseModule(t, "def f(x):\n    x += 1\n    return x\n")

	aug, ok := module.Functions[0].Body[0].(*ast.AugAssignStmt)
	require.True(t, ok)
	assert.Equal(t, "x", aug.Target.Value)
	assert.Equal(t, "+=", aug.Op)
}

func TestParseIfElifElse(t *testing.T) {
	source := `def f(x):
    if x < 0:
        return 0
    elif x < 10:
        return 1
    else:
        return 2
`
	module := parseModule(t, source)

	cond, ok := module.Functions[0].Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, cond.Branches, 2)
	require.NotNil(t, cond.Else)
	require.Len(t, cond.Else, 1)
}

func TestParseIfWithoutElse(t *testing.T) {
	source := `def f(x):
    if x > 0:
        return 1
    return 0
`
	module := parseModule(t, source)

	fn := module.Functions[0]
	require.Len(t, fn.Body, 2)

	cond, ok := fn.Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, cond.Branches, 1)
	assert.Nil(t, cond.Else, "absent else stays nil to distinguish it from an empty one")
}

func TestParseInlineSuites(t *testing.T) {
	source := `def f(x):
    if x > 0: return 1
    else: return 0
`
	module := parseModule(t, source)

	cond, ok := module.Functions[0].Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, cond.Branches, 1)
	require.Len(t, cond.Branches[0].Body, 1)
	require.Len(t, cond.Else, 1)
}

func TestParseInlineSuiteOnSingleLine(t *testing.T) {
	module := parseModule(t, "def f(x):\n    if x > 0: return 1; else: return 0\n")

	cond, ok := module.Functions[0].Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, cond.Branches, 1)
	require.Len(t, cond.Else, 1)
}

func TestParseSemicolonSeparatedStatements(t *testing.T) {
	module := parseModule(t, "def f(x):\n    a = 1; b = 2; return a\n")

	fn := module.Functions[0]
	require.Len(t, fn.Body, 3)
	_, ok := fn.Body[2].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestParseBareReturn(t *testing.T) {
	module := parseModule(t, "def f(x):\n    return\n")

	ret, ok := module.Functions[0].Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestParseWhileAndFor(t *testing.T) {
	source := `def f(x):
    while x > 0:
        x = x - 1
    for i in x:
        pass
    return x
`
	module := parseModule(t, source)

	fn := module.Functions[0]
	require.Len(t, fn.Body, 3)

	_, ok := fn.Body[0].(*ast.WhileStmt)
	assert.True(t, ok)

	loop, ok := fn.Body[1].(*ast.ForStmt)
	require.True(t, ok)
	assert.Equal(t, "i", loop.Target.Value)
}

func TestParseCallExpression(t *testing.T) {
	module := parseModule(t, "def f(x):\n    return abs(x, 1)\n")

	ret := module.Functions[0].Body[0].(*ast.ReturnStmt)
	call, ok := ret.Value.(*ast.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)

	callee, ok := call.Callee.(*ast.IdentExpr)
	require.True(t, ok)
	assert.Equal(t, "abs", callee.Name)
}

func TestPrecedenceMultiplicationBindsTighter(t *testing.T) {
	module := parseModule(t, "def f(x):\n    return 1 + 2 * 3\n")

	ret := module.Functions[0].Body[0].(*ast.ReturnStmt)
	sum, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Op)

	product, ok := sum.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", product.Op)
}

func TestPrecedenceLeftAssociativity(t *testing.T) {
	module := parseModule(t, "def f(x):\n    return x - 1 - 2\n")

	ret := module.Functions[0].Body[0].(*ast.ReturnStmt)
	outer, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "-", outer.Op)

	inner, ok := outer.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "-", inner.Op)
}

func TestPrecedenceBooleanConnectives(t *testing.T) {
	module := parseModule(t, "def f(a, b, c):\n    return a or b and c\n")

	ret := module.Functions[0].Body[0].(*ast.ReturnStmt)
	or, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "or", or.Op)

	and, ok := or.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "and", and.Op)
}

func TestNotBindsLooserThanComparison(t *testing.T) {
	module := parseModule(t, "def f(a, b):\n    return not a == b\n")

	ret := module.Functions[0].Body[0].(*ast.ReturnStmt)
	not, ok := ret.Value.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "not", not.Op)

	cmp, ok := not.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "==", cmp.Op)
}

func TestUnaryMinus(t *testing.T) {
	module := parseModule(t, "def f(x):\n    return -10\n")

	ret := module.Functions[0].Body[0].(*ast.ReturnStmt)
	neg, ok := ret.Value.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "-", neg.Op)
}

func TestParenGrouping(t *testing.T) {
	module := parseModule(t, "def f(x, y):\n    return (x + y) * 2\n")

	ret := module.Functions[0].Body[0].(*ast.ReturnStmt)
	product := ret.Value.(*ast.BinaryExpr)

	paren, ok := product.Left.(*ast.ParenExpr)
	require.True(t, ok)

	sum, ok := paren.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Op)
}

func TestTopLevelStatementIsRejected(t *testing.T) {
	_, parseErrors, scanErrors := ParseSource("test.py", "x = 1\n")
	require.Empty(t, scanErrors)
	require.NotEmpty(t, parseErrors)
	assert.Contains(t, parseErrors[0].Message, "function definition")
}

func TestRecoveryAfterBadTopLevel(t *testing.T) {
	source := "x = 1\ndef f(x):\n    return x\n"
	module, parseErrors, _ := ParseSource("test.py", source)

	require.NotEmpty(t, parseErrors)
	require.Len(t, module.Functions, 1, "parser should recover and parse the function")
	assert.Equal(t, "f", module.Functions[0].Name.Value)
}

func TestTupleExpressionIsRejected(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.py", "def f(x):\n    return (1, 2)\n")
	require.NotEmpty(t, parseErrors)
	assert.Contains(t, parseErrors[0].Message, "tuple")
}

func TestMissingColonReportsError(t *testing.T) {
	_, parseErrors, _ := ParseSource("test.py", "def f(x)\n    return x\n")
	require.NotEmpty(t, parseErrors)
}

func TestPositionsAreTracked(t *testing.T) {
	module := parseModule(t, "def f(x):\n    return x\n")

	fn := module.Functions[0]
	assert.Equal(t, 1, fn.Pos.Line)
	assert.Equal(t, 1, fn.Pos.Column)
	assert.Equal(t, "test.py", fn.Pos.Filename)

	ret := fn.Body[0]
	assert.Equal(t, 2, ret.NodePos().Line)
	assert.Equal(t, 5, ret.NodePos().Column)
}
