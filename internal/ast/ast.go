package ast

// Module represents a parsed source file: a flat sequence of function
// definitions. Each definition is translated independently.
type Module struct {
	Pos       Position
	EndPos    Position
	Functions []*FunctionDef
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like variable or parameter names.
// Example: "radius", "area", "result"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// FunctionDef represents a function definition.
// Example: "def area(radius): ..."
type FunctionDef struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*Param
	Body   []Stmt
}

// Param represents a single function parameter. The source language is
// untyped; types are supplied externally at translation time.
type Param struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// AssignStmt represents an assignment statement. Chained targets
// ("a = b = 1") are parsed but rejected downstream.
// Example: "area = pi * radius * radius"
type AssignStmt struct {
	Pos     Position
	EndPos  Position
	Targets []Ident
	Value   Expr
}

// AugAssignStmt represents an augmented assignment like "x += 1".
// Parsed so the translator can reject it with a precise error.
type AugAssignStmt struct {
	Pos    Position
	EndPos Position
	Target Ident
	Op     string // "+=", "-=", "*=", "/=", "%="
	Value  Expr
}

// Branch is one conditioned arm of an if/elif chain.
type Branch struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   []Stmt
}

// IfStmt represents a whole if/elif*/else? chain as one node.
// Branch order is significant: the first matching condition wins.
// Else is nil when the chain has no terminating else.
type IfStmt struct {
	Pos      Position
	EndPos   Position
	Branches []*Branch
	Else     []Stmt
}

// ReturnStmt represents a return statement.
// Example: "return area"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare "return"
}

// WhileStmt represents a while loop. Outside the translatable subset;
// kept structural so the translator can name it when rejecting.
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   []Stmt
}

// ForStmt represents a for loop over an iterable. Outside the
// translatable subset.
type ForStmt struct {
	Pos    Position
	EndPos Position
	Target Ident
	Iter   Expr
	Body   []Stmt
}

// ExprStmt represents a bare expression used as a statement.
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// PassStmt represents a "pass" statement.
type PassStmt struct {
	Pos    Position
	EndPos Position
}

// BadStmt represents a statement that failed to parse.
type BadStmt struct {
	Pos     Position
	EndPos  Position
	Message string
}

// BinaryExpr represents binary operations, including the boolean
// connectives. Example: "area > 50", "x and y", "pi * radius"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// UnaryExpr represents unary operations.
// Example: "-result", "not done"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// LiteralExpr represents literal values. Numeric literals keep their
// source lexeme so "3.14" survives translation unchanged.
// Example: "100", "3.14", "True", "\"doc\""
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

type LiteralKind int

const (
	NumberLit LiteralKind = iota
	BoolLit
	StringLit
	NoneLit
)

// IdentExpr represents a simple identifier in expression position.
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// ParenExpr represents a parenthesized expression. Grouping is already
// structural in the tree; the node exists for faithful printing.
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// CallExpr represents a function call. Outside the translatable subset.
// Example: "abs(x)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// BadExpr represents an expression that failed to parse.
type BadExpr struct {
	Pos     Position
	EndPos  Position
	Message string
}
