package ast

import (
	"fmt"
	"strings"
)

func (m *Module) String() string {
	var b strings.Builder

	for i, fn := range m.Functions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fn.String())
	}

	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (f *FunctionDef) String() string {
	var b strings.Builder

	b.WriteString("def ")
	b.WriteString(f.Name.Value)
	b.WriteString("(")
	for i, param := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString("):\n")
	b.WriteString(printBlock(f.Body))

	return b.String()
}

func (p *Param) String() string {
	return p.Name.Value
}

// printBlock renders a statement sequence indented one level.
func printBlock(stmts []Stmt) string {
	var b strings.Builder

	for _, stmt := range stmts {
		text := strings.TrimRight(stmt.String(), "\n")
		b.WriteString("    " + strings.ReplaceAll(text, "\n", "\n    "))
		b.WriteString("\n")
	}

	return b.String()
}

func (a *AssignStmt) String() string {
	var b strings.Builder

	for _, target := range a.Targets {
		b.WriteString(target.Value)
		b.WriteString(" = ")
	}
	b.WriteString(a.Value.String())

	return b.String()
}

func (a *AugAssignStmt) String() string {
	return fmt.Sprintf("%s %s %s", a.Target.Value, a.Op, a.Value.String())
}

func (i *IfStmt) String() string {
	var b strings.Builder

	for n, branch := range i.Branches {
		keyword := "if"
		if n > 0 {
			keyword = "elif"
		}
		b.WriteString(fmt.Sprintf("%s %s:\n", keyword, branch.Cond.String()))
		b.WriteString(printBlock(branch.Body))
	}

	if i.Else != nil {
		b.WriteString("else:\n")
		b.WriteString(printBlock(i.Else))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("while %s:\n%s", w.Cond.String(), printBlock(w.Body))
}

func (f *ForStmt) String() string {
	return fmt.Sprintf("for %s in %s:\n%s", f.Target.Value, f.Iter.String(), printBlock(f.Body))
}

func (e *ExprStmt) String() string {
	return e.Expr.String()
}

func (p *PassStmt) String() string {
	return "pass"
}

func (b *BadStmt) String() string {
	return fmt.Sprintf("BadStmt: %s", b.Message)
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	if u.Op == "not" {
		return "not " + u.Value.String()
	}
	return u.Op + u.Value.String()
}

func (l *LiteralExpr) String() string {
	if l.Kind == StringLit {
		return fmt.Sprintf("%q", l.Value)
	}
	return l.Value
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (p *ParenExpr) String() string {
	return "(" + p.Value.String() + ")"
}

func (c *CallExpr) String() string {
	var b strings.Builder

	b.WriteString(c.Callee.String())
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")

	return b.String()
}

func (b *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", b.Message)
}
