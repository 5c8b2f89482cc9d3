package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	String() string
}

// Stmt is the closed set of statement nodes. New statement kinds must
// add a marker here, which makes missing translator cases a
// compile-time-visible gap instead of a runtime fallthrough.
type Stmt interface {
	Node
	isStmt()
}

// Expr is the closed set of expression nodes.
type Expr interface {
	Node
	isExpr()
}

func (*AssignStmt) isStmt()    {}
func (*AugAssignStmt) isStmt() {}
func (*IfStmt) isStmt()        {}
func (*ReturnStmt) isStmt()    {}
func (*WhileStmt) isStmt()     {}
func (*ForStmt) isStmt()       {}
func (*ExprStmt) isStmt()      {}
func (*PassStmt) isStmt()      {}
func (*BadStmt) isStmt()       {}

func (*BinaryExpr) isExpr()  {}
func (*UnaryExpr) isExpr()   {}
func (*LiteralExpr) isExpr() {}
func (*IdentExpr) isExpr()   {}
func (*ParenExpr) isExpr()   {}
func (*CallExpr) isExpr()    {}
func (*BadExpr) isExpr()     {}

func (m *Module) NodePos() Position    { return m.Pos }
func (m *Module) NodeEndPos() Position { return m.EndPos }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }

func (f *FunctionDef) NodePos() Position    { return f.Pos }
func (f *FunctionDef) NodeEndPos() Position { return f.EndPos }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }

func (a *AugAssignStmt) NodePos() Position    { return a.Pos }
func (a *AugAssignStmt) NodeEndPos() Position { return a.EndPos }

func (b *Branch) NodePos() Position    { return b.Pos }
func (b *Branch) NodeEndPos() Position { return b.EndPos }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }

func (p *PassStmt) NodePos() Position    { return p.Pos }
func (p *PassStmt) NodeEndPos() Position { return p.EndPos }

func (b *BadStmt) NodePos() Position    { return b.Pos }
func (b *BadStmt) NodeEndPos() Position { return b.EndPos }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }

func (l *LiteralExpr) NodePos() Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() Position { return l.EndPos }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }

func (b *BadExpr) NodePos() Position    { return b.Pos }
func (b *BadExpr) NodeEndPos() Position { return b.EndPos }
