package ast

import (
	"github.com/ember-lang/emberc/internal/source"
	"github.com/ember-lang/emberc/internal/token"
)

// IntLit is an integer literal primary.
type IntLit struct {
	Value uint64
	span  source.Span
}

// NewIntLit constructs an integer literal node.
func NewIntLit(value uint64, span source.Span) *IntLit {
	return &IntLit{Value: value, span: span}
}

func (e *IntLit) Span() source.Span { return e.span }
func (*IntLit) exprNode()           {}
func (*IntLit) stmtNode()           {}

// BoolLit is the 'true' or 'false' primary.
type BoolLit struct {
	Value bool
	span  source.Span
}

// NewBoolLit constructs a boolean literal node.
func NewBoolLit(value bool, span source.Span) *BoolLit {
	return &BoolLit{Value: value, span: span}
}

func (e *BoolLit) Span() source.Span { return e.span }
func (*BoolLit) exprNode()           {}
func (*BoolLit) stmtNode()           {}

// UndefinedLit is the 'undefined' primary.
type UndefinedLit struct {
	span source.Span
}

// NewUndefinedLit constructs an undefined literal node.
func NewUndefinedLit(span source.Span) *UndefinedLit {
	return &UndefinedLit{span: span}
}

func (e *UndefinedLit) Span() source.Span { return e.span }
func (*UndefinedLit) exprNode()           {}
func (*UndefinedLit) stmtNode()           {}

// VarExpr is a bare identifier used at expression position (i.e. not
// immediately followed by a call's argument list).
type VarExpr struct {
	Name string
	span source.Span
}

// NewVarExpr constructs a variable-reference expression node.
func NewVarExpr(name string, span source.Span) *VarExpr {
	return &VarExpr{Name: name, span: span}
}

func (e *VarExpr) Span() source.Span { return e.span }
func (*VarExpr) exprNode()           {}
func (*VarExpr) stmtNode()           {}

// CallExpr is a call: an identifier at primary position followed by a
// parenthesized, comma-separated argument list.
type CallExpr struct {
	Callee *VarExpr
	Args   []Expr
	span   source.Span
}

// NewCallExpr constructs a call expression node.
func NewCallExpr(callee *VarExpr, args []Expr, span source.Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: span}
}

func (e *CallExpr) Span() source.Span { return e.span }
func (*CallExpr) exprNode()           {}
func (*CallExpr) stmtNode()           {}

// ParenExpr is a parenthesized expression. It is kept as its own node
// (rather than collapsed to its Inner expression) and records the span of
// its opening '(' in OpenSpan.
type ParenExpr struct {
	Inner    Expr
	OpenSpan source.Span
	span     source.Span
}

// NewParenExpr constructs a parenthesized expression node.
func NewParenExpr(inner Expr, openSpan, span source.Span) *ParenExpr {
	return &ParenExpr{Inner: inner, OpenSpan: openSpan, span: span}
}

func (e *ParenExpr) Span() source.Span { return e.span }
func (*ParenExpr) exprNode()           {}
func (*ParenExpr) stmtNode()           {}

// UnaryExpr is a prefix unary operator applied to an operand: '*'
// (dereference), '&' (address-of), '-' (negate), or '!' (not).
type UnaryExpr struct {
	Op      token.Operator
	Operand Expr
	span    source.Span
}

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(op token.Operator, operand Expr, span source.Span) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: span}
}

func (e *UnaryExpr) Span() source.Span { return e.span }
func (*UnaryExpr) exprNode()           {}
func (*UnaryExpr) stmtNode()           {}

// BinaryExpr is a binary operator expression, including assignment
// ('=', right-associative).
type BinaryExpr struct {
	Op    token.Operator
	Left  Expr
	Right Expr
	span  source.Span
}

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(op token.Operator, left, right Expr, span source.Span) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: span}
}

func (e *BinaryExpr) Span() source.Span { return e.span }
func (*BinaryExpr) exprNode()           {}
func (*BinaryExpr) stmtNode()           {}

// BlockExpr is a brace-delimited sequence of statements, itself usable as
// an expression (e.g. as a function body or an 'if' branch).
type BlockExpr struct {
	Stmts []Stmt
	span  source.Span
}

// NewBlockExpr constructs a block expression node.
func NewBlockExpr(stmts []Stmt, span source.Span) *BlockExpr {
	return &BlockExpr{Stmts: stmts, span: span}
}

func (e *BlockExpr) Span() source.Span { return e.span }
func (*BlockExpr) exprNode()           {}
func (*BlockExpr) stmtNode()           {}

// IfExpr is a conditional expression: 'if' Cond Then ('else' Else)?.
// Else is nil if there was no 'else' branch. SemicolonRequired is false
// iff Then is a block expression and Else is either absent or itself a
// block; it is computed once at parse time from the immediate Then/Else
// values, not recursively through a nested 'else if' chain.
type IfExpr struct {
	Cond              Expr
	Then              Expr
	Else              Expr
	SemicolonRequired bool
	span              source.Span
}

// NewIfExpr constructs a conditional expression node.
func NewIfExpr(cond, then, els Expr, semicolonRequired bool, span source.Span) *IfExpr {
	return &IfExpr{Cond: cond, Then: then, Else: els, SemicolonRequired: semicolonRequired, span: span}
}

func (e *IfExpr) Span() source.Span { return e.span }
func (*IfExpr) exprNode()           {}
func (*IfExpr) stmtNode()           {}

// ReturnExpr is a 'return' with an optional value.
type ReturnExpr struct {
	Value Expr // nil for a bare 'return'
	span  source.Span
}

// NewReturnExpr constructs a return expression node.
func NewReturnExpr(value Expr, span source.Span) *ReturnExpr {
	return &ReturnExpr{Value: value, span: span}
}

func (e *ReturnExpr) Span() source.Span { return e.span }
func (*ReturnExpr) exprNode()           {}
func (*ReturnExpr) stmtNode()           {}
