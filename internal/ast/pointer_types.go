package ast

import "github.com/ember-lang/emberc/internal/source"

// PointerType is a raw pointer type: '*' 'const'? Type.
type PointerType struct {
	Const bool
	Elem  TypeExpr
	span  source.Span
}

// NewPointerType constructs a pointer type node.
func NewPointerType(isConst bool, elem TypeExpr, span source.Span) *PointerType {
	return &PointerType{Const: isConst, Elem: elem, span: span}
}

// Span returns the pointer type's span.
func (t *PointerType) Span() source.Span { return t.span }
func (*PointerType) typeNode()           {}
