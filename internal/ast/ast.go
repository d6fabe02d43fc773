// Package ast defines the node set built by the parser: one compilation
// unit (SourceFile) made of a package name, imports, and top-level
// declarations, plus the expression and type forms reachable from a
// function body.
package ast

import (
	"github.com/ember-lang/emberc/internal/source"
	"github.com/ember-lang/emberc/internal/token"
)

// Node is any AST node with an associated source span.
type Node interface {
	Span() source.Span
}

// Expr is an expression node. Every expression form also satisfies Stmt,
// since the grammar allows a bare expression wherever a statement is
// expected.
type Expr interface {
	Node
	exprNode()
	stmtNode()
}

// Stmt is a statement: either a VarDecl or any Expr.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a top-level declaration: FnDecl or VarDecl.
type Decl interface {
	Node
	declNode()
}

// TypeExpr is a type annotation.
type TypeExpr interface {
	Node
	typeNode()
}

// Ident is a bare name with its span; it is not itself an expression (see
// VarExpr for a name used at expression position).
type Ident struct {
	Name string
	span source.Span
}

// NewIdent constructs an identifier node.
func NewIdent(name string, span source.Span) *Ident {
	return &Ident{Name: name, span: span}
}

// Span returns the identifier's span.
func (i *Ident) Span() source.Span { return i.span }

// QualIdent is a dot-separated identifier path (Ident ('.' Ident)*).
type QualIdent struct {
	Parts []*Ident
	span  source.Span
}

// NewQualIdent constructs a qualified identifier node.
func NewQualIdent(parts []*Ident, span source.Span) *QualIdent {
	return &QualIdent{Parts: parts, span: span}
}

// Span returns the qualified identifier's span.
func (q *QualIdent) Span() source.Span { return q.span }

// String renders the path dot-joined, e.g. "a.b.c".
func (q *QualIdent) String() string {
	out := ""
	for i, part := range q.Parts {
		if i > 0 {
			out += "."
		}
		out += part.Name
	}
	return out
}

// SourceFile is a parsed compilation unit.
type SourceFile struct {
	Package *PackageDecl
	Imports []*ImportDecl
	Decls   []Decl
	span    source.Span
}

// NewSourceFile constructs a source file node.
func NewSourceFile(pkg *PackageDecl, imports []*ImportDecl, decls []Decl, span source.Span) *SourceFile {
	return &SourceFile{Package: pkg, Imports: imports, Decls: decls, span: span}
}

// Span returns the span covering the entire file.
func (f *SourceFile) Span() source.Span { return f.span }

// PackageDecl is the file's leading 'package' clause.
type PackageDecl struct {
	Name *QualIdent
	span source.Span
}

// NewPackageDecl constructs a package declaration node.
func NewPackageDecl(name *QualIdent, span source.Span) *PackageDecl {
	return &PackageDecl{Name: name, span: span}
}

// Span returns the package declaration's span.
func (d *PackageDecl) Span() source.Span { return d.span }

// ImportDecl is a single 'import' clause, with an optional 'as' alias.
type ImportDecl struct {
	Path  *QualIdent
	Alias *Ident // nil if no 'as' clause
	span  source.Span
}

// NewImportDecl constructs an import declaration node.
func NewImportDecl(path *QualIdent, alias *Ident, span source.Span) *ImportDecl {
	return &ImportDecl{Path: path, Alias: alias, span: span}
}

// Span returns the import declaration's span.
func (d *ImportDecl) Span() source.Span { return d.span }

// PrimitiveType is a type annotation naming one of the closed set of
// primitive type kinds (void, bool, the sized int/float families, char,
// str). There is no user-defined-type-reference production in this
// grammar: every bare identifier in type position must resolve to one of
// these, or the parser rejects it.
type PrimitiveType struct {
	Kind token.PrimitiveKind
	span source.Span
}

// NewPrimitiveType constructs a primitive type node.
func NewPrimitiveType(kind token.PrimitiveKind, span source.Span) *PrimitiveType {
	return &PrimitiveType{Kind: kind, span: span}
}

// Span returns the primitive type's span.
func (t *PrimitiveType) Span() source.Span { return t.span }
func (*PrimitiveType) typeNode()           {}

// Param is one parameter of a function declaration (Ident ':' Type).
type Param struct {
	Name *Ident
	Type TypeExpr
	span source.Span
}

// NewParam constructs a function parameter node.
func NewParam(name *Ident, typ TypeExpr, span source.Span) *Param {
	return &Param{Name: name, Type: typ, span: span}
}

// Span returns the parameter's span.
func (p *Param) Span() source.Span { return p.span }

// FnDecl is a function declaration.
type FnDecl struct {
	Pub        bool
	Name       *Ident
	Params     []*Param
	ReturnType TypeExpr
	Body       *BlockExpr
	span       source.Span
}

// NewFnDecl constructs a function declaration node.
func NewFnDecl(pub bool, name *Ident, params []*Param, returnType TypeExpr, body *BlockExpr, span source.Span) *FnDecl {
	return &FnDecl{Pub: pub, Name: name, Params: params, ReturnType: returnType, Body: body, span: span}
}

// Span returns the function declaration's span.
func (d *FnDecl) Span() source.Span { return d.span }
func (*FnDecl) declNode()           {}

// VarDecl is a 'const' or 'var' declaration. It is valid both as a
// top-level Decl and, unwrapped, as a Stmt inside a block.
type VarDecl struct {
	Pub   bool
	Const bool
	Name  *Ident
	Type  TypeExpr // nil if the annotation was omitted
	Value Expr     // nil if there was no initializer
	span  source.Span
}

// NewVarDecl constructs a var/const declaration node.
func NewVarDecl(pub, isConst bool, name *Ident, typ TypeExpr, value Expr, span source.Span) *VarDecl {
	return &VarDecl{Pub: pub, Const: isConst, Name: name, Type: typ, Value: value, span: span}
}

// Span returns the declaration's span.
func (d *VarDecl) Span() source.Span { return d.span }
func (*VarDecl) declNode()           {}
func (*VarDecl) stmtNode()           {}
