// Package codegen is the build pipeline's final stage. It exists to give
// the driver a contract to call and a place for a future code generator to
// land; it does not emit code today.
package codegen

import (
	"errors"

	"github.com/ember-lang/emberc/internal/ast"
)

// ErrUnimplemented is returned by every Generate call. It is not a
// diagnostic: it signals that the build pipeline reached a stage that has
// no implementation yet, not a problem with the input program.
var ErrUnimplemented = errors.New("codegen: not implemented")

// Generator holds whatever state a real backend would need across the
// files of a build (a module table, an output writer, target info). It
// carries none of that yet.
type Generator struct{}

// NewGenerator constructs a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate is called once per compilation unit that survives lexing and
// parsing. It always fails: there is no lowering from ast.SourceFile to
// any target today.
func (g *Generator) Generate(file *ast.SourceFile) error {
	return ErrUnimplemented
}
