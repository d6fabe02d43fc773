package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ember-lang/emberc/internal/ast"
	"github.com/ember-lang/emberc/internal/codegen"
	"github.com/ember-lang/emberc/internal/source"
)

func TestGenerateAlwaysReturnsUnimplemented(t *testing.T) {
	file := ast.NewSourceFile(nil, nil, nil, source.Span{})
	err := codegen.NewGenerator().Generate(file)
	assert.ErrorIs(t, err, codegen.ErrUnimplemented)
}
