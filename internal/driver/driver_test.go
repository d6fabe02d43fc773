package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-lang/emberc/internal/ast"
	"github.com/ember-lang/emberc/internal/diag"
	"github.com/ember-lang/emberc/internal/driver"
)

func TestRunParsesCleanSource(t *testing.T) {
	d := driver.New(nil, diag.ColorNever)
	result, err := d.Run("t.em", "package main\nfn f() i32 { return 0; }\n")
	require.NoError(t, err)
	require.NotNil(t, result.File)
	require.Len(t, result.File.Decls, 1)
	_, ok := result.File.Decls[0].(*ast.FnDecl)
	assert.True(t, ok)
	assert.False(t, result.Ctx.Failed())
}

func TestRunReturnsErrorOnBadSource(t *testing.T) {
	d := driver.New(nil, diag.ColorNever)
	result, err := d.Run("t.em", "package main\nconst x = (1 + 2;\n")
	assert.Error(t, err)
	assert.True(t, result.Ctx.Failed())
}

func TestLexReportsTokensWithoutParsing(t *testing.T) {
	d := driver.New(nil, diag.ColorNever)
	tokens, ctx := d.Lex("t.em", "package main")
	assert.False(t, ctx.Failed())
	assert.NotEmpty(t, tokens)
}

func TestBuildIDIsStableAcrossRuns(t *testing.T) {
	d := driver.New(nil, diag.ColorNever)
	id := d.BuildID()
	d.Lex("t.em", "package main")
	assert.Equal(t, id, d.BuildID())
}
