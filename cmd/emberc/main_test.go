package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-lang/emberc/internal/config"
	"github.com/ember-lang/emberc/internal/diag"
)

func TestReadSourceFallsBackToSourceRoots(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.ember"), []byte("package main"), 0o644))

	cfg = &config.Config{SourceRoots: []string{srcDir}}
	path, text, err := readSource("a.ember")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(srcDir, "a.ember"), path)
	assert.Equal(t, "package main", text)
}

func TestAnyFailureTreatsWarningsAsErrorsWhenConfigured(t *testing.T) {
	ctx := diag.NewContext(nil, diag.ColorNever)
	ctx.Push(diag.Simple{Severity: diag.SeverityWarning, Message: "looks odd"})

	assert.False(t, anyFailure(ctx, false))
	assert.True(t, anyFailure(ctx, true))
}
