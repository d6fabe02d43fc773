package diag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-lang/emberc/internal/diag"
	"github.com/ember-lang/emberc/internal/source"
)

func TestContextPushAndFailed(t *testing.T) {
	buf := source.New("1 + 1\n", "main.em")
	ctx := diag.NewContext(buf, diag.ColorNever)

	require.False(t, ctx.Failed())

	ctx.Push(diag.Simple{
		Span:     source.Span{Start: 2, End: 3},
		Severity: diag.SeverityWarning,
		Message:  "example warning",
	})
	assert.False(t, ctx.Failed())

	ctx.Push(diag.Simple{
		Span:     source.Span{Start: 0, End: 1},
		Severity: diag.SeverityError,
		Message:  "example error",
		Cursor:   "here",
	})
	assert.True(t, ctx.Failed())
	assert.Equal(t, 2, ctx.Len())
}

func TestContextBuildResolvesLineAndColumn(t *testing.T) {
	buf := source.New("abc\ndef\n", "main.em")
	ctx := diag.NewContext(buf, diag.ColorNever)

	built := ctx.Build(diag.Simple{
		Span:     source.Span{Start: 4, End: 7},
		Severity: diag.SeverityError,
		Message:  "bad token",
	})

	require.Len(t, built.Parts, 1)
	snippet := built.Parts[0].Snippet
	require.NotNil(t, snippet)
	assert.Equal(t, 2, snippet.LineStart.Line)
	assert.Equal(t, "def", snippet.Line)
	assert.Equal(t, 1, snippet.Cursor.StartColumn)
	assert.Equal(t, 4, snippet.Cursor.EndColumn)
}

func TestContextBuildPanicsOnMultilineSpan(t *testing.T) {
	buf := source.New("abc\ndef\n", "main.em")
	ctx := diag.NewContext(buf, diag.ColorNever)

	assert.Panics(t, func() {
		ctx.Build(diag.Simple{
			Span:     source.Span{Start: 1, End: 6},
			Severity: diag.SeverityError,
			Message:  "spans two lines",
		})
	})
}

func TestFormatWritesHeaderAndSnippet(t *testing.T) {
	buf := source.New("let x = 1\n", "main.em")
	ctx := diag.NewContext(buf, diag.ColorNever)
	ctx.Push(diag.Simple{
		Span:     source.Span{Start: 0, End: 3},
		Severity: diag.SeverityError,
		Message:  "unexpected keyword",
		Cursor:   "found here",
		Help:     "did you mean 'var'?",
	})

	var buffer bytes.Buffer
	require.NoError(t, ctx.Format(&buffer))

	out := buffer.String()
	assert.Contains(t, out, "error: unexpected keyword")
	assert.Contains(t, out, "main.em:1:1")
	assert.Contains(t, out, "let x = 1")
	assert.Contains(t, out, "^^^ found here")
	assert.Contains(t, out, "help: did you mean 'var'?")
}
