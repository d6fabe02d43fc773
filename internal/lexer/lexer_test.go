package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-lang/emberc/internal/diag"
	"github.com/ember-lang/emberc/internal/lexer"
	"github.com/ember-lang/emberc/internal/token"
)

func lex(t *testing.T, text string) ([]token.Token, *diag.Context) {
	t.Helper()
	toks, ctx, _ := lexer.Lex(text, "t.em", diag.ColorNever)
	return toks, ctx
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestEmptySourceYieldsOnlyEOF(t *testing.T) {
	toks, ctx := lex(t, "")
	require.False(t, ctx.Failed())
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
	assert.Equal(t, 0, toks[0].Span.Start)
	assert.Equal(t, 0, toks[0].Span.End)
}

func TestEOFSpanIsLastByte(t *testing.T) {
	toks, _ := lex(t, "ab")
	eof := toks[len(toks)-1]
	assert.Equal(t, token.EOF, eof.Kind)
	assert.Equal(t, 1, eof.Span.Start)
	assert.Equal(t, 2, eof.Span.End)
}

func TestDelimitersAndPunctuation(t *testing.T) {
	toks, ctx := lex(t, "()[]{};:,@")
	require.False(t, ctx.Failed())
	assert.Equal(t, []token.Kind{
		token.LParen, token.RParen, token.LBracket, token.RBracket,
		token.LBrace, token.RBrace, token.Semicolon, token.Colon,
		token.Comma, token.At, token.EOF,
	}, kinds(toks))
}

func TestDotIsAlwaysOneChar(t *testing.T) {
	toks, ctx := lex(t, "a.*b")
	require.False(t, ctx.Failed())
	require.Len(t, toks, 5)
	assert.Equal(t, token.Operator, toks[1].Kind)
	assert.Equal(t, token.OpDot, toks[1].Op)
	assert.Equal(t, token.Operator, toks[2].Kind)
	assert.Equal(t, token.OpStar, toks[2].Op)
}

func TestLineCommentConsumesToEndOfLine(t *testing.T) {
	toks, ctx := lex(t, "1 // trailing words\n2")
	require.False(t, ctx.Failed())
	require.Len(t, toks, 3)
	assert.Equal(t, token.Int, toks[0].Kind)
	assert.Equal(t, uint64(1), toks[0].Int)
	assert.Equal(t, token.Int, toks[1].Kind)
	assert.Equal(t, uint64(2), toks[1].Int)
}

func TestSlashWithoutSecondSlashIsDivOperator(t *testing.T) {
	toks, ctx := lex(t, "a / b")
	require.False(t, ctx.Failed())
	require.Len(t, toks, 4)
	assert.Equal(t, token.Operator, toks[1].Kind)
	assert.Equal(t, token.OpSlash, toks[1].Op)
}

func TestTwoCharOperatorsPreferredOverOneChar(t *testing.T) {
	toks, ctx := lex(t, "a == b != c <= d >= e << f >> g && h || i")
	require.False(t, ctx.Failed())
	ops := []token.Operator{
		token.OpEq, token.OpNotEq, token.OpLe, token.OpGe,
		token.OpShl, token.OpShr, token.OpAnd, token.OpOr,
	}
	var gotOps []token.Operator
	for _, tok := range toks {
		if tok.Kind == token.Operator {
			gotOps = append(gotOps, tok.Op)
		}
	}
	assert.Equal(t, ops, gotOps)
}

func TestWordRoutineClassifiesKeywordsIdentifiersAndNumbers(t *testing.T) {
	toks, ctx := lex(t, "fn foo 42")
	require.False(t, ctx.Failed())
	require.Len(t, toks, 4)
	assert.Equal(t, token.KwFn, toks[0].Kind)
	assert.Equal(t, token.Ident, toks[1].Kind)
	assert.Equal(t, "foo", toks[1].Text)
	assert.Equal(t, token.Int, toks[2].Kind)
	assert.Equal(t, uint64(42), toks[2].Int)
}

func TestWordStartingWithDigitFollowedByLettersIsInvalidNumber(t *testing.T) {
	toks, ctx := lex(t, "2cats")
	require.True(t, ctx.Failed())
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestIntegerOverflowPushesErrorAndEmitsNoToken(t *testing.T) {
	toks, ctx := lex(t, "99999999999999999999999")
	require.True(t, ctx.Failed())
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestStringLiteralDecodesEscapes(t *testing.T) {
	toks, ctx := lex(t, `"a\nb\tc\\d\"e"`)
	require.False(t, ctx.Failed())
	require.Len(t, toks, 2)
	assert.Equal(t, token.Str, toks[0].Kind)
	assert.Equal(t, "a\nb\tc\\d\"e", toks[0].Text)
}

func TestStringLiteralUnknownEscapeIsDroppedButLexingContinues(t *testing.T) {
	toks, ctx := lex(t, `"a\qb"`)
	require.True(t, ctx.Failed())
	require.Len(t, toks, 2)
	assert.Equal(t, token.Str, toks[0].Kind)
	assert.Equal(t, "ab", toks[0].Text)
}

func TestStringLiteralUnknownEscapeSpanCoversBothCharacters(t *testing.T) {
	const src = `"a\qb"`
	toks, ctx := lex(t, src)
	require.True(t, ctx.Failed())
	require.Len(t, toks, 2)

	require.Len(t, ctx.Logs(), 1)
	snippet := ctx.Logs()[0].Parts[0].Snippet
	require.NotNil(t, snippet)
	assert.Equal(t, 2, snippet.Cursor.EndColumn-snippet.Cursor.StartColumn,
		"span should cover both bytes of the escape, the backslash and the character after it")
	assert.Equal(t, `\q`, src[snippet.Cursor.StartColumn-1:snippet.Cursor.EndColumn-1])
}

func TestStringLiteralHexEscapeIsUnsupported(t *testing.T) {
	toks, ctx := lex(t, `"a\x41b"`)
	require.True(t, ctx.Failed())
	require.Len(t, toks, 2)
	assert.Equal(t, "ab", toks[0].Text)
}

func TestUnterminatedStringLiteral(t *testing.T) {
	toks, ctx := lex(t, `"abc`)
	require.True(t, ctx.Failed())
	require.Len(t, toks, 2)
	assert.Equal(t, token.Str, toks[0].Kind)
	assert.Equal(t, "abc", toks[0].Text)
}

func TestCharLiteralSimple(t *testing.T) {
	toks, ctx := lex(t, `'a'`)
	require.False(t, ctx.Failed())
	require.Len(t, toks, 2)
	assert.Equal(t, token.Char, toks[0].Kind)
	assert.Equal(t, uint64('a'), toks[0].Int)
}

func TestCharLiteralEscapedApostrophe(t *testing.T) {
	toks, ctx := lex(t, `'\''`)
	require.False(t, ctx.Failed())
	require.Len(t, toks, 2)
	assert.Equal(t, token.Char, toks[0].Kind)
	assert.Equal(t, uint64('\''), toks[0].Int)
}

func TestCharLiteralEmpty(t *testing.T) {
	toks, ctx := lex(t, `''`)
	require.True(t, ctx.Failed())
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestCharLiteralUnescapedApostropheMustBeEscaped(t *testing.T) {
	toks, ctx := lex(t, `'''`)
	require.True(t, ctx.Failed())
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestCharLiteralUnterminated(t *testing.T) {
	toks, ctx := lex(t, `'a`)
	require.True(t, ctx.Failed())
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestUnknownStartOfTokenIsSkippedWithError(t *testing.T) {
	toks, ctx := lex(t, "a # b")
	require.True(t, ctx.Failed())
	require.Len(t, toks, 3)
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, token.Ident, toks[1].Kind)
}

func TestSpanIsHalfOpenAndMatchesSourceText(t *testing.T) {
	const src = "foo + 12"
	toks, ctx := lex(t, src)
	require.False(t, ctx.Failed())
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		assert.NotEmpty(t, src[tok.Span.Start:tok.Span.End])
	}
	assert.Equal(t, "foo", src[toks[0].Span.Start:toks[0].Span.End])
	assert.Equal(t, "12", src[toks[2].Span.Start:toks[2].Span.End])
}
