// Package lexer converts source text into a token stream, reporting
// lexical errors through the diagnostic engine rather than failing
// outright: a run with escape or overflow errors still yields tokens for
// everything that could be recovered.
package lexer

import (
	"strconv"

	"github.com/ember-lang/emberc/internal/diag"
	"github.com/ember-lang/emberc/internal/source"
	"github.com/ember-lang/emberc/internal/token"
)

// Lexer holds single-pass state over a source buffer. index is a byte
// offset into buf.Text() and is monotonically non-decreasing.
type Lexer struct {
	buf   *source.Buffer
	index int
	ctx   *diag.Context
}

// New creates a Lexer over buf, routing diagnostics into ctx. Callers that
// want the lexer's and parser's diagnostics in one stream construct one
// Context from the shared source buffer and pass it to both; the lexer's
// logs then precede the parser's.
func New(buf *source.Buffer, ctx *diag.Context) *Lexer {
	return &Lexer{buf: buf, ctx: ctx}
}

// Lex runs the full lexer to completion and returns every emitted token,
// terminated by EOF, along with the diagnostic context that accumulated
// along the way.
func (l *Lexer) Lex() ([]token.Token, *diag.Context) {
	var tokens []token.Token
	for {
		tok, emit := l.scanOne()
		if !emit {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, l.ctx
		}
	}
}

// Lex runs the lexer over text in one call, returning its tokens, the
// diagnostic context, and an aggregated Go error (nil unless any
// error-level log was recorded).
func Lex(text, path string, color diag.ColorChoice) ([]token.Token, *diag.Context, error) {
	buf := source.New(text, path)
	l := New(buf, diag.NewContext(buf, color))
	tokens, ctx := l.Lex()
	return tokens, ctx, ctx.Err()
}

func (l *Lexer) peek() (rune, int) {
	return l.buf.RuneAt(l.index)
}

func (l *Lexer) peekAhead(byteOffset int) (rune, int) {
	return l.buf.RuneAt(l.index + byteOffset)
}

func (l *Lexer) advance() (rune, int) {
	r, size := l.peek()
	if size == 0 {
		return 0, 0
	}
	l.index += size
	return r, size
}

func (l *Lexer) span(start int) source.Span {
	return source.Span{Start: start, End: l.index}
}

var oneCharKinds = map[rune]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	';': token.Semicolon,
	':': token.Colon,
	',': token.Comma,
	'@': token.At,
}

// scanOne performs one iteration of the per-character dispatch table.
// emit is false when the iteration consumed trivia (whitespace, a
// comment) or an unrecognized byte and produced no token; the caller
// loops again in that case.
func (l *Lexer) scanOne() (tok token.Token, emit bool) {
	start := l.index
	ch, size := l.peek()

	if size == 0 {
		end := l.buf.Len()
		eofStart := end - 1
		if eofStart < 0 {
			eofStart = 0
		}
		return token.Token{Kind: token.EOF, Span: source.Span{Start: eofStart, End: end}}, true
	}

	switch {
	case ch == '.':
		// Dot is always a one-char token in this grammar: the main dispatch
		// table takes it before the two-char operator window is ever
		// consulted, so `.*` (listed in the operator table for historical
		// reasons) is unreachable from here.
		l.advance()
		return token.Token{Kind: token.Operator, Op: token.OpDot, Span: l.span(start)}, true

	case isOneChar(ch):
		l.advance()
		return token.Token{Kind: oneCharKinds[ch], Span: l.span(start)}, true

	case ch == '/':
		l.advance()
		next, _ := l.peek()
		if next == '/' {
			for {
				c, s := l.peek()
				if s == 0 || c == '\n' {
					break
				}
				l.advance()
			}
			return token.Token{}, false
		}
		return token.Token{Kind: token.Operator, Op: token.OpSlash, Span: l.span(start)}, true

	case ch == '"':
		return l.lexString(start), true

	case ch == '\'':
		return l.lexChar(start)

	case isIdentStart(ch) || isDigit(ch):
		return l.lexWord(start)

	case isSpace(ch):
		l.advance()
		return token.Token{}, false

	default:
		second, secondSize := l.peekAhead(size)
		if op, length, ok := token.MatchOperator(ch, second); ok {
			l.advance()
			if length == 2 && secondSize > 0 {
				l.advance()
			}
			return token.Token{Kind: token.Operator, Op: op, Span: l.span(start)}, true
		}
		l.advance()
		l.ctx.Push(unknownToken(l.span(start), ch))
		return token.Token{}, false
	}
}

func isOneChar(ch rune) bool {
	_, ok := oneCharKinds[ch]
	return ok
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// lexWord consumes the maximal run of [A-Za-z0-9_], classified as a
// numeric literal, a keyword, or an identifier. A run starting with a
// digit is always a numeric literal: an identifier must start with a
// letter or underscore, so digits are the one case where the run's
// first character alone decides the classification, not its last.
func (l *Lexer) lexWord(start int) (token.Token, bool) {
	firstCh, _ := l.peek()
	startsWithDigit := isDigit(firstCh)
	allDigits := true

	for {
		ch, size := l.peek()
		if size == 0 || !isIdentCont(ch) {
			break
		}
		if !isDigit(ch) {
			allDigits = false
		}
		l.advance()
	}

	text := l.buf.Slice(start, l.index)
	span := l.span(start)

	if startsWithDigit {
		if !allDigits {
			l.ctx.Push(invalidNumberLiteral(span, text))
			return token.Token{}, false
		}
		value, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			l.ctx.Push(integerOverflow(span, text))
			return token.Token{}, false
		}
		return token.Token{Kind: token.Int, Span: span, Int: value}, true
	}

	if kind := token.LookupIdent(text); kind != token.Ident {
		return token.Token{Kind: kind, Span: span}, true
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}, true
}

// decodeEscape reads one scalar following a backslash already consumed by
// the caller, per the shared string/char escape table. start is the byte
// offset of the backslash itself, so error spans cover the whole escape
// (e.g. both bytes of "\q"), not just the character after it. ok is false
// if the escape was invalid; the caller has already had the error pushed
// and should append nothing to the decoded literal.
func (l *Lexer) decodeEscape(start int) (decoded rune, ok bool) {
	e, size := l.peek()
	if size == 0 {
		return 0, false
	}
	l.advance()

	switch e {
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '0':
		return 0, true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '\\':
		return '\\', true
	case 'x':
		for i := 0; i < 2; i++ {
			c, s := l.peek()
			if s == 0 || !isHexDigit(c) {
				break
			}
			l.advance()
		}
		l.ctx.Push(hexEscapeUnsupported(l.span(start)))
		return 0, false
	default:
		l.ctx.Push(unknownEscape(l.span(start)))
		return 0, false
	}
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// lexString scans a double-quoted string literal to its closing quote.
func (l *Lexer) lexString(start int) token.Token {
	l.advance() // opening '"'

	var decoded []rune
	for {
		ch, size := l.peek()
		if size == 0 {
			l.ctx.Push(unterminatedQuoteLit(l.span(start), false))
			break
		}
		if ch == '"' {
			l.advance()
			break
		}
		if ch == '\\' {
			escStart := l.index
			l.advance()
			if r, ok := l.decodeEscape(escStart); ok {
				decoded = append(decoded, r)
			}
			continue
		}
		l.advance()
		decoded = append(decoded, ch)
	}

	return token.Token{Kind: token.Str, Span: l.span(start), Text: string(decoded)}
}

// lexChar scans a single-quoted character literal.
func (l *Lexer) lexChar(start int) (token.Token, bool) {
	l.advance() // opening '\''

	ch, size := l.peek()
	if size == 0 {
		l.ctx.Push(unterminatedQuoteLit(l.span(start), true))
		return token.Token{}, false
	}

	if ch == '\\' {
		escStart := l.index
		l.advance()
		r, ok := l.decodeEscape(escStart)
		if !l.expectClosingQuote() {
			l.ctx.Push(unterminatedQuoteLit(l.span(start), true))
			return token.Token{}, false
		}
		if !ok {
			return token.Token{}, false
		}
		return token.Token{Kind: token.Char, Span: l.span(start), Int: uint64(r)}, true
	}

	if ch == '\'' {
		l.advance()
		if next, nsize := l.peek(); nsize > 0 && next == '\'' {
			l.advance()
			l.ctx.Push(charLiteralMustBeEscaped(l.span(start)))
		} else {
			l.ctx.Push(emptyCharLiteral(l.span(start)))
		}
		return token.Token{}, false
	}

	l.advance()
	if !l.expectClosingQuote() {
		l.ctx.Push(charLiteralNotClosed(l.span(start)))
		return token.Token{}, false
	}
	return token.Token{Kind: token.Char, Span: l.span(start), Int: uint64(ch)}, true
}

func (l *Lexer) expectClosingQuote() bool {
	ch, size := l.peek()
	if size == 0 || ch != '\'' {
		return false
	}
	l.advance()
	return true
}
