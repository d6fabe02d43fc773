package lexer

import (
	"fmt"

	"github.com/ember-lang/emberc/internal/diag"
	"github.com/ember-lang/emberc/internal/source"
)

func unknownToken(span source.Span, ch rune) diag.Simple {
	return diag.Simple{
		Span:     span,
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("unknown start of token %q", ch),
		Cursor:   "unexpected here",
	}
}

func integerOverflow(span source.Span, text string) diag.Simple {
	return diag.Simple{
		Span:     span,
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("integer literal %q overflows a 64-bit unsigned integer", text),
		Cursor:   "out of range",
	}
}

func invalidNumberLiteral(span source.Span, text string) diag.Simple {
	return diag.Simple{
		Span:     span,
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("invalid number literal %q", text),
		Cursor:   "identifiers must start with a letter or underscore",
	}
}

// unknownEscape reports an unrecognized escape sequence. The `\x` form is
// a recognized-but-reserved case of this same error: it carries a help
// note explaining why, instead of a separately-named diagnostic.
func unknownEscape(span source.Span) diag.Simple {
	return diag.Simple{
		Span:     span,
		Severity: diag.SeverityError,
		Message:  "unknown escape sequence",
		Cursor:   "not a recognized escape",
	}
}

func hexEscapeUnsupported(span source.Span) diag.Simple {
	log := unknownEscape(span)
	log.Message = "`\\x` escapes are not yet supported"
	log.Cursor = "reserved escape form"
	log.Help = "hex escapes are not yet supported"
	return log
}

func unterminatedQuoteLit(span source.Span, char bool) diag.Simple {
	kind := "string"
	if char {
		kind = "character"
	}
	return diag.Simple{
		Span:     span,
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("unterminated %s literal", kind),
		Cursor:   "opened here",
	}
}

func emptyCharLiteral(span source.Span) diag.Simple {
	return diag.Simple{
		Span:     span,
		Severity: diag.SeverityError,
		Message:  "empty char literal",
		Cursor:   "must contain exactly one character",
	}
}

func charLiteralMustBeEscaped(span source.Span) diag.Simple {
	return diag.Simple{
		Span:     span,
		Severity: diag.SeverityError,
		Message:  "char literal must be escaped",
		Cursor:   "write `\\'` for a literal apostrophe",
	}
}

func charLiteralNotClosed(span source.Span) diag.Simple {
	return diag.Simple{
		Span:     span,
		Severity: diag.SeverityError,
		Message:  "char literal must contain exactly one character",
		Cursor:   "expected closing `'` here",
	}
}
