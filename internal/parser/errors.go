package parser

import (
	"fmt"
	"strings"

	"github.com/ember-lang/emberc/internal/diag"
	"github.com/ember-lang/emberc/internal/source"
	"github.com/ember-lang/emberc/internal/token"
)

// joinOr renders a list of labels as "a", "a or b", or "a, b, or c".
func joinOr(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " or " + labels[1]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + ", or " + labels[len(labels)-1]
	}
}

// expectedToken builds the ExpectedToken diagnostic every parse-time
// mismatch produces: the offending token's kind, the expected set, and
// the offending span.
func expectedToken(got token.Token, want ...token.Kind) diag.Simple {
	labels := make([]string, len(want))
	for i, k := range want {
		labels[i] = k.Label()
	}
	return diag.Simple{
		Span:     got.Span,
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("expected %s, found %s", joinOr(labels), got.Kind.Label()),
		Cursor:   "found here",
	}
}

// unclosedDelimiter reports a delimiter that was opened but never
// closed, anchored at the offending token with a secondary part pointing
// back at the opening delimiter.
func unclosedDelimiter(got token.Token, want token.Kind, openSpan source.Span) diag.Simple {
	return diag.Simple{
		Span:     got.Span,
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("expected %s, found %s", want.Label(), got.Kind.Label()),
		Cursor:   "expected here",
		Parts: []diag.LogPart{
			{Level: diag.SeverityNote, Msg: "unclosed delimiter opened here", Span: &openSpan},
		},
	}
}

// expectedPrimary reports a token that cannot begin an expression.
func expectedPrimary(got token.Token) diag.Simple {
	return diag.Simple{
		Span:     got.Span,
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("expected an expression, found %s", got.Kind.Label()),
		Cursor:   "expected an expression here",
	}
}

// expectedType reports a token that cannot begin a type annotation.
func expectedType(got token.Token) diag.Simple {
	return diag.Simple{
		Span:     got.Span,
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("expected a type, found %s", got.Kind.Label()),
		Cursor:   "expected a type here",
	}
}

// unknownPrimitiveType reports an identifier in type position that does
// not name one of the enumerated primitive types. Type is a closed
// grammar (PrimitiveIdent | '*' 'const'? Type); there is no
// user-defined-type-reference production for this identifier to fall
// back to.
func unknownPrimitiveType(got token.Token) diag.Simple {
	return diag.Simple{
		Span:     got.Span,
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf("unknown type `%s`", got.Text),
		Cursor:   "not a primitive type",
	}
}

// unparenthesizedCondition is the warning recorded when an 'if' whose
// condition was not parenthesized has a non-block then-branch.
func unparenthesizedCondition(span source.Span) diag.Simple {
	return diag.Simple{
		Span:     span,
		Severity: diag.SeverityWarning,
		Message:  "unparenthesized condition when there is no block",
		Cursor:   "condition starts here",
		Help:     "wrap the condition in parentheses",
	}
}
