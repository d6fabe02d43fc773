// Package diag implements the diagnostic engine: it accumulates structured
// log records from the lexer and parser, resolves their spans to
// line/column locations, and renders source-anchored, multi-part, colored
// reports.
package diag

import "github.com/ember-lang/emberc/internal/source"

// Severity is the level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityNote
)

// String returns the lowercase label used in rendered headers.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// LogPart is one additional source snippet attached to a Log, e.g. "opened
// here" paired with the primary "unclosed delimiter" message.
type LogPart struct {
	Level Severity
	Msg   string
	Span  *source.Span
}

// Log is an abstract diagnostic producer. Implementations are typically
// small value types; the lexer and parser both build theirs as Simple
// values (see lexer/errors.go and parser/errors.go).
type Log interface {
	Location() source.Span
	Level() Severity
	Msg() string
	CursorMsg() string
	HelpMsg() string
	OtherParts() []LogPart
}

// Simple is a ready-made Log implementation covering the common case of a
// single message with an optional cursor note, help text, and secondary
// parts. Lexer and parser errors are constructed as Simple values.
type Simple struct {
	Span     source.Span
	Severity Severity
	Message  string
	Cursor   string
	Help     string
	Parts    []LogPart
}

func (s Simple) Location() source.Span { return s.Span }
func (s Simple) Level() Severity       { return s.Severity }
func (s Simple) Msg() string           { return s.Message }
func (s Simple) CursorMsg() string     { return s.Cursor }
func (s Simple) HelpMsg() string       { return s.Help }
func (s Simple) OtherParts() []LogPart { return s.Parts }
