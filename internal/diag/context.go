package diag

import "github.com/ember-lang/emberc/internal/source"

// ColorChoice controls whether rendered diagnostics carry ANSI color.
type ColorChoice int

const (
	ColorAuto ColorChoice = iota
	ColorAlways
	ColorNever
)

// LogCursor is the underline range beneath a source snippet, plus an
// optional note printed after the carets.
type LogCursor struct {
	StartColumn int
	EndColumn   int
	Note        string
}

// CodeSnippet is a resolved, renderable source excerpt: the text of the
// line containing a span, where that line starts, the originating path,
// and the cursor to underline within it.
type CodeSnippet struct {
	Path      string
	Line      string
	LineStart source.Location
	Cursor    LogCursor
}

// BuiltLogPart is one resolved part of a BuiltLog: a message at a given
// severity, optionally anchored to a code snippet.
type BuiltLogPart struct {
	Level   Severity
	Msg     string
	Help    string
	Snippet *CodeSnippet
}

// BuiltLog is the fully resolved form of a Log, ready to render.
type BuiltLog struct {
	Parts []BuiltLogPart
}

// Failed reports whether any part of the log is an error.
func (b BuiltLog) Failed() bool {
	for _, p := range b.Parts {
		if p.Level == SeverityError {
			return true
		}
	}
	return false
}

// Context accumulates diagnostics produced while processing a single
// source buffer, resolves their spans, and renders them.
type Context struct {
	buf   *source.Buffer
	color ColorChoice
	logs  []BuiltLog
}

// NewContext creates a diagnostic context anchored to the given source
// buffer. buf may be nil if diagnostics carry no snippets (e.g. driver
// errors that never touch source text).
func NewContext(buf *source.Buffer, color ColorChoice) *Context {
	return &Context{buf: buf, color: color}
}

// buildSnippet resolves a span into a renderable CodeSnippet. It panics if
// the span's start and end resolve to different lines: producing a
// diagnostic whose primary span crosses lines is a programming error, not
// a user-facing condition.
func (c *Context) buildSnippet(span source.Span) *CodeSnippet {
	if c.buf == nil {
		return nil
	}

	start := c.buf.Location(span.Start)

	endCol := start.Column + 1
	if span.End > span.Start {
		end := c.buf.Location(span.End - 1)
		if start.Line != end.Line {
			panic("diag: span crosses lines")
		}
		endCol = end.Column + 1
	}

	lineText, _ := c.buf.LineText(start.Line)

	return &CodeSnippet{
		Path:      c.buf.Path(),
		Line:      lineText,
		LineStart: source.Location{Line: start.Line, Column: 1},
		Cursor: LogCursor{
			StartColumn: start.Column,
			EndColumn:   endCol,
		},
	}
}

func (c *Context) buildPart(level Severity, msg, help string, span *source.Span) BuiltLogPart {
	part := BuiltLogPart{Level: level, Msg: msg, Help: help}
	if span != nil {
		part.Snippet = c.buildSnippet(*span)
	}
	return part
}

// Build resolves a Log into a BuiltLog without storing it.
func (c *Context) Build(log Log) BuiltLog {
	span := log.Location()
	primary := c.buildPart(log.Level(), log.Msg(), log.HelpMsg(), &span)
	if primary.Snippet != nil {
		primary.Snippet.Cursor.Note = log.CursorMsg()
	}

	built := BuiltLog{Parts: []BuiltLogPart{primary}}
	for _, part := range log.OtherParts() {
		built.Parts = append(built.Parts, c.buildPart(part.Level, part.Msg, "", part.Span))
	}
	return built
}

// Push builds and stores a Log.
func (c *Context) Push(log Log) {
	c.logs = append(c.logs, c.Build(log))
}

// Failed reports whether any stored log has level Error.
func (c *Context) Failed() bool {
	for _, l := range c.logs {
		if l.Failed() {
			return true
		}
	}
	return false
}

// Logs returns the accumulated built logs, in the order they were pushed.
func (c *Context) Logs() []BuiltLog { return c.logs }

// Color returns the configured color choice.
func (c *Context) Color() ColorChoice { return c.color }

// Len reports how many logs have been accumulated.
func (c *Context) Len() int { return len(c.logs) }
