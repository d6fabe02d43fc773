package diag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// resolveColor decides whether to emit ANSI escapes for the given choice,
// auto-detecting a terminal via golang.org/x/term when the choice is
// ColorAuto.
func resolveColor(choice ColorChoice, w io.Writer) bool {
	switch choice {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		type fder interface{ Fd() uintptr }
		f, ok := w.(fder)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SeverityError:
		return color.New(color.FgRed, color.Bold)
	case SeverityWarning:
		return color.New(color.FgMagenta, color.Bold)
	default:
		return color.New(color.FgBlack, color.Bold)
	}
}

// gutterWidth computes the margin width required to hold a line number,
// centered with a trailing space, with a minimum width of 3.
func gutterWidth(line int) int {
	digits := len(strconv.Itoa(line))
	width := digits + 1
	if width < 3 {
		width = 3
	}
	return width
}

// Format writes every accumulated log to w, separated by blank lines, with
// ANSI color applied according to the context's color choice.
func (c *Context) Format(w io.Writer) error {
	useColor := resolveColor(c.color, w)
	noColor := color.New()
	noColor.DisableColor()

	for i, log := range c.logs {
		if err := formatLog(w, log, useColor); err != nil {
			return err
		}
		if i < len(c.logs)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatLog(w io.Writer, log BuiltLog, useColor bool) error {
	if len(log.Parts) == 0 {
		return nil
	}

	for i, part := range log.Parts {
		sevColor := severityColor(part.Level)
		sevColor.EnableColor()
		if !useColor {
			sevColor.DisableColor()
		}
		arrow := color.New(color.FgBlue, color.Bold)
		if !useColor {
			arrow.DisableColor()
		}

		header := sevColor.Sprintf("%s", part.Level.String())
		if _, err := fmt.Fprintf(w, "%s: %s\n", header, part.Msg); err != nil {
			return err
		}

		if part.Snippet != nil {
			if err := formatSnippet(w, part, sevColor, arrow); err != nil {
				return err
			}
		}

		if part.Help != "" {
			if _, err := fmt.Fprintf(w, "help: %s\n", part.Help); err != nil {
				return err
			}
		}

		if i < len(log.Parts)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatSnippet(w io.Writer, part BuiltLogPart, sevColor, arrow *color.Color) error {
	snippet := part.Snippet
	gw := gutterWidth(snippet.LineStart.Line)

	if _, err := fmt.Fprintf(w, "%s %s:%d:%d\n",
		arrow.Sprint("-->"), snippet.Path, snippet.LineStart.Line, snippet.Cursor.StartColumn); err != nil {
		return err
	}

	lineNumStr := strconv.Itoa(snippet.LineStart.Line)
	pad := gw - len(lineNumStr) - 1
	if pad < 0 {
		pad = 0
	}
	if _, err := fmt.Fprintf(w, "%s%s | %s\n", lineNumStr, strings.Repeat(" ", pad), snippet.Line); err != nil {
		return err
	}

	width := snippet.Cursor.EndColumn - snippet.Cursor.StartColumn
	if width < 1 {
		width = 1
	}
	carets := sevColor.Sprint(strings.Repeat("^", width))
	// The source line is prefixed by the gutter (gw-1 characters) plus " | ".
	indent := strings.Repeat(" ", gw+2) + strings.Repeat(" ", snippet.Cursor.StartColumn-1)
	if snippet.Cursor.Note != "" {
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, carets, snippet.Cursor.Note); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, carets); err != nil {
			return err
		}
	}
	return nil
}
