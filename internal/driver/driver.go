// Package driver wires the lexer and parser into the single pipeline
// every emberc subcommand runs, and traces its phases through a
// structured logger distinct from the compiler's own diagnostics: a
// logrus entry says how long parsing took, a diag.Context says why the
// source didn't parse.
package driver

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ember-lang/emberc/internal/ast"
	"github.com/ember-lang/emberc/internal/diag"
	"github.com/ember-lang/emberc/internal/lexer"
	"github.com/ember-lang/emberc/internal/parser"
	"github.com/ember-lang/emberc/internal/source"
	"github.com/ember-lang/emberc/internal/token"
)

// Result is everything a subcommand needs from one run of the pipeline:
// the token stream, the parsed file (nil if parsing never ran), and the
// diagnostic context both phases reported into.
type Result struct {
	Tokens []token.Token
	File   *ast.SourceFile
	Ctx    *diag.Context
}

// Driver runs the lex/parse pipeline over one source buffer at a time,
// logging phase timings at debug level under a fixed build id.
type Driver struct {
	log     *logrus.Logger
	color   diag.ColorChoice
	buildID string
}

// New constructs a Driver that logs through log and colors diagnostics
// per color. log may be nil, in which case a logger with output
// discarded is used so callers need not special-case "no logging".
func New(log *logrus.Logger, color diag.ColorChoice) *Driver {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
	}
	return &Driver{log: log, color: color, buildID: uuid.NewString()}
}

// Lex runs only the lexer over text, reporting every token produced and
// the diagnostic context it accumulated along the way.
func (d *Driver) Lex(path, text string) ([]token.Token, *diag.Context) {
	buf := source.New(text, path)
	ctx := diag.NewContext(buf, d.color)

	start := time.Now()
	tokens, _ := lexer.New(buf, ctx).Lex()
	d.log.WithFields(logrus.Fields{
		"build_id": d.buildID,
		"phase":    "lex",
		"path":     path,
		"tokens":   len(tokens),
		"elapsed":  time.Since(start),
	}).Debug("lex complete")

	return tokens, ctx
}

// Run lexes and parses text in one pass, sharing a single diagnostic
// context between the two phases: every lexer log comes first, then every
// parser log, each phase's logs in the order they were pushed.
func (d *Driver) Run(path, text string) (*Result, error) {
	buf := source.New(text, path)
	ctx := diag.NewContext(buf, d.color)

	lexStart := time.Now()
	tokens, _ := lexer.New(buf, ctx).Lex()
	d.log.WithFields(logrus.Fields{
		"build_id": d.buildID,
		"phase":    "lex",
		"path":     path,
		"tokens":   len(tokens),
		"elapsed":  time.Since(lexStart),
	}).Debug("lex complete")

	parseStart := time.Now()
	file := parser.Parse(tokens, ctx)
	d.log.WithFields(logrus.Fields{
		"build_id": d.buildID,
		"phase":    "parse",
		"path":     path,
		"elapsed":  time.Since(parseStart),
	}).Debug("parse complete")

	return &Result{Tokens: tokens, File: file, Ctx: ctx}, ctx.Err()
}

// BuildID returns the identifier fixed when this driver was constructed
// and stamped on every log line it emits, across all of its Lex and Run
// calls, so a --verbose invocation can correlate phases.
func (d *Driver) BuildID() string {
	return d.buildID
}
