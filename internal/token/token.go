// Package token defines the token kind, operator, and keyword tables that
// are the single source of truth consulted by both the lexer and the
// parser. No other package duplicates these tables.
package token

import "github.com/ember-lang/emberc/internal/source"

// Kind identifies the category of a token.
type Kind int

const (
	Illegal Kind = iota
	EOF

	// Literals.
	Int
	Str
	Char

	// Identifier.
	Ident

	// Operator carries an Operator identity; see Token.Op.
	Operator

	// Delimiters.
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace

	// Punctuation.
	Colon
	Semicolon
	Comma
	At

	// Keywords, one variant per entry in the Keywords table below.
	KwFn
	KwExtern
	KwVar
	KwConst
	KwStruct
	KwEnum
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwFor
	KwPub
	KwAsync
	KwAwait
	KwMatch
	KwImpl
	KwTrue
	KwFalse
	KwUndefined
	KwBreak
	KwContinue
	KwPackage
	KwImport
	KwAs
)

var kindNames = map[Kind]string{
	Illegal:     "illegal token",
	EOF:         "end of file",
	Int:         "integer literal",
	Str:         "string literal",
	Char:        "character literal",
	Ident:       "identifier",
	Operator:    "operator",
	LParen:      "`(`",
	RParen:      "`)`",
	LBracket:    "`[`",
	RBracket:    "`]`",
	LBrace:      "`{`",
	RBrace:      "`}`",
	Colon:       "`:`",
	Semicolon:   "`;`",
	Comma:       "`,`",
	At:          "`@`",
	KwFn:        "keyword `fn`",
	KwExtern:    "keyword `extern`",
	KwVar:       "keyword `var`",
	KwConst:     "keyword `const`",
	KwStruct:    "keyword `struct`",
	KwEnum:      "keyword `enum`",
	KwReturn:    "keyword `return`",
	KwIf:        "keyword `if`",
	KwElse:      "keyword `else`",
	KwWhile:     "keyword `while`",
	KwFor:       "keyword `for`",
	KwPub:       "keyword `pub`",
	KwAsync:     "keyword `async`",
	KwAwait:     "keyword `await`",
	KwMatch:     "keyword `match`",
	KwImpl:      "keyword `impl`",
	KwTrue:      "keyword `true`",
	KwFalse:     "keyword `false`",
	KwUndefined: "keyword `undefined`",
	KwBreak:     "keyword `break`",
	KwContinue:  "keyword `continue`",
	KwPackage:   "keyword `package`",
	KwImport:    "keyword `import`",
	KwAs:        "keyword `as`",
}

// Label returns a human-oriented description of the token kind, suitable
// for use in "expected X, found Y" diagnostics.
func (k Kind) Label() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown token"
}

// Keywords maps reserved identifiers to their keyword kind. Matching is
// exact and case-sensitive.
var Keywords = map[string]Kind{
	"fn":        KwFn,
	"extern":    KwExtern,
	"var":       KwVar,
	"const":     KwConst,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"return":    KwReturn,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"for":       KwFor,
	"pub":       KwPub,
	"async":     KwAsync,
	"await":     KwAwait,
	"match":     KwMatch,
	"impl":      KwImpl,
	"true":      KwTrue,
	"false":     KwFalse,
	"undefined": KwUndefined,
	"break":     KwBreak,
	"continue":  KwContinue,
	"package":   KwPackage,
	"import":    KwImport,
	"as":        KwAs,
}

// LookupIdent classifies a word as a keyword kind, or Ident if it is not
// reserved.
func LookupIdent(word string) Kind {
	if kw, ok := Keywords[word]; ok {
		return kw
	}
	return Ident
}

// Token is a (kind, span) pair. Literal payloads carry their decoded
// value; identifiers carry their text; operators carry their Operator
// identity.
type Token struct {
	Kind Kind
	Span source.Span
	Text string   // identifier text, or decoded string literal payload
	Int  uint64   // populated when Kind == Int; holds the scalar value when Kind == Char
	Op   Operator // populated when Kind == Operator
}

// IsKeyword reports whether the token's kind is one of the reserved
// keyword kinds.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwFn && t.Kind <= KwAs
}
