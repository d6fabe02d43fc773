package main

import (
	"fmt"
	"os"

	heredoc "github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var cmdLex = &cobra.Command{
	Use:   "lex <file>",
	Short: "print the token stream for a file",
	Long: heredoc.Doc(`
		Run only the lexer over a source file and print one line per
		token. Lexical errors (unterminated literals, bad escapes,
		integer overflow) are reported but do not stop the scan.
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, text, err := readSource(args[0])
		if err != nil {
			return err
		}
		return runLex(path, text)
	},
}

func runLex(path, text string) error {
	d := newDriver()
	tokens, ctx := d.Lex(path, text)
	for _, tok := range tokens {
		fmt.Printf("%-24s %d:%d\n", tok.Kind.Label(), tok.Span.Start, tok.Span.End)
	}
	if err := ctx.Format(os.Stderr); err != nil {
		return err
	}
	if anyFailure(ctx, cfg.WarningsAsErrors) {
		os.Exit(1)
	}
	return nil
}
