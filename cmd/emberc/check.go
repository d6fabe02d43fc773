package main

import (
	"os"

	heredoc "github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var cmdCheck = &cobra.Command{
	Use:   "check <file>",
	Short: "parse a file and report its diagnostics",
	Long: heredoc.Doc(`
		Run the lexer and parser and render every diagnostic they
		produced. check does not perform semantic analysis (there is
		no type checker or name resolver in this pipeline); it exists
		to give a clean, scriptable exit code for "does this file
		parse".
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, text, err := readSource(args[0])
		if err != nil {
			return err
		}
		return runCheck(path, text)
	},
}

func runCheck(path, text string) error {
	d := newDriver()
	result, _ := d.Run(path, text)

	if err := result.Ctx.Format(os.Stderr); err != nil {
		return err
	}
	if anyFailure(result.Ctx, cfg.WarningsAsErrors) {
		os.Exit(1)
	}
	return nil
}
