package main

import (
	"fmt"
	"os"

	heredoc "github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ember-lang/emberc/internal/ast"
)

var cmdParse = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a file and print its top-level declarations",
	Long: heredoc.Doc(`
		Run the lexer and parser over a source file and print the
		name and kind of every top-level declaration. A malformed
		declaration is skipped after its diagnostic is reported, so
		later declarations in the same file still show up.
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, text, err := readSource(args[0])
		if err != nil {
			return err
		}
		return runParse(path, text)
	},
}

func runParse(path, text string) error {
	d := newDriver()
	result, _ := d.Run(path, text)

	if result.File != nil {
		for _, decl := range result.File.Decls {
			switch n := decl.(type) {
			case *ast.FnDecl:
				fmt.Printf("fn   %s\n", n.Name.Name)
			case *ast.VarDecl:
				fmt.Printf("decl %s\n", n.Name.Name)
			}
		}
	}

	if err := result.Ctx.Format(os.Stderr); err != nil {
		return err
	}
	if anyFailure(result.Ctx, cfg.WarningsAsErrors) {
		os.Exit(1)
	}
	return nil
}
