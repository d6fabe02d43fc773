package main

import (
	"fmt"
	"os"

	heredoc "github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/ember-lang/emberc/internal/codegen"
)

var cmdBuild = &cobra.Command{
	Use:   "build <file>",
	Short: "parse a file and hand it to the code generator",
	Long: heredoc.Doc(`
		Run the full pipeline, including the code generator. There is
		no backend yet: build always reports that codegen is not
		implemented and exits 1, once the file has parsed cleanly.
	`),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, text, err := readSource(args[0])
		if err != nil {
			return err
		}
		return runBuild(path, text)
	},
}

func runBuild(path, text string) error {
	d := newDriver()
	result, parseErr := d.Run(path, text)

	if err := result.Ctx.Format(os.Stderr); err != nil {
		return err
	}
	if parseErr != nil || anyFailure(result.Ctx, cfg.WarningsAsErrors) {
		os.Exit(1)
	}

	if err := codegen.NewGenerator().Generate(result.File); err != nil {
		fmt.Fprintln(os.Stderr, "emberc build: codegen not implemented")
		os.Exit(1)
	}
	return nil
}
