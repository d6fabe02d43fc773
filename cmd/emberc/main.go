// Command emberc is the compiler's command-line front end: a cobra
// subcommand tree over the lex/parse/build pipeline in internal/driver.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ember-lang/emberc/internal/config"
	"github.com/ember-lang/emberc/internal/diag"
	"github.com/ember-lang/emberc/internal/driver"
)

var argsRoot struct {
	color      string
	configPath string
	verbose    bool
}

var (
	cfg *config.Config
	log = logrus.New()
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var cmdRoot = &cobra.Command{
	Use:   "emberc",
	Short: "Compiler front end for the ember language",
	Long:  `emberc lexes, parses, and (eventually) builds ember source files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(argsRoot.configPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", argsRoot.configPath, err)
		}
		cfg = loaded
		if argsRoot.color != "" {
			cfg.Color = argsRoot.color
		}

		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{})
		if argsRoot.verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}
		return nil
	},
}

// Execute wires every subcommand onto the root and runs it.
func Execute() error {
	cmdRoot.PersistentFlags().StringVar(&argsRoot.color, "color", "", "color choice: auto, always, or never (overrides .emberc.toml)")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.configPath, "config", ".emberc.toml", "path to the project config file")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.verbose, "verbose", false, "trace driver phases to stderr")

	cmdRoot.AddCommand(cmdLex)
	cmdRoot.AddCommand(cmdParse)
	cmdRoot.AddCommand(cmdCheck)
	cmdRoot.AddCommand(cmdBuild)

	return cmdRoot.Execute()
}

// colorChoice resolves the effective color choice for this run: an
// explicit --color flag wins, otherwise the loaded config's Color field.
func colorChoice() diag.ColorChoice {
	return cfg.ColorChoice()
}

// newDriver builds a driver.Driver tracing through this process's shared
// logger and using the run's resolved color choice.
func newDriver() *driver.Driver {
	return driver.New(log, colorChoice())
}

// anyFailure reports whether ctx's accumulated logs should fail the
// build: any error-severity log always does, and so does any
// warning-severity log when the project config has warnings-as-errors
// set.
func anyFailure(ctx *diag.Context, warningsAsErrors bool) bool {
	if ctx.Failed() {
		return true
	}
	if !warningsAsErrors {
		return false
	}
	for _, l := range ctx.Logs() {
		for _, part := range l.Parts {
			if part.Level == diag.SeverityWarning {
				return true
			}
		}
	}
	return false
}

// readSource reads name as given if it exists; otherwise it tries name
// under each configured source root in order, and if none has it, reads
// name as given (returning that read's error).
func readSource(name string) (string, string, error) {
	if _, err := os.Stat(name); err == nil {
		text, err := os.ReadFile(name)
		return name, string(text), err
	}
	for _, root := range cfg.SourceRoots {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			text, err := os.ReadFile(path)
			return path, string(text), err
		}
	}
	text, err := os.ReadFile(name)
	return name, string(text), err
}
