// Package config loads the project-level settings consulted by every
// emberc subcommand: default color choice, whether warnings should be
// treated as build failures, and the directories bare filenames resolve
// against.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ember-lang/emberc/internal/diag"
)

// Config is the decoded shape of an .emberc.toml file.
type Config struct {
	Color            string   `toml:"color"`
	WarningsAsErrors bool     `toml:"warnings_as_errors"`
	SourceRoots      []string `toml:"source_roots"`
}

// Default returns the settings used when no .emberc.toml is present.
func Default() *Config {
	return &Config{
		Color:            "auto",
		WarningsAsErrors: false,
		SourceRoots:      []string{"."},
	}
}

// Load reads and decodes the TOML file at path. A missing file is not an
// error: it yields Default() unchanged, since a project with no
// .emberc.toml should build exactly as if it had one with every field at
// its default.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ColorChoice maps the configured color string to the diag package's
// enum, defaulting to auto-detection for anything unrecognized.
func (c *Config) ColorChoice() diag.ColorChoice {
	switch c.Color {
	case "always":
		return diag.ColorAlways
	case "never":
		return diag.ColorNever
	default:
		return diag.ColorAuto
	}
}
