package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-lang/emberc/internal/config"
	"github.com/ember-lang/emberc/internal/diag"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadDecodesPresentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".emberc.toml")
	contents := "color = \"always\"\nwarnings_as_errors = true\nsource_roots = [\"src\", \"lib\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Color)
	assert.True(t, cfg.WarningsAsErrors)
	assert.Equal(t, []string{"src", "lib"}, cfg.SourceRoots)
	assert.Equal(t, diag.ColorAlways, cfg.ColorChoice())
}

func TestColorChoiceDefaultsToAutoForUnrecognizedValue(t *testing.T) {
	cfg := config.Default()
	cfg.Color = "sometimes"
	assert.Equal(t, diag.ColorAuto, cfg.ColorChoice())
}
