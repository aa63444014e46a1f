package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letung3105/glyph/internal/glyph"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert := assert.New(t)
	assert.Equal(glyph.DefaultMaxDepth, cfg.MaxDepth)
	assert.False(cfg.PrintAST)
	assert.NoError(cfg.Validate())
}

func TestLoadFormats(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"glyph.toml", "max_depth = 64\nprint_ast = true\n"},
		{"glyph.TOML", "max_depth = 64\nprint_ast = true\n"},
		{"glyph.yaml", "max_depth: 64\nprint_ast: true\n"},
		{"glyph.yml", "max_depth: 64\nprint_ast: true\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		cfg, err := Load(writeFile(t, tc.name, tc.content))
		if assert.NoError(err, tc.name) {
			assert.Equal(Config{MaxDepth: 64, PrintAST: true}, cfg, tc.name)
		}
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"empty.toml", ""},
		{"empty.yaml", ""},
		{"partial.toml", "print_ast = true\n"},
		{"partial.yaml", "print_ast: true\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		cfg, err := Load(writeFile(t, tc.name, tc.content))
		if assert.NoError(err, tc.name) {
			assert.Equal(glyph.DefaultMaxDepth, cfg.MaxDepth, tc.name)
		}
	}
}

func TestLoadFormatOverridesExtension(t *testing.T) {
	path := writeFile(t, "settings.conf", "max_depth: 8\n")

	cfg, err := LoadFormat(path, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxDepth)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"glyph.json", "{}", "unsupported config file extension"},
		{"bad.toml", "max_depth = ", "TOML parse error"},
		{"bad.yaml", "max_depth: [1", "YAML parse error"},
		{"unknown.toml", "depth = 3\n", "unknown key depth"},
		{"unknown.yaml", "depth: 3\n", "YAML parse error"},
		{"zero.toml", "max_depth = 0\n", "max_depth must be at least 1, got 0"},
		{"negative.yaml", "max_depth: -2\n", "max_depth must be at least 1, got -2"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, err := Load(writeFile(t, tc.name, tc.content))
		if assert.Error(err, tc.name) {
			assert.Contains(err.Error(), tc.errMsg, tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert := assert.New(t)
	if assert.Error(err) {
		assert.Contains(err.Error(), "failed to read config file")
		assert.True(os.IsNotExist(errors.Cause(err)))
	}
}

func TestFormatString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("toml", FormatTOML.String())
	assert.Equal("yaml", FormatYAML.String())
	assert.Equal("auto", FormatAuto.String())
	assert.Equal("unknown", Format(42).String())
}
