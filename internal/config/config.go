// Package config loads the settings of the glyph command line tool from a
// TOML or YAML file.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/letung3105/glyph/internal/glyph"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the settings of one run of the tool.
type Config struct {
	// MaxDepth bounds the nesting of expressions and blocks.
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
	// PrintAST dumps the syntax tree of every parsed input.
	PrintAST bool `toml:"print_ast" yaml:"print_ast"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		MaxDepth: glyph.DefaultMaxDepth,
	}
}

// Load reads the file at path, picking the format from its extension. Keys
// missing from the file keep their default value.
func Load(path string) (Config, error) {
	return LoadFormat(path, FormatAuto)
}

// LoadFormat reads the file at path in the given format.
func LoadFormat(path string, format Format) (Config, error) {
	if format == FormatAuto {
		var err error
		if format, err = detectFormat(path); err != nil {
			return Config{}, err
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config file")
	}

	cfg := Default()
	if err := decode(content, format, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %s", path)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (cfg Config) Validate() error {
	if cfg.MaxDepth < 1 {
		return errors.Errorf("max_depth must be at least 1, got %d", cfg.MaxDepth)
	}
	return nil
}

func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatAuto, errors.Errorf("unsupported config file extension %q", ext)
}

func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), cfg)
		if err != nil {
			return errors.Wrap(err, "TOML parse error")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return errors.Errorf("unknown key %s", undecoded[0])
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// an empty document leaves the defaults alone
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "YAML parse error")
		}
	default:
		return errors.Errorf("unsupported format: %s", format)
	}
	return nil
}
