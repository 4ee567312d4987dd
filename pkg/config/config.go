// Package config loads the ibizo configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/temporal-IPA/ibizo/pkg/conversion"
	"github.com/temporal-IPA/ibizo/pkg/lexicon"
	"github.com/temporal-IPA/ibizo/pkg/noun"
)

// Output formats understood by the CLI.
const (
	FormatText    = "text"
	FormatTSV     = "tsv"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

var (
	formats   = []string{FormatText, FormatTSV, FormatJSON, FormatYAML, FormatMsgpack}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Config represents the complete ibizo configuration
type Config struct {
	Extraction noun.Options `yaml:"extraction"`
	Input      InputConfig  `yaml:"input"`
	Output     OutputConfig `yaml:"output"`
	Log        LogConfig    `yaml:"log"`
}

// InputConfig configures how noun lists are read.
type InputConfig struct {
	// Encoding of the source files (utf-8, latin1, utf-16le, ...)
	Encoding string `yaml:"encoding"`
	// MergeMode is append, no-override or replace
	MergeMode string `yaml:"merge_mode"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with the richest extraction behaviour
// and plain text output.
func DefaultConfig() *Config {
	return &Config{
		Extraction: noun.DefaultOptions,
		Input: InputConfig{
			Encoding:  "utf-8",
			MergeMode: lexicon.MergeModeAppend.String(),
		},
		Output: OutputConfig{Format: FormatText},
		Log:    LogConfig{Level: "info"},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := conversion.ParseEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	if _, err := lexicon.ParseMergeMode(c.Input.MergeMode); err != nil {
		return fmt.Errorf("input.merge_mode: %w", err)
	}
	if !oneOf(c.Output.Format, formats) {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(formats, ", "), c.Output.Format)
	}
	if !oneOf(c.Log.Level, logLevels) {
		return fmt.Errorf("log.level must be one of %s, got %q", strings.Join(logLevels, ", "), c.Log.Level)
	}
	return nil
}

// ExtractionOptions returns the options for noun.NewExtractorWithOptions.
func (c *Config) ExtractionOptions() noun.Options {
	return c.Extraction
}

// LoadOptions converts the input section for lexicon.LoadPaths.
func (c *Config) LoadOptions() (lexicon.LoadOptions, error) {
	enc, err := conversion.ParseEncoding(c.Input.Encoding)
	if err != nil {
		return lexicon.LoadOptions{}, fmt.Errorf("input.encoding: %w", err)
	}
	mode, err := lexicon.ParseMergeMode(c.Input.MergeMode)
	if err != nil {
		return lexicon.LoadOptions{}, fmt.Errorf("input.merge_mode: %w", err)
	}
	return lexicon.LoadOptions{Mode: mode, Encoding: enc}, nil
}

// LoadFromFile reads a config file on top of the defaults. Keys absent
// from the file keep their default value.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration to a file
func (c *Config) SaveToFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
