package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/temporal-IPA/ibizo/pkg/noun"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "ibizo.yaml"
	// EnvFile is read before environment overrides are applied.
	EnvFile = ".env"
)

// Environment variables overriding the file configuration.
const (
	EnvPrefixSet       = "IBIZO_PREFIX_SET"
	EnvCaseInsensitive = "IBIZO_CASE_INSENSITIVE"
	EnvConsumeHyphens  = "IBIZO_CONSUME_HYPHENS"
	EnvTrimHyphens     = "IBIZO_TRIM_LEADING_HYPHENS"
	EnvEncoding        = "IBIZO_ENCODING"
	EnvMergeMode       = "IBIZO_MERGE_MODE"
	EnvOutputFormat    = "IBIZO_OUTPUT_FORMAT"
	EnvLogLevel        = "IBIZO_LOG_LEVEL"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *zap.Logger

	// WorkDir is where the project config and .env are searched from.
	// Empty means the current directory.
	WorkDir string

	lookupEnv func(string) (string, bool)
}

// NewLoader creates a new configuration loader
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger, lookupEnv: os.LookupEnv}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. Project config (explicitPath, or ibizo.yaml in current or parent directories)
// 3. .env file in the working directory
// 4. IBIZO_* environment variables
func (l *Loader) Load(explicitPath string) (*Config, error) {
	cfg := DefaultConfig()

	if explicitPath != "" {
		fileCfg, err := LoadFromFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		l.logger.Debug("loaded config", zap.String("path", explicitPath))
		cfg = fileCfg
	} else if path := l.findProjectConfig(); path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			l.logger.Warn("failed to load project config", zap.String("path", path), zap.Error(err))
		} else {
			l.logger.Debug("loaded project config", zap.String("path", path))
			cfg = fileCfg
		}
	} else {
		l.logger.Debug("no project config found")
	}

	if err := l.loadEnvFile(); err != nil {
		return nil, err
	}
	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile copies .env values into the process environment. Variables
// already set are left untouched.
func (l *Loader) loadEnvFile() error {
	path := filepath.Join(l.workDir(), EnvFile)
	err := godotenv.Load(path)
	switch {
	case err == nil:
		l.logger.Debug("loaded env file", zap.String("path", path))
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("load %s: %w", path, err)
	}
}

func (l *Loader) applyEnv(cfg *Config) error {
	if v, ok := l.lookupEnv(EnvPrefixSet); ok {
		set, err := noun.ParsePrefixSet(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPrefixSet, err)
		}
		cfg.Extraction.PrefixSet = set
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{EnvCaseInsensitive, &cfg.Extraction.CaseInsensitive},
		{EnvConsumeHyphens, &cfg.Extraction.ConsumeHyphens},
		{EnvTrimHyphens, &cfg.Extraction.TrimLeadingHyphens},
	}
	for _, b := range bools {
		v, ok := l.lookupEnv(b.name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
		*b.dst = parsed
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{EnvEncoding, &cfg.Input.Encoding},
		{EnvMergeMode, &cfg.Input.MergeMode},
		{EnvOutputFormat, &cfg.Output.Format},
		{EnvLogLevel, &cfg.Log.Level},
	}
	for _, s := range strs {
		if v, ok := l.lookupEnv(s.name); ok {
			*s.dst = v
		}
	}
	return nil
}

// findProjectConfig searches for ibizo.yaml in the work directory and its parents
func (l *Loader) findProjectConfig() string {
	dir, err := filepath.Abs(l.workDir())
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func (l *Loader) workDir() string {
	if l.WorkDir != "" {
		return l.WorkDir
	}
	return "."
}
