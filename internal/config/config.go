// Package config loads doccheck settings from defaults, a YAML file,
// DOCCHECK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eykd/doccheck/internal/domain"
	"github.com/eykd/doccheck/internal/fs"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the config file searched for from the working directory upwards.
const FileName = ".doccheck.yaml"

// EnvPrefix prefixes environment variable overrides, e.g. DOCCHECK_PATH.
const EnvPrefix = "DOCCHECK_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Supported output languages.
const (
	LangEnglish   = "en"
	LangHungarian = "hu"
)

// Rules holds the configurable rule thresholds.
type Rules struct {
	MinHeading1   int `koanf:"min_heading1"`
	MinParagraphs int `koanf:"min_paragraphs"`
}

// Config is the resolved configuration for one invocation.
type Config struct {
	Path              string `koanf:"path"`
	Format            string `koanf:"format"`
	Lang              string `koanf:"lang"`
	NoColor           bool   `koanf:"no_color"`
	Verbose           bool   `koanf:"verbose"`
	DistinctExitCodes bool   `koanf:"distinct_exit_codes"`
	Rules             Rules  `koanf:"rules"`

	// File is the config file that was loaded, or "" when none was found.
	File string `koanf:"-"`
}

// Thresholds converts the configured rule values to domain thresholds.
func (c *Config) Thresholds() domain.Thresholds {
	return domain.Thresholds{
		MinHeading1:   c.Rules.MinHeading1,
		MinParagraphs: c.Rules.MinParagraphs,
	}
}

// Defaults returns the built-in configuration.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"path":                 domain.DefaultDocumentPath,
		"format":               FormatText,
		"lang":                 LangEnglish,
		"no_color":             false,
		"verbose":              false,
		"distinct_exit_codes":  false,
		"rules.min_heading1":   domain.MinHeading1,
		"rules.min_paragraphs": domain.MinParagraphs,
	}
}

// Options controls where Load looks for configuration.
type Options struct {
	// File is an explicit config file. When empty, FileName is searched for
	// upwards from Dir.
	File string
	// Dir is the search start directory; defaults to the working directory.
	Dir string
	// Flags are applied last; only flags that were changed take effect.
	Flags *pflag.FlagSet
	// Environ replaces os.Environ as the source of DOCCHECK_ variables.
	Environ func() []string
}

// Load resolves the configuration. Precedence (highest to lowest):
// flags > env vars > config file > defaults.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	cfgFile, err := findFile(opts)
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		fk := koanf.New(".")
		if err := fk.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
		// Document paths in the file are relative to the file.
		if p := fk.String("path"); p != "" && !filepath.IsAbs(p) {
			if err := fk.Set("path", filepath.Join(filepath.Dir(cfgFile), p)); err != nil {
				return nil, err
			}
		}
		if err := k.Merge(fk); err != nil {
			return nil, fmt.Errorf("merging config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(envProvider(opts.Environ), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			switch key {
			case "min_heading1", "min_paragraphs":
				key = "rules." + key
			}
			return key, posflag.FlagVal(opts.Flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = cfgFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unusable settings.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Path) == "" {
		errs = append(errs, errors.New("path must not be empty"))
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("unknown format %q (want text, json or yaml)", c.Format))
	}
	switch c.Lang {
	case LangEnglish, LangHungarian:
	default:
		errs = append(errs, fmt.Errorf("unsupported language %q (want en or hu)", c.Lang))
	}
	if c.Rules.MinHeading1 < 0 {
		errs = append(errs, fmt.Errorf("rules.min_heading1 must not be negative, got %d", c.Rules.MinHeading1))
	}
	if c.Rules.MinParagraphs < 0 {
		errs = append(errs, fmt.Errorf("rules.min_paragraphs must not be negative, got %d", c.Rules.MinParagraphs))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func findFile(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return opts.File, nil
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	root, err := fs.FindUpward(dir, FileName)
	if errors.Is(err, fs.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return filepath.Join(root, FileName), nil
}

// envProvider maps DOCCHECK_MIN_PARAGRAPHS to rules.min_paragraphs and
// DOCCHECK_PATH to path.
func envProvider(environ func() []string) koanf.Provider {
	transform := func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		switch key {
		case "min_heading1", "min_paragraphs":
			return "rules." + key
		}
		return key
	}
	if environ == nil {
		return env.Provider(EnvPrefix, ".", transform)
	}

	vars := make(map[string]interface{})
	for _, kv := range environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		vars[transform(name)] = value
	}
	return confmap.Provider(vars, ".")
}
