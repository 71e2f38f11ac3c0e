// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/xonecas/pydocstring/internal/constants"
	"github.com/xonecas/pydocstring/internal/format"
	"github.com/xonecas/pydocstring/internal/locate"
)

// Config is the root configuration structure.
type Config struct {
	// Formatter is the default docstring style.
	Formatter string `toml:"formatter" validate:"required"`
	// Strategy selects the declaration locator: "tree" or "scan".
	Strategy string       `toml:"strategy" validate:"omitempty,oneof=tree scan"`
	LogLevel string       `toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Output   OutputConfig `toml:"output"`
}

// OutputConfig holds CLI output settings.
type OutputConfig struct {
	// Color highlights the printed docstring with Chroma.
	Color bool `toml:"color"`
	// Theme is the Chroma style used when Color is set. Defaults to
	// constants.SyntaxTheme if unset.
	Theme string `toml:"theme" validate:"omitempty,printascii"`
	// Delimiter wraps the printed docstring. Defaults to constants.Delimiter.
	Delimiter string `toml:"delimiter" validate:"omitempty,max=8"`
}

// ThemeOrDefault returns the configured theme or constants.SyntaxTheme if unset.
func (o OutputConfig) ThemeOrDefault() string {
	if o.Theme == "" {
		return constants.SyntaxTheme
	}
	return o.Theme
}

// DelimiterOrDefault returns the configured delimiter or constants.Delimiter if unset.
func (o OutputConfig) DelimiterOrDefault() string {
	if o.Delimiter == "" {
		return constants.Delimiter
	}
	return o.Delimiter
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Formatter: string(format.StyleGoogle),
		Strategy:  string(locate.StrategyTree),
		LogLevel:  zerolog.LevelWarnValue,
	}
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. A missing file is not an error: defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Report fields by their TOML keys.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if err := getValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, ve := range verrs {
			errs = append(errs, fmt.Errorf("%s=%q fails %q", fieldPath(ve.Namespace()), ve.Value(), ve.Tag()))
		}
	}

	if c.Formatter != "" {
		if _, _, err := format.Lookup(c.Formatter); err != nil {
			errs = append(errs, fmt.Errorf("formatter=%q: %w", c.Formatter, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// LocatorStrategy returns the configured strategy.
func (c *Config) LocatorStrategy() locate.Strategy {
	s, err := locate.ParseStrategy(c.Strategy)
	if err != nil {
		return locate.StrategyTree
	}
	return s
}

// Level returns the configured log level, or warn when unset.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"PYDOCSTRING_FORMATTER", func(v string) {
			if v != "" {
				cfg.Formatter = v
			}
		}},
		{"PYDOCSTRING_STRATEGY", func(v string) {
			if v != "" {
				cfg.Strategy = strings.ToLower(v)
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the configuration directory (~/.config/pydocstring).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", constants.AppName), nil
}

// DefaultPath returns the default config file location, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	dir, err := DataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}
