// Package config loads CLI settings from flags, FLEXIQL_* environment
// variables and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vegasq/flexiql/internal/logger"
	"github.com/vegasq/flexiql/output"
)

// EnvPrefix is the environment variable prefix, e.g. FLEXIQL_DATA_DIR
const EnvPrefix = "FLEXIQL"

// Flag names shared by the CLI and the config keys
const (
	KeyFormat    = "format"
	KeyDataDir   = "data-dir"
	KeyNoColor   = "no-color"
	KeyMaxWidth  = "max-width"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyConfig    = "config"
)

// Config holds the resolved CLI settings
type Config struct {
	Format    string `mapstructure:"format"`
	DataDir   string `mapstructure:"data-dir"`
	NoColor   bool   `mapstructure:"no-color"`
	MaxWidth  int    `mapstructure:"max-width"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Format:    "table",
		DataDir:   ".",
		MaxWidth:  0,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// RegisterFlags adds the configuration flags to flags
func RegisterFlags(flags *pflag.FlagSet) {
	def := Default()
	flags.StringP(KeyFormat, "f", def.Format, "Output format: "+strings.Join(output.Formats, ", "))
	flags.StringP(KeyDataDir, "d", def.DataDir, "Directory table references are resolved in")
	flags.Bool(KeyNoColor, def.NoColor, "Disable colored output")
	flags.Int(KeyMaxWidth, def.MaxWidth, "Truncate table cells wider than this (0 = unlimited)")
	flags.String(KeyLogLevel, def.LogLevel, "Diagnostic level: debug, info, warn, error")
	flags.String(KeyLogFormat, def.LogFormat, "Diagnostic format: text, json")
	flags.String(KeyConfig, "", "Optional config file (yaml, json or toml)")
}

// Load resolves settings from flags, environment and the optional config file
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyDataDir, def.DataDir)
	v.SetDefault(KeyNoColor, def.NoColor)
	v.SetDefault(KeyMaxWidth, def.MaxWidth)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := def
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks setting values
func (c *Config) Validate() error {
	var errs []error

	if _, err := output.New(c.Format, nil, output.Options{}); err != nil {
		errs = append(errs, err)
	}
	if c.MaxWidth < 0 {
		errs = append(errs, fmt.Errorf("max-width must be non-negative, got %d", c.MaxWidth))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}
