package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dshills/yap/internal/renderer/core"
)

// EnvPrefix is the prefix for environment variables.
const EnvPrefix = "YAP"

// Setting keys. Each is also the flag name; the environment variable is
// the key upper-cased with dashes replaced by underscores and EnvPrefix
// in front.
const (
	KeyFollow      = "follow"
	KeyLogFile     = "log-file"
	KeyLogLevel    = "log-level"
	KeyStatusColor = "status-color"
	KeyTabWidth    = "tab-width"
)

// Config holds the resolved settings.
type Config struct {
	// Follow keeps reading a file after EOF as it grows.
	Follow bool `mapstructure:"follow"`

	// LogFile receives structured logs. Empty discards them.
	LogFile string `mapstructure:"log-file"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log-level"`

	// StatusColor is the status bar background as #rrggbb.
	// Empty means reverse video.
	StatusColor string `mapstructure:"status-color"`

	// TabWidth is the distance between tab stops. Zero leaves tabs as-is.
	TabWidth int `mapstructure:"tab-width"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		TabWidth: 8,
	}
}

// BindFlags defines the setting flags on fs and binds them to v.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	d := Default()
	fs.BoolP(KeyFollow, "f", d.Follow, "keep reading the file as it grows")
	fs.String(KeyLogFile, d.LogFile, "write logs to this file")
	fs.String(KeyLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(KeyStatusColor, d.StatusColor, "status bar colour as #rrggbb (default reverse video)")
	fs.Int(KeyTabWidth, d.TabWidth, "tab stop width, 0 to leave tabs unexpanded")

	for _, key := range []string{KeyFollow, KeyLogFile, KeyLogLevel, KeyStatusColor, KeyTabWidth} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Load resolves the settings in v against the environment and validates
// the result.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.StatusColor = strings.TrimSpace(cfg.StatusColor)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyFollow, d.Follow)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyStatusColor, d.StatusColor)
	v.SetDefault(KeyTabWidth, d.TabWidth)
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if !logLevels[c.LogLevel] {
		errs = append(errs, &ValidationError{
			Key:     KeyLogLevel,
			Value:   c.LogLevel,
			Message: "must be one of debug, info, warn, error",
		})
	}
	if c.StatusColor != "" {
		if _, err := core.ColorFromHex(c.StatusColor); err != nil {
			errs = append(errs, &ValidationError{
				Key:     KeyStatusColor,
				Value:   c.StatusColor,
				Message: "must be a #rrggbb colour",
			})
		}
	}
	if c.TabWidth < 0 {
		errs = append(errs, &ValidationError{
			Key:     KeyTabWidth,
			Value:   c.TabWidth,
			Message: "must not be negative",
		})
	}

	return errors.Join(errs...)
}

// StatusBarColor returns the configured status bar background, or
// core.ColorDefault when none is set.
func (c *Config) StatusBarColor() core.Color {
	if c.StatusColor == "" {
		return core.ColorDefault
	}
	color, err := core.ColorFromHex(c.StatusColor)
	if err != nil {
		return core.ColorDefault
	}
	return color
}
