// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     config
// Description: Typed application configuration for the CLI and world clock
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	fconfig "github.com/msto63/zonetime/foundation/core/config"
	mdwerror "github.com/msto63/zonetime/foundation/core/error"
)

// EnvPrefix prefixes environment overrides, e.g. ZONETIME_DEFAULTS_TIME_ZONE
const EnvPrefix = "ZONETIME"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Defaults DefaultsConfig `toml:"defaults" yaml:"defaults"`
	Clock    ClockConfig    `toml:"clock" yaml:"clock"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// DefaultsConfig holds the locale, zone and template used when a command
// does not name them. Empty locale and zone mean the detected environment.
type DefaultsConfig struct {
	Locale   string `toml:"locale" yaml:"locale"`
	TimeZone string `toml:"time_zone" yaml:"time_zone"`
	Template string `toml:"template" yaml:"template"`
}

// ClockConfig holds world clock settings
type ClockConfig struct {
	Zones    []string `toml:"zones" yaml:"zones"`
	Template string   `toml:"template" yaml:"template"`
	Interval Duration `toml:"interval" yaml:"interval"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML or YAML file and applies ZONETIME_ environment
// overrides on top of it.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	src, err := fconfig.LoadWithOptions(path, fconfig.LoadOptions{
		Format:    fconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, err
	}

	cfg := bind(src)
	if err := cfg.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid configuration").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by ZONETIME_CONFIG or the first default
// location that exists. Without any file the defaults plus environment
// overrides are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return bind(fconfig.Empty(EnvPrefix)), nil
}

// DefaultPaths lists the locations LoadFromEnv tries, in order
func DefaultPaths() []string {
	paths := []string{"./zonetime.toml", "./configs/zonetime.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "zonetime", "config.toml"),
			filepath.Join(home, ".config", "zonetime", "config.yaml"))
	}
	return paths
}

func bind(src *fconfig.Config) *Config {
	cfg := &Config{
		General: GeneralConfig{
			LogLevel:  src.GetString("general.log_level"),
			LogFormat: src.GetString("general.log_format"),
		},
		Defaults: DefaultsConfig{
			Locale:   src.GetString("defaults.locale"),
			TimeZone: src.GetString("defaults.time_zone"),
			Template: src.GetString("defaults.template"),
		},
		Clock: ClockConfig{
			Zones:    src.GetStringSlice("clock.zones"),
			Template: src.GetString("clock.template"),
			Interval: Duration{src.GetDuration("clock.interval")},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Defaults.Template == "" {
		c.Defaults.Template = "dtf"
	}
	if len(c.Clock.Zones) == 0 {
		c.Clock.Zones = []string{"UTC", "Europe/Berlin", "America/New_York", "Asia/Tokyo"}
	}
	if c.Clock.Template == "" {
		c.Clock.Template = "yyyy-mm-dd hh:mmi:ss"
	}
	if c.Clock.Interval.Duration <= 0 {
		c.Clock.Interval.Duration = time.Second
	}
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch strings.ToLower(c.General.LogFormat) {
	case "text", "json":
	default:
		return mdwerror.Newf("unknown log format %q", c.General.LogFormat).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("key", "general.log_format")
	}
	for _, zone := range c.Clock.Zones {
		if strings.TrimSpace(zone) == "" {
			return mdwerror.New("clock zones must not be blank").
				WithCode(mdwerror.CodeInvalidConfig).
				WithDetail("key", "clock.zones")
		}
	}
	return nil
}

// Write encodes the configuration as TOML
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return mdwerror.Wrap(err, "failed to encode config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Write")
	}
	return nil
}
