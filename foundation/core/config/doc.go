// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration files and
//              exposes typed accessors with environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Removed discovery, watching and rule validation

/*
Package config provides configuration loading for zonetime.

Key Features:
  - TOML and YAML with detection from the file extension
  - Dot-notation lookups into nested tables
  - Environment overrides: with prefix ZONETIME the key defaults.time_zone
    is overridden by ZONETIME_DEFAULTS_TIME_ZONE

# Basic Configuration Loading

	cfg, err := mdwconfig.LoadWithOptions("zonetime.toml", mdwconfig.LoadOptions{
		EnvPrefix: "ZONETIME",
	})
	if err != nil {
		return err
	}

	locale := cfg.GetString("defaults.locale", "en-US")
	zones := cfg.GetStringSlice("clock.zones")
*/
package config
