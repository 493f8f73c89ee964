// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     intl
// Description: Detection of the process environment locale and time zone
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package intl

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Fallbacks used when the environment carries no usable setting
const (
	FallbackLocale   = "en-US"
	FallbackTimeZone = "UTC"
)

// Environment is the caller's locale and time zone, the "user" side of a value
type Environment struct {
	Locale   string
	TimeZone string
}

var (
	defaultEnv     Environment
	defaultEnvOnce sync.Once
)

// DefaultEnvironment returns the environment detected once for the process
func DefaultEnvironment() Environment {
	defaultEnvOnce.Do(func() {
		defaultEnv = DetectEnvironment()
	})
	return defaultEnv
}

// DetectEnvironment reads LC_ALL, LC_TIME and LANG for the locale and TZ or
// the /etc/localtime link for the time zone.
func DetectEnvironment() Environment {
	return Environment{
		Locale:   detectLocale(os.Getenv),
		TimeZone: detectTimeZone(os.Getenv, "/etc/localtime"),
	}
}

// Location resolves the environment time zone, UTC when it does not load
func (e Environment) Location() *time.Location {
	loc, _, err := ResolveTimeZone(e.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func detectLocale(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		value := getenv(key)
		if value == "" {
			continue
		}
		if tag := normalizePOSIXLocale(value); tag != "" {
			if resolved, err := ResolveLocale(tag); err == nil {
				return resolved
			}
		}
	}
	return FallbackLocale
}

// normalizePOSIXLocale turns "de_DE.UTF-8@euro" into "de-DE". The C and
// POSIX locales carry no language and yield "".
func normalizePOSIXLocale(value string) string {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}

func detectTimeZone(getenv func(string) string, localtime string) string {
	if tz := strings.TrimPrefix(getenv("TZ"), ":"); tz != "" {
		if _, name, err := ResolveTimeZone(tz); err == nil {
			return name
		}
	}

	if target, err := os.Readlink(localtime); err == nil {
		if name := zoneFromPath(target); name != "" {
			if _, resolved, err := ResolveTimeZone(name); err == nil {
				return resolved
			}
		}
	}

	return FallbackTimeZone
}

// zoneFromPath extracts "Europe/Berlin" from ".../zoneinfo/Europe/Berlin"
func zoneFromPath(path string) string {
	path = filepath.ToSlash(path)
	const marker = "zoneinfo/"
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return ""
	}
	return path[i+len(marker):]
}
