// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     localezone
// Description: Validation of locale and time zone pairs with logged fallback
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package localezone

import (
	"strings"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
	"github.com/msto63/zonetime/foundation/core/log"
	"github.com/msto63/zonetime/pkg/core/intl"
)

// Info is a resolved locale and time zone pair. It is a value type; a
// different pair means a different Info.
type Info struct {
	Locale        string `json:"locale" yaml:"locale"`
	TimeZone      string `json:"timeZone" yaml:"timeZone"`
	FormatOptions string `json:"formatOptions" yaml:"formatOptions"`
}

// Descriptor is the loose input form. L and TZ are shorthands used when
// Locale or TimeZone are empty.
type Descriptor struct {
	Locale   string
	TimeZone string
	L        string
	TZ       string
}

// Values returns the effective locale and time zone
func (d Descriptor) Values() (string, string) {
	locale, timeZone := d.Locale, d.TimeZone
	if locale == "" {
		locale = d.L
	}
	if timeZone == "" {
		timeZone = d.TZ
	}
	return locale, timeZone
}

// IsZero reports whether the descriptor names neither locale nor zone
func (d Descriptor) IsZero() bool {
	locale, timeZone := d.Values()
	return locale == "" && timeZone == ""
}

// Resolver validates pairs against the intl service
type Resolver struct {
	env    intl.Environment
	logger *log.Logger
}

// NewResolver creates a resolver falling back to env. A nil logger uses the
// package default logger.
func NewResolver(env intl.Environment, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Resolver{env: env, logger: logger.WithName("localezone")}
}

// Environment returns the fallback environment
func (r *Resolver) Environment() intl.Environment {
	return r.env
}

// Resolve never fails: invalid parts are replaced by the environment
// default and reported on the logger.
func (r *Resolver) Resolve(locale, timeZone string) Info {
	info, err := r.Validate(locale, timeZone)
	if err != nil {
		r.logger.WarnWithErr("invalid locale and/or time zone, using environment default", err, log.Fields{
			"locale":     locale,
			"time_zone":  timeZone,
			"error_code": mdwerror.GetCode(err),
			"resolved":   info.FormatOptions,
		})
	}
	return info
}

// ResolveDescriptor resolves the effective values of d
func (r *Resolver) ResolveDescriptor(d Descriptor) Info {
	return r.Resolve(d.Values())
}

// Validate is the strict variant of Resolve. The returned Info is always
// usable; the error carries CodeInvalidLocaleOrZone when a fallback was
// applied.
func (r *Resolver) Validate(locale, timeZone string) (Info, error) {
	locale, timeZone = strings.TrimSpace(locale), strings.TrimSpace(timeZone)
	if locale == "" {
		locale = r.env.Locale
	}
	if timeZone == "" {
		timeZone = r.env.TimeZone
	}

	resolvedLocale, localeErr := intl.ResolveLocale(locale)
	_, resolvedZone, zoneErr := intl.ResolveTimeZone(timeZone)
	if localeErr == nil && zoneErr == nil {
		return newInfo(resolvedLocale, resolvedZone), nil
	}

	err := mdwerror.New("invalid locale and/or time zone, using environment default").
		WithCode(mdwerror.CodeInvalidLocaleOrZone).
		WithOperation("localezone.Validate").
		WithDetail("locale", locale).
		WithDetail("time_zone", timeZone)

	if localeErr != nil {
		err = err.WithDetail("locale_fallback", r.env.Locale)
		resolvedLocale = r.fallbackLocale()
	}
	if zoneErr != nil {
		err = err.WithDetail("time_zone_fallback", r.env.TimeZone)
		resolvedZone = r.fallbackZone()
	}

	return newInfo(resolvedLocale, resolvedZone), err
}

// IsValid reports whether the pair resolves without fallback
func (r *Resolver) IsValid(locale, timeZone string) bool {
	_, err := r.Validate(locale, timeZone)
	return err == nil
}

func (r *Resolver) fallbackLocale() string {
	if locale, err := intl.ResolveLocale(r.env.Locale); err == nil {
		return locale
	}
	return intl.FallbackLocale
}

func (r *Resolver) fallbackZone() string {
	if _, zone, err := intl.ResolveTimeZone(r.env.TimeZone); err == nil {
		return zone
	}
	return intl.FallbackTimeZone
}

func newInfo(locale, timeZone string) Info {
	return Info{
		Locale:        locale,
		TimeZone:      timeZone,
		FormatOptions: FormatOptions(locale, timeZone),
	}
}

// FormatOptions builds the compact option string "l:<locale>,tz:<zone>"
func FormatOptions(locale, timeZone string) string {
	var parts []string
	if locale != "" {
		parts = append(parts, "l:"+locale)
	}
	if timeZone != "" {
		parts = append(parts, "tz:"+timeZone)
	}
	return strings.Join(parts, ",")
}

var defaultResolver = NewResolver(intl.DefaultEnvironment(), nil)

// Resolve resolves against the detected process environment
func Resolve(locale, timeZone string) Info {
	return defaultResolver.Resolve(locale, timeZone)
}

// Validate is Resolver.Validate against the detected process environment
func Validate(locale, timeZone string) (Info, error) {
	return defaultResolver.Validate(locale, timeZone)
}
