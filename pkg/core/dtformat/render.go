// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     dtformat
// Description: Template driven rendering of instants into locale text
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dtformat

import (
	"strings"
	"time"

	"github.com/msto63/zonetime/pkg/core/intl"
)

// Renderer renders templates. Locale and zone default to its environment.
type Renderer struct {
	env intl.Environment
}

// NewRenderer creates a renderer for env
func NewRenderer(env intl.Environment) Renderer {
	return Renderer{env: env}
}

// Render renders t with the default environment renderer
func Render(t time.Time, template, optionString string) string {
	return NewRenderer(intl.DefaultEnvironment()).Render(t, template, optionString)
}

// Render substitutes every token of template with the matching part of t.
// Options from the template come first, then those of optionString; for
// the same option the last occurrence wins. A date or time style renders
// the whole value and ignores the template.
func (r Renderer) Render(t time.Time, template, optionString string) string {
	if strings.TrimSpace(template) == "" {
		template = DefaultTemplate
	}
	tp := ParseTemplate(template)
	opts := r.Options(tp, optionString)

	if opts.DateStyle != "" || opts.TimeStyle != "" {
		return strings.TrimSpace(intl.Format(t, opts))
	}
	return tp.finalize(r.substitute(t, tp, opts))
}

// Options merges the options of tp and optionString
func (r Renderer) Options(tp Template, optionString string) intl.Options {
	opts := intl.Options{Locale: r.env.Locale, TimeZone: r.env.TimeZone}

	for _, token := range tp.Tokens() {
		fixedTokens[token].apply(&opts, r.env)
	}
	for _, token := range tp.Dynamic {
		applyDynamic(&opts, r.env, token)
	}
	for _, item := range splitOptions(optionString) {
		if applyDynamic(&opts, r.env, item) {
			continue
		}
		if token, ok := fixedTokens[item]; ok {
			token.apply(&opts, r.env)
		}
	}
	return opts
}

func (r Renderer) substitute(t time.Time, tp Template, opts intl.Options) string {
	parts := make(map[string]string)
	for _, p := range intl.FormatToParts(t, opts) {
		if p.Type != intl.PartLiteral {
			parts[p.Type] = normalizeNumeric(opts, p)
		}
	}

	return wordPattern.ReplaceAllStringFunc(tp.Text, func(word string) string {
		switch word {
		case "dtf":
			return intl.Format(t, withDefaultLayout(opts))
		case "era":
			return parts[intl.PartEra]
		case "dp":
			return parts[intl.PartDayPeriod]
		case "M", "MM":
			return r.monthName(t, opts, word == "M")
		}

		token, ok := fixedTokens[word]
		if !ok {
			return word
		}
		if token.part == "" {
			return ""
		}
		if value := parts[token.part]; value != "" {
			return value
		}
		return word
	})
}

// monthName looks the month up in the option locale and zone
func (r Renderer) monthName(t time.Time, opts intl.Options, short bool) string {
	if loc, _, err := intl.ResolveTimeZone(opts.TimeZone); err == nil {
		t = t.In(loc)
	}
	style := intl.Long
	if short {
		style = intl.Short
	}
	return intl.MonthName(opts.Locale, t.Month(), style)
}

// normalizeNumeric renders "numeric" fields with Western digits and without
// a leading zero; "2-digit" fields keep the locale's digits.
func normalizeNumeric(opts intl.Options, p intl.Part) string {
	var style string
	switch p.Type {
	case intl.PartYear:
		style = opts.Year
	case intl.PartMonth:
		style = opts.Month
	case intl.PartDay:
		style = opts.Day
	case intl.PartHour:
		style = opts.Hour
	case intl.PartMinute:
		style = opts.Minute
	case intl.PartSecond:
		style = opts.Second
	}
	if style != intl.Numeric {
		return p.Value
	}

	value := intl.WesternDigits(p.Value)
	if len(value) > 1 && strings.HasPrefix(value, "0") {
		value = value[1:]
	}
	return value
}

// withDefaultLayout requests a full numeric date and time when no
// component is set
func withDefaultLayout(opts intl.Options) intl.Options {
	if opts.HasComponents() {
		return opts
	}
	opts.Year = intl.Numeric
	opts.Month, opts.Day = intl.TwoDigit, intl.TwoDigit
	opts.Hour, opts.Minute, opts.Second = intl.TwoDigit, intl.TwoDigit, intl.TwoDigit
	return opts
}
