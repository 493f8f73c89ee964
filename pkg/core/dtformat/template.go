// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     dtformat
// Description: Format template parsing: literal blocks and token tables
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dtformat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/zonetime/pkg/core/intl"
)

// DefaultTemplate renders the whole value in the locale's default layout
const DefaultTemplate = "dtf"

var (
	literalBlock   = regexp.MustCompile(`\{(.+?)\}`)
	placeholder    = regexp.MustCompile(`\[(\d+)\]`)
	dynamicPattern = regexp.MustCompile(`\b(tzn|hrc|ds|ts|tz|e|l):([^\s,]+)`)
	wordPattern    = regexp.MustCompile(`[A-Za-z0-9_]+`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// fixedToken maps a template word to an option and the part type it renders.
// Tokens without a part only adjust options.
type fixedToken struct {
	part  string
	apply func(o *intl.Options, env intl.Environment)
}

func set(field *string, value string) {
	*field = value
}

var fixedTokens = map[string]fixedToken{
	"MM":   {intl.PartMonth, func(o *intl.Options, _ intl.Environment) { set(&o.Month, intl.Long) }},
	"M":    {intl.PartMonth, func(o *intl.Options, _ intl.Environment) { set(&o.Month, intl.Short) }},
	"m":    {intl.PartMonth, func(o *intl.Options, _ intl.Environment) { set(&o.Month, intl.Numeric) }},
	"mm":   {intl.PartMonth, func(o *intl.Options, _ intl.Environment) { set(&o.Month, intl.TwoDigit) }},
	"yyyy": {intl.PartYear, func(o *intl.Options, _ intl.Environment) { set(&o.Year, intl.Numeric) }},
	"yy":   {intl.PartYear, func(o *intl.Options, _ intl.Environment) { set(&o.Year, intl.TwoDigit) }},
	"WD":   {intl.PartWeekday, func(o *intl.Options, _ intl.Environment) { set(&o.Weekday, intl.Long) }},
	"wd":   {intl.PartWeekday, func(o *intl.Options, _ intl.Environment) { set(&o.Weekday, intl.Short) }},
	"d":    {intl.PartDay, func(o *intl.Options, _ intl.Environment) { set(&o.Day, intl.Numeric) }},
	"dd":   {intl.PartDay, func(o *intl.Options, _ intl.Environment) { set(&o.Day, intl.TwoDigit) }},
	"h":    {intl.PartHour, func(o *intl.Options, _ intl.Environment) { set(&o.Hour, intl.Numeric) }},
	"hh":   {intl.PartHour, func(o *intl.Options, _ intl.Environment) { set(&o.Hour, intl.TwoDigit) }},
	"mi":   {intl.PartMinute, func(o *intl.Options, _ intl.Environment) { set(&o.Minute, intl.Numeric) }},
	"mmi":  {intl.PartMinute, func(o *intl.Options, _ intl.Environment) { set(&o.Minute, intl.TwoDigit) }},
	"s":    {intl.PartSecond, func(o *intl.Options, _ intl.Environment) { set(&o.Second, intl.Numeric) }},
	"ss":   {intl.PartSecond, func(o *intl.Options, _ intl.Environment) { set(&o.Second, intl.TwoDigit) }},
	"ms":   {intl.PartFractionalSecond, func(o *intl.Options, _ intl.Environment) { o.FractionalSecondDigits = 3 }},
	"msp":  {intl.PartFractionalSecond, func(*intl.Options, intl.Environment) {}},
	"tz":   {intl.PartTimeZoneName, func(o *intl.Options, _ intl.Environment) { set(&o.TimeZoneName, "shortOffset") }},
	"dl":   {"", func(o *intl.Options, env intl.Environment) { set(&o.Locale, env.Locale) }},
	"h12": {"", func(o *intl.Options, _ intl.Environment) {
		off := false
		o.Hour12 = &off
	}},
	"yn": {"", func(o *intl.Options, _ intl.Environment) { set(&o.YearName, "") }},
	"ry": {"", func(o *intl.Options, _ intl.Environment) { set(&o.RelatedYear, "true") }},
}

// applyDynamic handles "key:value" tokens; it reports false for anything else
func applyDynamic(o *intl.Options, env intl.Environment, token string) bool {
	key, value, ok := strings.Cut(token, ":")
	if !ok {
		return false
	}
	switch key {
	case "tzn":
		o.TimeZoneName = value
	case "hrc":
		o.HourCycle = "h" + value
	case "ds":
		o.DateStyle = value
	case "ts":
		o.TimeStyle = value
	case "tz":
		if value != "" {
			o.TimeZone = value
		}
	case "e":
		o.Era = value
	case "l":
		if value == "" || value == "default" {
			value = env.Locale
		}
		o.Locale = value
	default:
		return false
	}
	return true
}

// Template is the parse result of a format template: the text with literal
// blocks replaced by positional placeholders, the blocks themselves, and
// the inline dynamic tokens removed from the text.
type Template struct {
	Text     string
	Literals []string
	Dynamic  []string
}

// ParseTemplate extracts literal blocks and dynamic tokens from raw
func ParseTemplate(raw string) Template {
	var tp Template
	text := literalBlock.ReplaceAllStringFunc(raw, func(block string) string {
		tp.Literals = append(tp.Literals, literalBlock.FindStringSubmatch(block)[1])
		return fmt.Sprintf("[%d]", len(tp.Literals)-1)
	})
	text = strings.NewReplacer("{", "", "}", "").Replace(text)

	text = dynamicPattern.ReplaceAllStringFunc(text, func(token string) string {
		tp.Dynamic = append(tp.Dynamic, token)
		return ""
	})

	tp.Text = " " + strings.TrimSpace(text) + " "
	return tp
}

// Tokens lists the fixed tokens of the template in order of appearance
func (tp Template) Tokens() []string {
	var tokens []string
	for _, word := range wordPattern.FindAllString(tp.Text, -1) {
		if _, ok := fixedTokens[word]; ok {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// HasWord reports whether word appears as a token outside literal blocks
func (tp Template) HasWord(word string) bool {
	for _, w := range wordPattern.FindAllString(tp.Text, -1) {
		if w == word {
			return true
		}
	}
	return false
}

// finalize reinserts the literal blocks and trims the result
func (tp Template) finalize(text string) string {
	text = placeholder.ReplaceAllStringFunc(text, func(m string) string {
		i, err := strconv.Atoi(placeholder.FindStringSubmatch(m)[1])
		if err != nil || i >= len(tp.Literals) {
			return m
		}
		return strings.TrimSpace(tp.Literals[i])
	})
	return strings.TrimSpace(text)
}

// splitOptions turns "l:de-DE, hh" into its whitespace-free items
func splitOptions(optionString string) []string {
	optionString = whitespace.ReplaceAllString(optionString, "")
	if optionString == "" {
		return nil
	}
	return strings.Split(optionString, ",")
}
