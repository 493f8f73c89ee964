// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     intl
// Description: Option driven date/time formatting into typed parts
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package intl

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
)

// Part types produced by FormatToParts
const (
	PartYear             = "year"
	PartMonth            = "month"
	PartDay              = "day"
	PartWeekday          = "weekday"
	PartHour             = "hour"
	PartMinute           = "minute"
	PartSecond           = "second"
	PartFractionalSecond = "fractionalSecond"
	PartDayPeriod        = "dayPeriod"
	PartTimeZoneName     = "timeZoneName"
	PartEra              = "era"
	PartLiteral          = "literal"
)

// Option values
const (
	Numeric  = "numeric"
	TwoDigit = "2-digit"
	Long     = "long"
	Short    = "short"
	Narrow   = "narrow"
)

// Options is the formatting option bag. Empty fields are unset.
// RelatedYear and YearName only apply to lunisolar calendars and produce no
// parts in the Gregorian calendar.
type Options struct {
	Locale                 string
	TimeZone               string
	Year                   string
	Month                  string
	Day                    string
	Weekday                string
	Hour                   string
	Minute                 string
	Second                 string
	FractionalSecondDigits int
	TimeZoneName           string
	HourCycle              string
	Hour12                 *bool
	DateStyle              string
	TimeStyle              string
	Era                    string
	RelatedYear            string
	YearName               string
}

// Part is one typed segment of a formatted date
type Part struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// HasComponents reports whether any date or time field is requested
func (o Options) HasComponents() bool {
	return o.Year != "" || o.Month != "" || o.Day != "" || o.Weekday != "" ||
		o.Hour != "" || o.Minute != "" || o.Second != "" || o.FractionalSecondDigits > 0
}

// ResolvedHourCycle applies Hour12 over HourCycle over the locale default
func (o Options) ResolvedHourCycle() string {
	if o.Hour12 != nil {
		if *o.Hour12 {
			return "h12"
		}
		return "h23"
	}
	switch o.HourCycle {
	case "h11", "h12", "h23", "h24":
		return o.HourCycle
	}
	return DefaultHourCycle(o.locale())
}

func (o Options) locale() string {
	if o.Locale == "" {
		return DefaultEnvironment().Locale
	}
	return o.Locale
}

func (o Options) in(t time.Time) time.Time {
	if o.TimeZone == "" {
		return t
	}
	if loc, _, err := ResolveTimeZone(o.TimeZone); err == nil {
		return t.In(loc)
	}
	return t
}

// FormatToParts renders t as typed parts in locale order. Without any
// requested component the numeric date is rendered.
func FormatToParts(t time.Time, opts Options) []Part {
	if !opts.HasComponents() {
		opts.Year, opts.Month, opts.Day = Numeric, Numeric, Numeric
	}
	t = opts.in(t)
	locale := opts.locale()
	tr := Translator(locale)

	var b partBuilder
	if opts.Weekday != "" {
		b.add(PartWeekday, weekdayName(tr, t.Weekday(), opts.Weekday))
	}

	date := dateParts(t, opts, locale, tr)
	if len(date) > 0 {
		if opts.Weekday != "" {
			b.lit(", ")
		}
		b.parts = append(b.parts, date...)
	}
	if opts.Era != "" {
		b.lit(" ")
		b.add(PartEra, eraName(t.Year(), opts.Era))
	}

	clock := timeParts(t, opts, locale)
	if len(clock) > 0 {
		b.lit(", ")
		b.parts = append(b.parts, clock...)
	}

	if opts.TimeZoneName != "" {
		b.lit(" ")
		b.add(PartTimeZoneName, ZoneName(t, opts.TimeZoneName, locale))
	}
	return b.parts
}

// Format renders t as one string. DateStyle and TimeStyle select the
// locale presets, otherwise the parts are joined.
func Format(t time.Time, opts Options) string {
	if opts.DateStyle != "" || opts.TimeStyle != "" {
		t = opts.in(t)
		tr := Translator(opts.locale())
		var out []string
		if opts.DateStyle != "" {
			out = append(out, dateStyle(tr, t, opts.DateStyle))
		}
		if opts.TimeStyle != "" {
			out = append(out, timeStyle(tr, t, opts.TimeStyle))
		}
		return strings.Join(out, ", ")
	}

	var sb strings.Builder
	for _, p := range FormatToParts(t, opts) {
		sb.WriteString(p.Value)
	}
	return sb.String()
}

type partBuilder struct {
	parts []Part
}

func (b *partBuilder) add(typ, value string) {
	b.parts = append(b.parts, Part{Type: typ, Value: value})
}

// lit appends a literal between two typed parts only
func (b *partBuilder) lit(value string) {
	if len(b.parts) == 0 || b.parts[len(b.parts)-1].Type == PartLiteral {
		return
	}
	b.add(PartLiteral, value)
}

func dateParts(t time.Time, opts Options, locale string, tr locales.Translator) []Part {
	order, sep := dateOrder(locale)
	textMonth := opts.Month == Long || opts.Month == Short || opts.Month == Narrow
	if textMonth {
		sep = " "
	}

	var b partBuilder
	for _, field := range order {
		switch field {
		case 'y':
			if opts.Year == "" {
				continue
			}
			if textMonth && len(b.parts) > 0 && b.parts[len(b.parts)-1].Type == PartDay && order[0] == 'm' {
				b.add(PartLiteral, ", ")
			} else {
				b.lit(sep)
			}
			year := t.Year()
			if opts.Year == TwoDigit {
				b.add(PartYear, ShapeNumber(locale, year%100, 2))
			} else {
				b.add(PartYear, ShapeNumber(locale, year, 1))
			}
		case 'm':
			if opts.Month == "" {
				continue
			}
			b.lit(sep)
			if textMonth {
				b.add(PartMonth, monthName(tr, t.Month(), opts.Month))
			} else {
				b.add(PartMonth, numberPart(locale, int(t.Month()), opts.Month))
			}
		case 'd':
			if opts.Day == "" {
				continue
			}
			b.lit(sep)
			b.add(PartDay, numberPart(locale, t.Day(), opts.Day))
		}
	}
	return b.parts
}

func timeParts(t time.Time, opts Options, locale string) []Part {
	var b partBuilder
	cycle := opts.ResolvedHourCycle()

	if opts.Hour != "" {
		b.add(PartHour, numberPart(locale, cycleHour(t.Hour(), cycle), opts.Hour))
	}
	if opts.Minute != "" {
		b.lit(":")
		b.add(PartMinute, numberPart(locale, t.Minute(), opts.Minute))
	}
	if opts.Second != "" {
		b.lit(":")
		b.add(PartSecond, numberPart(locale, t.Second(), opts.Second))
	}
	if digits := opts.FractionalSecondDigits; digits > 0 {
		if digits > 3 {
			digits = 3
		}
		b.lit(".")
		ms := ShapeNumber(locale, t.Nanosecond()/int(time.Millisecond), 3)
		b.add(PartFractionalSecond, string([]rune(ms)[:digits]))
	}
	if opts.Hour != "" && (cycle == "h11" || cycle == "h12") {
		am, pm := DayPeriods(locale)
		b.lit(" ")
		if t.Hour() < 12 {
			b.add(PartDayPeriod, am)
		} else {
			b.add(PartDayPeriod, pm)
		}
	}
	return b.parts
}

func numberPart(locale string, n int, style string) string {
	if style == TwoDigit {
		return ShapeNumber(locale, n, 2)
	}
	return ShapeNumber(locale, n, 1)
}

func cycleHour(hour int, cycle string) int {
	switch cycle {
	case "h12":
		if hour%12 == 0 {
			return 12
		}
		return hour % 12
	case "h11":
		return hour % 12
	case "h24":
		if hour == 0 {
			return 24
		}
	}
	return hour
}

func monthName(tr locales.Translator, month time.Month, style string) string {
	switch style {
	case Short:
		return tr.MonthAbbreviated(month)
	case Narrow:
		return tr.MonthNarrow(month)
	}
	return tr.MonthWide(month)
}

func weekdayName(tr locales.Translator, day time.Weekday, style string) string {
	switch style {
	case Short:
		return tr.WeekdayAbbreviated(day)
	case Narrow:
		return tr.WeekdayNarrow(day)
	}
	return tr.WeekdayWide(day)
}

// MonthName returns the locale's name of month in the given style
func MonthName(locale string, month time.Month, style string) string {
	return monthName(Translator(locale), month, style)
}

// WeekdayName returns the locale's name of day in the given style
func WeekdayName(locale string, day time.Weekday, style string) string {
	return weekdayName(Translator(locale), day, style)
}

// MonthNames lists the twelve month names, January first
func MonthNames(locale, style string) []string {
	tr := Translator(locale)
	names := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		names = append(names, monthName(tr, m, style))
	}
	return names
}

// WeekdayNames lists the seven weekday names, Sunday first
func WeekdayNames(locale, style string) []string {
	tr := Translator(locale)
	names := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		names = append(names, weekdayName(tr, d, style))
	}
	return names
}

func eraName(year int, style string) string {
	ad := year > 0
	switch style {
	case Long:
		if ad {
			return "Anno Domini"
		}
		return "Before Christ"
	case Narrow:
		if ad {
			return "A"
		}
		return "B"
	}
	if ad {
		return "AD"
	}
	return "BC"
}

// ZoneName renders the zone of t. shortOffset gives "GMT+1", longOffset
// "GMT+01:00", short the zone abbreviation and long the CLDR zone name,
// both falling back to shortOffset when the zone has no alphabetic
// abbreviation.
func ZoneName(t time.Time, style, locale string) string {
	abbr, offset := t.Zone()
	switch style {
	case "longOffset", "longGeneric":
		return longOffset(offset)
	case Short, "shortGeneric":
		if isAlpha(abbr) {
			return abbr
		}
	case Long:
		if isAlpha(abbr) {
			return longZoneName(t, abbr, locale)
		}
	}
	return shortOffset(offset)
}

func longZoneName(t time.Time, abbr, locale string) string {
	tr := Translator(locale)
	full, medium := tr.FmtTimeFull(t), tr.FmtTimeMedium(t)
	if strings.HasPrefix(full, medium) {
		if name := strings.TrimSpace(strings.TrimPrefix(full, medium)); name != "" {
			return name
		}
	}
	return abbr
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

func splitOffset(offset int) (string, int, int) {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return sign, offset / 3600, offset % 3600 / 60
}

func shortOffset(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign, h, m := splitOffset(offset)
	if m == 0 {
		return fmt.Sprintf("GMT%s%d", sign, h)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, h, m)
}

func longOffset(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign, h, m := splitOffset(offset)
	return fmt.Sprintf("GMT%s%02d:%02d", sign, h, m)
}

func dateStyle(tr locales.Translator, t time.Time, style string) string {
	switch style {
	case Short:
		return tr.FmtDateShort(t)
	case Long:
		return tr.FmtDateLong(t)
	case "full":
		return tr.FmtDateFull(t)
	}
	return tr.FmtDateMedium(t)
}

func timeStyle(tr locales.Translator, t time.Time, style string) string {
	switch style {
	case Short:
		return tr.FmtTimeShort(t)
	case Long:
		return tr.FmtTimeLong(t)
	case "full":
		return tr.FmtTimeFull(t)
	}
	return tr.FmtTimeMedium(t)
}
