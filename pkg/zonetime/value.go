// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     zonetime
// Description: Instant plus locale and zone, read in two projections
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package zonetime

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/msto63/zonetime/foundation/utils/timex"
	"github.com/msto63/zonetime/pkg/core/intl"
	"github.com/msto63/zonetime/pkg/core/localezone"
)

// ZoneMode selects the projection a field is read in
type ZoneMode int

const (
	// User reads fields in the environment zone
	User ZoneMode = iota
	// Zone reads fields in the value's own zone
	Zone
)

func (m ZoneMode) String() string {
	if m == Zone {
		return "zone"
	}
	return "user"
}

// Value is an instant with a locale and time zone. Setters, Revalue,
// Relocate and Midnight change the value in place; every other operation
// returns a new Value. A Value must not be mutated concurrently.
type Value struct {
	t    time.Time
	info localezone.Info
	f    *Factory
}

// Time returns the instant in the value's zone
func (v *Value) Time() time.Time {
	return v.t.In(v.location())
}

// Locale returns the resolved locale
func (v *Value) Locale() string { return v.info.Locale }

// TimeZone returns the resolved IANA zone
func (v *Value) TimeZone() string { return v.info.TimeZone }

// MarshalJSON encodes the value as its ISO string
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ISO())
}

// MarshalYAML encodes the value as its ISO string
func (v *Value) MarshalYAML() (any, error) {
	return v.ISO(), nil
}

// LocaleInfo returns the value's locale and zone
func (v *Value) LocaleInfo() localezone.Info { return v.info }

// UserLocaleInfo returns the environment locale and zone
func (v *Value) UserLocaleInfo() localezone.Info {
	return v.f.resolver.Resolve("", "")
}

func (v *Value) location() *time.Location {
	return v.f.location(v.info.TimeZone)
}

func (v *Value) zoneFor(mode ZoneMode) string {
	if mode == Zone {
		return v.info.TimeZone
	}
	return v.f.env.TimeZone
}

// fields reads the wall clock of mode's zone from the formatted parts
func (v *Value) fields(mode ZoneMode) timex.Fields {
	parts := intl.FormatToParts(v.t, intl.Options{
		Locale:    "en-CA",
		TimeZone:  v.zoneFor(mode),
		Year:      intl.Numeric,
		Month:     intl.Numeric,
		Day:       intl.Numeric,
		Hour:      intl.Numeric,
		Minute:    intl.Numeric,
		Second:    intl.Numeric,
		HourCycle: "h23",
	})

	f := timex.Fields{Millisecond: v.t.Nanosecond() / int(time.Millisecond)}
	for _, p := range parts {
		n, err := strconv.Atoi(intl.WesternDigits(p.Value))
		if err != nil {
			continue
		}
		switch p.Type {
		case intl.PartYear:
			f.Year = n
		case intl.PartMonth:
			f.Month = n
		case intl.PartDay:
			f.Day = n
		case intl.PartHour:
			f.Hour = n
		case intl.PartMinute:
			f.Minute = n
		case intl.PartSecond:
			f.Second = n
		}
	}
	return f
}

// DateInfo is the date of a value in one projection; Month is 1-12
type DateInfo struct {
	TimeZone string `json:"values4Timezone" yaml:"values4Timezone"`
	Year     int    `json:"year" yaml:"year"`
	Month    int    `json:"month" yaml:"month"`
	Date     int    `json:"date" yaml:"date"`
}

// TimeInfo is the clock time of a value in one projection
type TimeInfo struct {
	TimeZone     string `json:"values4Timezone" yaml:"values4Timezone"`
	Hours        int    `json:"hours" yaml:"hours"`
	Minutes      int    `json:"minutes" yaml:"minutes"`
	Seconds      int    `json:"seconds" yaml:"seconds"`
	Milliseconds int    `json:"milliseconds" yaml:"milliseconds"`
}

// DateTimeInfo combines DateInfo and TimeInfo
type DateTimeInfo struct {
	TimeZone     string `json:"values4Timezone" yaml:"values4Timezone"`
	Year         int    `json:"year" yaml:"year"`
	Month        int    `json:"month" yaml:"month"`
	Date         int    `json:"date" yaml:"date"`
	Hours        int    `json:"hours" yaml:"hours"`
	Minutes      int    `json:"minutes" yaml:"minutes"`
	Seconds      int    `json:"seconds" yaml:"seconds"`
	Milliseconds int    `json:"milliseconds" yaml:"milliseconds"`
}

// Year returns the full year in the given projection
func (v *Value) Year(mode ZoneMode) int { return v.fields(mode).Year }

// Month returns the month, 1 for January
func (v *Value) Month(mode ZoneMode) int { return v.fields(mode).Month }

// DateNr returns the day of the month
func (v *Value) DateNr(mode ZoneMode) int { return v.fields(mode).Day }

// Hours returns the hour on a 24-hour clock
func (v *Value) Hours(mode ZoneMode) int { return v.fields(mode).Hour }

// Minutes returns the minute of the hour
func (v *Value) Minutes(mode ZoneMode) int { return v.fields(mode).Minute }

// Seconds returns the second of the minute
func (v *Value) Seconds(mode ZoneMode) int { return v.fields(mode).Second }

// Milliseconds returns the millisecond of the second
func (v *Value) Milliseconds(mode ZoneMode) int { return v.fields(mode).Millisecond }

// Day returns the weekday, 0 for Sunday
func (v *Value) Day(mode ZoneMode) int {
	f := v.fields(mode)
	return int(time.Date(f.Year, time.Month(f.Month), f.Day, 0, 0, 0, 0, time.UTC).Weekday())
}

// DateFields returns year, month and date in mode
func (v *Value) DateFields(mode ZoneMode) DateInfo {
	f := v.fields(mode)
	return DateInfo{TimeZone: v.zoneFor(mode), Year: f.Year, Month: f.Month, Date: f.Day}
}

// TimeFields returns the clock time in mode
func (v *Value) TimeFields(mode ZoneMode) TimeInfo {
	f := v.fields(mode)
	return TimeInfo{
		TimeZone: v.zoneFor(mode),
		Hours:    f.Hour, Minutes: f.Minute, Seconds: f.Second, Milliseconds: f.Millisecond,
	}
}

// DateTime returns every field in mode
func (v *Value) DateTime(mode ZoneMode) DateTimeInfo {
	f := v.fields(mode)
	return DateTimeInfo{
		TimeZone: v.zoneFor(mode),
		Year:     f.Year, Month: f.Month, Date: f.Day,
		Hours: f.Hour, Minutes: f.Minute, Seconds: f.Second, Milliseconds: f.Millisecond,
	}
}

// DateValues returns [year, month, date]
func (v *Value) DateValues(mode ZoneMode) []int {
	f := v.fields(mode)
	return []int{f.Year, f.Month, f.Day}
}

// TimeValues returns [hours, minutes, seconds, milliseconds]
func (v *Value) TimeValues(mode ZoneMode) []int {
	f := v.fields(mode)
	return []int{f.Hour, f.Minute, f.Second, f.Millisecond}
}

// DateTimeValues returns every field as a slice, year first
func (v *Value) DateTimeValues(mode ZoneMode) []int {
	f := v.fields(mode)
	return []int{f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Millisecond}
}

// DateParts selects the date fields a SetDate call changes
type DateParts struct {
	Year, Month, Date *int
}

// TimeParts selects the clock fields a SetTime call changes
type TimeParts struct {
	Hours, Minutes, Seconds, Milliseconds *int
}

// Int returns a pointer to n, for DateParts and TimeParts
func Int(n int) *int { return &n }

// adjust sets the zone projection to target by applying the difference of
// each field to the wall clock of the environment zone.
func (v *Value) adjust(target func(*timex.Fields)) {
	current := v.fields(Zone)
	want := current
	target(&want)

	env := timex.FieldsOf(v.t.In(v.f.envLoc))
	env.Year += want.Year - current.Year
	env.Month += want.Month - current.Month
	env.Day += want.Day - current.Day
	env.Hour += want.Hour - current.Hour
	env.Minute += want.Minute - current.Minute
	env.Second += want.Second - current.Second
	env.Millisecond += want.Millisecond - current.Millisecond
	v.t = env.In(v.f.envLoc)
}

// SetYear sets the year of the zone projection
func (v *Value) SetYear(n int) { v.adjust(func(f *timex.Fields) { f.Year = n }) }

// SetMonth sets the month (1-12) of the zone projection
func (v *Value) SetMonth(n int) { v.adjust(func(f *timex.Fields) { f.Month = n }) }

// SetDateNr sets the day of month of the zone projection
func (v *Value) SetDateNr(n int) { v.adjust(func(f *timex.Fields) { f.Day = n }) }

// SetHours sets the hour of the zone projection
func (v *Value) SetHours(n int) { v.adjust(func(f *timex.Fields) { f.Hour = n }) }

// SetMinutes sets the minute of the zone projection
func (v *Value) SetMinutes(n int) { v.adjust(func(f *timex.Fields) { f.Minute = n }) }

// SetSeconds sets the second of the zone projection
func (v *Value) SetSeconds(n int) { v.adjust(func(f *timex.Fields) { f.Second = n }) }

// SetMilliseconds sets the millisecond
func (v *Value) SetMilliseconds(n int) { v.adjust(func(f *timex.Fields) { f.Millisecond = n }) }

// SetDate sets the non-nil date fields at once
func (v *Value) SetDate(p DateParts) {
	v.adjust(func(f *timex.Fields) {
		setIf(&f.Year, p.Year)
		setIf(&f.Month, p.Month)
		setIf(&f.Day, p.Date)
	})
}

// SetTime sets the non-nil clock fields at once
func (v *Value) SetTime(p TimeParts) {
	v.adjust(func(f *timex.Fields) {
		setIf(&f.Hour, p.Hours)
		setIf(&f.Minute, p.Minutes)
		setIf(&f.Second, p.Seconds)
		setIf(&f.Millisecond, p.Milliseconds)
	})
}

func setIf(field *int, value *int) {
	if value != nil {
		*field = *value
	}
}
