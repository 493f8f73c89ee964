// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     zonetime
// Description: Formatting, differences, offsets and arithmetic on values
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package zonetime

import (
	"strings"
	"time"

	"github.com/msto63/zonetime/foundation/core/log"
	"github.com/msto63/zonetime/foundation/utils/timex"
	"github.com/msto63/zonetime/pkg/core/duration"
	"github.com/msto63/zonetime/pkg/core/intl"
	"github.com/msto63/zonetime/pkg/core/localezone"
	"github.com/msto63/zonetime/pkg/core/offset"
)

// Format renders template in the value's locale and the user zone.
// Option strings are applied after the template, last one wins.
func (v *Value) Format(template string, options ...string) string {
	base := localezone.FormatOptions(v.info.Locale, v.f.env.TimeZone)
	optionString := joinOptions(base, options)
	if v.f.logger.IsLevelEnabled(log.LevelTrace) {
		v.f.logger.Trace("rendering template", log.Fields{"template": template, "options": optionString})
	}
	return v.f.renderer.Render(v.t, template, optionString)
}

// ZoneFormat renders template in the value's locale and zone
func (v *Value) ZoneFormat(template string, options ...string) string {
	return v.f.renderer.Render(v.t, template, joinOptions(v.info.FormatOptions, options))
}

func joinOptions(base string, extra []string) string {
	parts := []string{base}
	for _, o := range extra {
		if o = strings.TrimSpace(o); o != "" {
			parts = append(parts, o)
		}
	}
	return strings.Join(parts, ",")
}

// Local renders date and time in the value's locale and zone
func (v *Value) Local() string {
	return intl.Format(v.t, v.localOptions(true, true))
}

// LocalDate renders the date in the value's locale and zone
func (v *Value) LocalDate() string {
	return intl.Format(v.t, v.localOptions(true, false))
}

// LocalTime renders the clock time in the value's locale and zone
func (v *Value) LocalTime() string {
	return intl.Format(v.t, v.localOptions(false, true))
}

func (v *Value) localOptions(date, clock bool) intl.Options {
	opts := intl.Options{Locale: v.info.Locale, TimeZone: v.info.TimeZone}
	if date {
		opts.Year, opts.Month, opts.Day = intl.Numeric, intl.Numeric, intl.Numeric
	}
	if clock {
		opts.Hour, opts.Minute, opts.Second = intl.Numeric, intl.TwoDigit, intl.TwoDigit
	}
	return opts
}

// ISO renders the instant as UTC ISO-8601 with milliseconds
func (v *Value) ISO() string {
	return v.t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// UnixEpochTimestamp returns whole seconds since the Unix epoch
func (v *Value) UnixEpochTimestamp() int64 {
	return v.t.Unix()
}

// ToString renders the value in its zone the way a JavaScript Date prints,
// e.g. "Sat Jan 1 2000 00:00:00 GMT+0100 (Central European Standard Time)".
func (v *Value) ToString() string {
	zoned := v.t.In(v.location())
	gmt := intl.ZoneName(zoned, "longOffset", "en-US")
	if gmt == "GMT" {
		gmt = "GMT+00:00"
	}
	gmt = strings.Replace(gmt, ":", "", 1)

	opts := localezone.FormatOptions("en-US", v.info.TimeZone) + ",tzn:long,hrc:23"
	return v.f.renderer.Render(v.t, "wd M d yyyy hh:mmi:ss {"+gmt+"} (tz)", opts)
}

// Names holds the month and weekday names of a value in its locale
type Names struct {
	Locale     string   `json:"locale" yaml:"locale"`
	TimeZone   string   `json:"timeZone" yaml:"timeZone"`
	MonthName  string   `json:"monthName" yaml:"monthName"`
	DayName    string   `json:"dayName" yaml:"dayName"`
	MonthNames NameList `json:"monthNames" yaml:"monthNames"`
	DayNames   NameList `json:"dayNames" yaml:"dayNames"`
}

// Names returns the names of the value's month and weekday in mode
func (v *Value) Names(mode ZoneMode) Names {
	f := v.fields(mode)
	locale := v.info.Locale
	return Names{
		Locale:     locale,
		TimeZone:   v.zoneFor(mode),
		MonthName:  intl.MonthName(locale, time.Month(f.Month), intl.Long),
		DayName:    intl.WeekdayName(locale, time.Weekday(v.Day(mode)), intl.Long),
		MonthNames: NameList{Long: intl.MonthNames(locale, intl.Long), Short: intl.MonthNames(locale, intl.Short)},
		DayNames:   NameList{Long: intl.WeekdayNames(locale, intl.Long), Short: intl.WeekdayNames(locale, intl.Short)},
	}
}

// MonthName returns the long month name in the value's locale
func (v *Value) MonthName(mode ZoneMode) string { return v.Names(mode).MonthName }

// DayName returns the long weekday name in the value's locale
func (v *Value) DayName(mode ZoneMode) string { return v.Names(mode).DayName }

// IsLeapYear reports whether the zone year is a leap year
func (v *Value) IsLeapYear() bool { return timex.IsLeapYear(v.Year(Zone)) }

// DaysInMonth returns the length of the zone month
func (v *Value) DaysInMonth() int {
	f := v.fields(Zone)
	return timex.DaysInMonth(f.Year, time.Month(f.Month))
}

// WeekNr returns the ISO-8601 week of the zone date
func (v *Value) WeekNr() int {
	f := v.fields(Zone)
	_, week := time.Date(f.Year, time.Month(f.Month), f.Day, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// WeeksInYear returns the ISO-8601 weeks of the zone year
func (v *Value) WeeksInYear() int { return timex.WeeksInYear(v.Year(Zone)) }

var quarterNames = [...]string{"First", "Second", "Third", "Fourth"}

// QuarterNr returns the quarter (1-4) of the zone month
func (v *Value) QuarterNr() int { return timex.Quarter(time.Month(v.Month(Zone))) }

// Quarter names the quarter, e.g. "First"
func (v *Value) Quarter() string { return quarterNames[v.QuarterNr()-1] }

// Age returns the whole years from the value until now
func (v *Value) Age() int { return v.DifferenceTo(nil).Years }

// AgeFull describes the time from the value until now
func (v *Value) AgeFull() string { return v.DifferenceTo(nil).Clean }

// DifferenceTo compares the wall clocks of v in its zone and other in its
// zone. A nil other means now in v's zone.
func (v *Value) DifferenceTo(other *Value) duration.Result {
	if other == nil {
		other = v.f.value(v.f.now(), v.info)
	}
	return v.f.calc.Zoned(v.t, v.info.TimeZone, other.t, other.info.TimeZone)
}

// DifferenceUntil describes DifferenceTo in words
func (v *Value) DifferenceUntil(other *Value) string {
	return v.DifferenceTo(other).Clean
}

// DaysUntil returns the signed whole days until other
func (v *Value) DaysUntil(other *Value) int {
	if other == nil {
		other = v
	}
	r := v.f.calc.Diff(v.t, other.t)
	if r.Sign == "-" {
		return int(-r.DiffInDays)
	}
	return int(r.DiffInDays)
}

// OffsetFrom returns "±HH:MM", positive when other's zone clock reads
// later than v's. A nil other means UTC.
func (v *Value) OffsetFrom(other *Value) string {
	zone := offset.UTC
	if other != nil {
		zone = other.info.TimeZone
	}
	return v.f.offsets.Between(v.t, v.info.TimeZone, zone).Offset
}

// UTCOffset is OffsetFrom(nil)
func (v *Value) UTCOffset() string {
	return v.f.offsets.UTCOffset(v.t, v.info.TimeZone).Offset
}

// UTC returns a copy in the UTC zone
func (v *Value) UTC() *Value {
	return v.Clone().Relocate(Descriptor{Locale: v.info.Locale, TimeZone: offset.UTC})
}

// HasDST reports whether the value's zone observes DST in the zone year
func (v *Value) HasDST() bool {
	return offset.HasDST(v.info.TimeZone, v.Year(Zone))
}

// DSTActive reports whether DST is in effect at the instant
func (v *Value) DSTActive() bool {
	return offset.DSTActive(v.t, v.info.TimeZone)
}

// Info summarizes the value against the user environment
type Info struct {
	UserLocale               LocaleSummary `json:"userLocale" yaml:"userLocale"`
	InstanceLocale           LocaleSummary `json:"instanceLocale" yaml:"instanceLocale"`
	DateTimeUserTimezone     DateTimeInfo  `json:"dateTimeUserTimezone" yaml:"dateTimeUserTimezone"`
	DateTimeInstanceTimezone DateTimeInfo  `json:"dateTimeInstanceTimezone" yaml:"dateTimeInstanceTimezone"`
	OffsetFromLocal          string        `json:"offsetFromLocal" yaml:"offsetFromLocal"`
	OffsetFromUTC            string        `json:"offsetFromUTC" yaml:"offsetFromUTC"`
}

// LocaleSummary is a locale, zone and the value rendered there
type LocaleSummary struct {
	Locale   string `json:"locale" yaml:"locale"`
	TimeZone string `json:"timeZone" yaml:"timeZone"`
	String   string `json:"string" yaml:"string"`
}

// Info compares the value's zone with the user zone and UTC
func (v *Value) Info() Info {
	user := v.UserLocaleInfo()
	local := v.Clone().Relocate(Descriptor{Locale: user.Locale, TimeZone: user.TimeZone})

	return Info{
		UserLocale:               LocaleSummary{Locale: user.Locale, TimeZone: user.TimeZone, String: local.ToString()},
		InstanceLocale:           LocaleSummary{Locale: v.info.Locale, TimeZone: v.info.TimeZone, String: v.ToString()},
		DateTimeUserTimezone:     v.DateTime(User),
		DateTimeInstanceTimezone: v.DateTime(Zone),
		OffsetFromLocal:          v.f.offsets.InWords(v.t, user.TimeZone, v.info.TimeZone),
		OffsetFromUTC:            v.f.offsets.InWords(v.t, v.info.TimeZone, offset.UTC),
	}
}

// Clone returns an independent copy
func (v *Value) Clone() *Value {
	return v.f.value(v.t, v.info)
}

// CloneWith returns a copy holding t. A zero t keeps the instant.
func (v *Value) CloneWith(t time.Time) *Value {
	if t.IsZero() {
		return v.Clone()
	}
	return v.f.value(t, v.info)
}

// Revalue replaces the instant in place and, with a descriptor, the locale
// and zone. A zero t leaves the value unchanged.
func (v *Value) Revalue(t time.Time, d ...Descriptor) *Value {
	if t.IsZero() {
		return v
	}
	v.t = t.Truncate(time.Millisecond)
	if len(d) > 0 {
		v.Relocate(d[0])
	}
	return v
}

// Relocate replaces locale and zone in place. Empty parts of d keep the
// current ones.
func (v *Value) Relocate(d Descriptor) *Value {
	locale, zone := d.Values()
	if locale == "" {
		locale = v.info.Locale
	}
	if zone == "" {
		zone = v.info.TimeZone
	}
	v.info = v.f.resolver.Resolve(locale, zone)
	return v
}

// Add returns a copy moved by an expression like "1 year, 3 months".
// Fields change on the wall clock of the value's zone.
func (v *Value) Add(expr string) *Value {
	return v.apply(duration.ParseExpression(expr))
}

// Subtract is Add with every count negated
func (v *Value) Subtract(expr string) *Value {
	return v.apply(duration.Negate(duration.ParseExpression(expr)))
}

func (v *Value) apply(terms []duration.Term) *Value {
	return v.f.value(duration.Apply(v.t, v.location(), terms), v.info)
}

// Range bounds a Between check. Include makes a bound inclusive.
type Range struct {
	Start, End               *Value
	IncludeStart, IncludeEnd bool
}

// Between reports whether the value lies within r. Without an end it
// reports whether the value is after the start.
func (v *Value) Between(r Range) bool {
	if r.Start == nil {
		return false
	}
	ms, start := v.t.UnixMilli(), r.Start.t.UnixMilli()
	if r.End == nil {
		return ms > start
	}
	end := r.End.t.UnixMilli()
	afterStart := ms > start || (r.IncludeStart && ms == start)
	beforeEnd := ms < end || (r.IncludeEnd && ms == end)
	return afterStart && beforeEnd
}

// IsPast reports whether the value is before ref, now when ref is nil
func (v *Value) IsPast(ref *Value) bool {
	return v.t.Before(v.refTime(ref))
}

// IsFuture reports whether the value is after ref, now when ref is nil
func (v *Value) IsFuture(ref *Value) bool {
	return v.t.After(v.refTime(ref))
}

func (v *Value) refTime(ref *Value) time.Time {
	if ref == nil {
		return v.f.now()
	}
	return ref.t
}

// RemoveTime returns a copy at midnight of the zone date
func (v *Value) RemoveTime() *Value {
	return v.Clone().Midnight()
}

// Midnight sets the zone clock to 00:00:00.000 in place
func (v *Value) Midnight() *Value {
	v.t = timex.StartOfDay(v.t.In(v.location()))
	return v
}

var englishWeekdays = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

// weekday accepts English short or long names and long names of locale
func weekday(name, locale string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) >= 3 {
		if d, ok := englishWeekdays[name[:3]]; ok && strings.HasPrefix(strings.ToLower(d.String()), name) {
			return d, true
		}
	}
	for i, local := range intl.WeekdayNames(locale, intl.Long) {
		if strings.ToLower(local) == name {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

// Next returns midnight of the next given weekday in the value's zone.
// When today is that weekday, keepToday returns today instead of a week
// later. An unknown day name returns today's midnight.
func (v *Value) Next(day string, keepToday bool) *Value {
	return v.walk(day, 1, keepToday)
}

// Previous is Next walking backwards
func (v *Value) Previous(day string, keepToday bool) *Value {
	return v.walk(day, -1, keepToday)
}

func (v *Value) walk(day string, step int, keepToday bool) *Value {
	cursor := v.RemoveTime()
	target, ok := weekday(day, v.info.Locale)
	if !ok {
		return cursor
	}
	if keepToday && cursor.Day(Zone) == int(target) {
		return cursor
	}
	terms := []duration.Term{{Count: step, Unit: duration.UnitDay}}
	for {
		cursor = cursor.apply(terms)
		if cursor.Day(Zone) == int(target) {
			return cursor
		}
	}
}

// FirstWeekday returns midnight of the Monday, or Sunday, starting the
// value's week.
func (v *Value) FirstWeekday(sunday bool) *Value {
	day := "monday"
	if sunday {
		day = "sunday"
	}
	return v.Previous(day, true)
}

// FullMonth returns one value per day of the zone month at midnight.
// An empty locale keeps the value's locale.
func (v *Value) FullMonth(locale string) []*Value {
	if locale == "" {
		locale = v.info.Locale
	}
	f := v.fields(Zone)
	days, _ := v.f.monthDays(f.Year, f.Month, Descriptor{Locale: locale, TimeZone: v.info.TimeZone})
	return days
}
