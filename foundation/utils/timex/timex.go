// File: timex.go
// Title: Core Time Utilities
// Description: Gregorian calendar helpers, date-string field parsing and
//              the shared time zone cache.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Enhanced European date parsing support (DD.MM.YYYY format)
// - 2026-10-19 v0.2.0: Reduced to calendar primitives, ParseFields with ymd order,
//                       exported LoadLocation cache

package timex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
)

// Common layouts
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Milli    = "2006-01-02T15:04:05.000Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"
	LogTimestamp    = "2006-01-02 15:04:05.000"
)

var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// LoadLocation returns a cached location or loads and caches it
func LoadLocation(tz string) (*time.Location, error) {
	timezoneMu.RLock()
	if loc, exists := timezoneCache[tz]; exists {
		timezoneMu.RUnlock()
		return loc, nil
	}
	timezoneMu.RUnlock()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	timezoneMu.Lock()
	timezoneCache[tz] = loc
	timezoneMu.Unlock()

	return loc, nil
}

// ===============================
// Calendar Primitives
// ===============================

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month in year
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInMonthNr returns the length of month monthNr (1-12) in a common year,
// or a leap year when leap is set.
func DaysInMonthNr(monthNr int, leap bool) (int, error) {
	if monthNr < 1 || monthNr > 12 {
		return 0, mdwerror.Newf("%d not between 1 and 12", monthNr).
			WithCode(mdwerror.CodeMonthOutOfRange).
			WithOperation("timex.DaysInMonthNr").
			WithDetail("monthNr", monthNr)
	}
	year := 1970
	if leap {
		year = 1972
	}
	return DaysInMonth(year, time.Month(monthNr)), nil
}

// WeeksInYear returns the number of ISO-8601 weeks in year (52 or 53)
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// Quarter returns the quarter (1-4) a month falls in
func Quarter(month time.Month) int {
	return (int(month)-1)/3 + 1
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Age calculates the age in whole years at referenceDate
func Age(birthDate, referenceDate time.Time) int {
	age := referenceDate.Year() - birthDate.Year()

	if referenceDate.Month() < birthDate.Month() ||
		(referenceDate.Month() == birthDate.Month() && referenceDate.Day() < birthDate.Day()) {
		age--
	}

	return age
}

// TruncateMilli drops sub-millisecond precision
func TruncateMilli(t time.Time) time.Time {
	return t.Truncate(time.Millisecond)
}

// ===============================
// Field Parsing
// ===============================

// Fields are the wall clock components of a date; Month is 1-12
type Fields struct {
	Year, Month, Day                  int
	Hour, Minute, Second, Millisecond int
}

// In builds the instant the fields describe in loc. Out of range values
// roll over as with time.Date.
func (f Fields) In(loc *time.Location) time.Time {
	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second,
		f.Millisecond*int(time.Millisecond), loc)
}

// FieldsOf reads the wall clock components of t in its own location
func FieldsOf(t time.Time) Fields {
	y, m, d := t.Date()
	return Fields{
		Year: y, Month: int(m), Day: d,
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

var dateSplitter = regexp.MustCompile(`[T :\-/.,]`)

// SplitDateString splits a date string on the separators T, space, colon,
// dash, slash, dot and comma, dropping empty parts.
func SplitDateString(value string) []string {
	var parts []string
	for _, p := range dateSplitter.Split(strings.TrimSpace(value), -1) {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// ParseFields reads a loosely formatted date string. The first three parts
// are year, month and day in ymdOrder (a permutation of "ymd"); up to four
// further parts are hours, minutes, seconds and milliseconds, where
// non-numeric or missing parts count as 0.
func ParseFields(value, ymdOrder string) (Fields, error) {
	if ymdOrder == "" {
		ymdOrder = "ymd"
	}
	order := strings.ToLower(ymdOrder)
	if len(order) != 3 || !strings.Contains(order, "y") || !strings.Contains(order, "m") || !strings.Contains(order, "d") {
		return Fields{}, mdwerror.Newf("invalid year/month/day order %q", ymdOrder).
			WithCode(mdwerror.CodeInvalidDateString).
			WithOperation("timex.ParseFields")
	}

	parts := SplitDateString(value)
	if len(parts) < 3 {
		reason := value
		if strings.TrimSpace(value) == "" {
			reason = "empty date string"
		}
		return Fields{}, mdwerror.Newf("can't convert %q to a date", reason).
			WithCode(mdwerror.CodeInvalidDateString).
			WithOperation("timex.ParseFields")
	}

	date := make(map[byte]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return Fields{}, mdwerror.Wrap(err, fmt.Sprintf("can't convert %q to a date", value)).
				WithCode(mdwerror.CodeInvalidDateString).
				WithOperation("timex.ParseFields")
		}
		date[order[i]] = n
	}

	clock := [4]int{}
	for i := 0; i < 4 && 3+i < len(parts); i++ {
		if n, err := strconv.Atoi(parts[3+i]); err == nil {
			clock[i] = n
		}
	}

	return Fields{
		Year: date['y'], Month: date['m'], Day: date['d'],
		Hour: clock[0], Minute: clock[1], Second: clock[2], Millisecond: clock[3],
	}, nil
}
