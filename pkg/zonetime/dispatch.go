// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     zonetime
// Description: Name based member access over native, computed, aggregate
//              and custom members
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package zonetime

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
	"github.com/msto63/zonetime/pkg/core/duration"
)

type member struct {
	get func(v *Value, args []any) any
	set func(v *Value, value any) bool
}

func getter(fn func(v *Value) any) member {
	return member{get: func(v *Value, _ []any) any { return fn(v) }}
}

func method(fn func(v *Value, args []any) any) member {
	return member{get: fn}
}

func intSetter(get func(v *Value) any, set func(v *Value, n int)) member {
	return member{
		get: func(v *Value, _ []any) any { return get(v) },
		set: func(v *Value, value any) bool {
			n, ok := toInt(value)
			if ok {
				set(v, n)
			}
			return ok
		},
	}
}

// native members pass through to the instant
var native = map[string]func(t time.Time) any{
	"getTime":   func(t time.Time) any { return t.UnixMilli() },
	"valueOf":   func(t time.Time) any { return t.UnixMilli() },
	"Unix":      func(t time.Time) any { return t.Unix() },
	"UnixMilli": func(t time.Time) any { return t.UnixMilli() },
	"YearDay":   func(t time.Time) any { return t.YearDay() },
	"IsZero":    func(t time.Time) any { return t.IsZero() },
	"Weekday":   func(t time.Time) any { return t.Weekday() },
	"ISOWeek": func(t time.Time) any {
		year, week := t.ISOWeek()
		return []int{year, week}
	},
	"String": func(t time.Time) any { return t.String() },
}

var (
	catalogue  map[string]member
	aggregates map[string]member
)

func init() {
	catalogue = map[string]member{
		"year":         intSetter(func(v *Value) any { return v.Year(User) }, (*Value).SetYear),
		"month":        intSetter(func(v *Value) any { return v.Month(User) }, (*Value).SetMonth),
		"dateNr":       intSetter(func(v *Value) any { return v.DateNr(User) }, (*Value).SetDateNr),
		"hours":        intSetter(func(v *Value) any { return v.Hours(User) }, (*Value).SetHours),
		"minutes":      intSetter(func(v *Value) any { return v.Minutes(User) }, (*Value).SetMinutes),
		"seconds":      intSetter(func(v *Value) any { return v.Seconds(User) }, (*Value).SetSeconds),
		"milliseconds": intSetter(func(v *Value) any { return v.Milliseconds(User) }, (*Value).SetMilliseconds),
		"day":          getter(func(v *Value) any { return v.Day(User) }),

		"zoneYear":    getter(func(v *Value) any { return v.Year(Zone) }),
		"zoneMonth":   getter(func(v *Value) any { return v.Month(Zone) }),
		"zoneDateNr":  getter(func(v *Value) any { return v.DateNr(Zone) }),
		"zoneDay":     getter(func(v *Value) any { return v.Day(Zone) }),
		"zoneHours":   getter(func(v *Value) any { return v.Hours(Zone) }),
		"zoneMinutes": getter(func(v *Value) any { return v.Minutes(Zone) }),
		"zoneSeconds": getter(func(v *Value) any { return v.Seconds(Zone) }),

		"date": {
			get: func(v *Value, _ []any) any { return v.DateFields(User) },
			set: func(v *Value, value any) bool {
				p, ok := toDateParts(value)
				if ok {
					v.SetDate(p)
				}
				return ok
			},
		},
		"time": {
			get: func(v *Value, _ []any) any { return v.TimeFields(User) },
			set: func(v *Value, value any) bool {
				p, ok := toTimeParts(value)
				if ok {
					v.SetTime(p)
				}
				return ok
			},
		},
		"localeInfo": {
			get: func(v *Value, _ []any) any { return v.LocaleInfo() },
			set: func(v *Value, value any) bool {
				d, ok := value.(Descriptor)
				if ok {
					v.Relocate(d)
				}
				return ok
			},
		},

		"dateTime":           getter(func(v *Value) any { return v.DateTime(User) }),
		"zoneDate":           getter(func(v *Value) any { return v.DateFields(Zone) }),
		"zoneTime":           getter(func(v *Value) any { return v.TimeFields(Zone) }),
		"zoneDateTime":       getter(func(v *Value) any { return v.DateTime(Zone) }),
		"dateValues":         getter(func(v *Value) any { return v.DateValues(User) }),
		"timeValues":         getter(func(v *Value) any { return v.TimeValues(User) }),
		"dateTimeValues":     getter(func(v *Value) any { return v.DateTimeValues(User) }),
		"zoneDateValues":     getter(func(v *Value) any { return v.DateValues(Zone) }),
		"zoneTimeValues":     getter(func(v *Value) any { return v.TimeValues(Zone) }),
		"zoneDateTimeValues": getter(func(v *Value) any { return v.DateTimeValues(Zone) }),
		"names":              getter(func(v *Value) any { return v.Names(User) }),
		"zoneNames":          getter(func(v *Value) any { return v.Names(Zone) }),
		"monthName":          getter(func(v *Value) any { return v.MonthName(User) }),
		"dayName":            getter(func(v *Value) any { return v.DayName(User) }),
		"zoneMonthname":      getter(func(v *Value) any { return v.MonthName(Zone) }),
		"zoneDayname":        getter(func(v *Value) any { return v.DayName(Zone) }),

		"locale":             getter(func(v *Value) any { return v.Locale() }),
		"timeZone":           getter(func(v *Value) any { return v.TimeZone() }),
		"userLocaleInfo":     getter(func(v *Value) any { return v.UserLocaleInfo() }),
		"local":              getter(func(v *Value) any { return v.Local() }),
		"localDate":          getter(func(v *Value) any { return v.LocalDate() }),
		"localTime":          getter(func(v *Value) any { return v.LocalTime() }),
		"ISO":                getter(func(v *Value) any { return v.ISO() }),
		"unixEpochTimestamp": getter(func(v *Value) any { return v.UnixEpochTimestamp() }),
		"value":              {get: instantOf, set: setInstant},
		"localeString":       getter(func(v *Value) any { return v.Local() }),
		"zoneValues":         getter(func(v *Value) any { return v.DateTime(Zone) }),
		"zoneArray":          getter(func(v *Value) any { return v.DateTimeValues(Zone) }),
		"isLeapYear":         getter(func(v *Value) any { return v.IsLeapYear() }),
		"daysThisMonth":      getter(func(v *Value) any { return v.DaysInMonth() }),
		"weeknr":             getter(func(v *Value) any { return v.WeekNr() }),
		"weeksInYear":        getter(func(v *Value) any { return v.WeeksInYear() }),
		"quarter":            getter(func(v *Value) any { return v.Quarter() }),
		"quarterNr":          getter(func(v *Value) any { return v.QuarterNr() }),
		"age":                getter(func(v *Value) any { return v.Age() }),
		"ageFull":            getter(func(v *Value) any { return v.AgeFull() }),
		"info":               getter(func(v *Value) any { return v.Info() }),
		"toString":           getter(func(v *Value) any { return v.ToString() }),
		"UTC":                getter(func(v *Value) any { return v.UTC() }),
		"UTCOffset":          getter(func(v *Value) any { return v.UTCOffset() }),
		"hasDST":             getter(func(v *Value) any { return v.HasDST() }),
		"DSTActive":          getter(func(v *Value) any { return v.DSTActive() }),
		"clone":              getter(func(v *Value) any { return v.Clone() }),
		"removeTime":         getter(func(v *Value) any { return v.RemoveTime() }),
		"midnight":           getter(func(v *Value) any { return v.Midnight() }),

		"format": method(func(v *Value, args []any) any {
			return v.Format(argString(args, 0), argStrings(args, 1)...)
		}),
		"zoneFormat": method(func(v *Value, args []any) any {
			return v.ZoneFormat(argString(args, 0), argStrings(args, 1)...)
		}),
		"differenceTo":    method(func(v *Value, args []any) any { return v.DifferenceTo(argValue(v, args, 0)) }),
		"differenceUntil": method(func(v *Value, args []any) any { return v.DifferenceUntil(argValue(v, args, 0)) }),
		"daysUntil":       method(func(v *Value, args []any) any { return v.DaysUntil(argValue(v, args, 0)) }),
		"offsetFrom":      method(func(v *Value, args []any) any { return v.OffsetFrom(argValue(v, args, 0)) }),
		"cloneWith": method(func(v *Value, args []any) any {
			if other := argValue(v, args, 0); other != nil {
				return v.CloneWith(other.t)
			}
			return v.Clone()
		}),
		"revalue": method(func(v *Value, args []any) any {
			if other := argValue(v, args, 0); other != nil {
				return v.Revalue(other.t)
			}
			return v
		}),
		"relocate": method(func(v *Value, args []any) any {
			if d, ok := argAt(args, 0).(Descriptor); ok {
				return v.Relocate(d)
			}
			return v
		}),
		"add":      method(func(v *Value, args []any) any { return v.Add(strings.Join(argStrings(args, 0), ",")) }),
		"subtract": method(func(v *Value, args []any) any { return v.Subtract(strings.Join(argStrings(args, 0), ",")) }),
		"between": method(func(v *Value, args []any) any {
			return v.Between(Range{
				Start: argValue(v, args, 0), End: argValue(v, args, 1),
				IncludeStart: argBool(args, 2), IncludeEnd: argBool(args, 3),
			})
		}),
		"isPast":       method(func(v *Value, args []any) any { return v.IsPast(argValue(v, args, 0)) }),
		"isFuture":     method(func(v *Value, args []any) any { return v.IsFuture(argValue(v, args, 0)) }),
		"next":         method(func(v *Value, args []any) any { return v.Next(argString(args, 0), argBool(args, 1)) }),
		"previous":     method(func(v *Value, args []any) any { return v.Previous(argString(args, 0), argBool(args, 1)) }),
		"firstWeekday": method(func(v *Value, args []any) any { return v.FirstWeekday(argBool(args, 0)) }),
		"fullMonth":    method(func(v *Value, args []any) any { return v.FullMonth(argString(args, 0)) }),
		"toArray": method(func(v *Value, args []any) any {
			if argBool(args, 0) {
				return v.DateTimeValues(User)
			}
			return v.DateTimeValues(Zone)
		}),
		"values": method(func(v *Value, args []any) any {
			if argBool(args, 0) {
				return v.DateTime(User)
			}
			return v.DateTime(Zone)
		}),
		"setDateValues": method(func(v *Value, args []any) any {
			if p, ok := toDateParts(argAt(args, 0)); ok {
				v.SetDate(p)
			}
			return v
		}),
		"setTimeValues": method(func(v *Value, args []any) any {
			if p, ok := toTimeParts(argAt(args, 0)); ok {
				v.SetTime(p)
			}
			return v
		}),
	}

	aggregates = buildAggregates()
}

// aggregateUnits maps aggregate name stems to the unit and count they add
var aggregateUnits = []struct {
	name  string
	unit  duration.Unit
	count int
}{
	{"Year", duration.UnitYear, 1},
	{"Month", duration.UnitMonth, 1},
	{"Week", duration.UnitDay, 7},
	{"Day", duration.UnitDay, 1},
	{"Hour", duration.UnitHour, 1},
	{"Minute", duration.UnitMinute, 1},
	{"Second", duration.UnitSecond, 1},
	{"Millisecond", duration.UnitMillisecond, 1},
}

// buildAggregates generates add<Unit>s, subtract<Unit>s, next<Unit> and
// previous<Unit> for every unit, plus tomorrow and yesterday.
func buildAggregates() map[string]member {
	out := make(map[string]member, 4*len(aggregateUnits)+2)
	for _, u := range aggregateUnits {
		u := u
		shift := func(v *Value, n int) *Value {
			return v.apply([]duration.Term{{Count: n * u.count, Unit: u.unit}})
		}
		out["add"+u.name+"s"] = method(func(v *Value, args []any) any { return shift(v, argCount(args)) })
		out["subtract"+u.name+"s"] = method(func(v *Value, args []any) any { return shift(v, -argCount(args)) })
		out["next"+u.name] = getter(func(v *Value) any { return shift(v, 1) })
		out["previous"+u.name] = getter(func(v *Value) any { return shift(v, -1) })
	}
	out["tomorrow"] = out["nextDay"]
	out["yesterday"] = out["previousDay"]
	return out
}

// Get resolves name against native instant accessors, the computed
// catalogue, generated aggregates and custom extensions, in that order.
func (v *Value) Get(name string, args ...any) (any, error) {
	if fn, ok := native[name]; ok {
		return fn(v.t), nil
	}
	if m, ok := catalogue[name]; ok {
		return m.get(v, args), nil
	}
	if m, ok := aggregates[name]; ok {
		return m.get(v, args), nil
	}
	if ext, ok := v.f.registry.Lookup(name); ok {
		if ext.IsGetter {
			return ext.Fn(v), nil
		}
		return ext.Fn(v, args...), nil
	}
	return nil, mdwerror.Newf("unknown member %q", name).
		WithCode(mdwerror.CodeUnknownMember).
		WithOperation("zonetime.Value.Get").
		WithDetail("name", name)
}

// Set writes value to a computed setter, or replaces the instant for
// "value" and "epoch". Unusable input leaves the value unchanged and
// returns false.
func (v *Value) Set(name string, value any) bool {
	if name == "epoch" {
		return setInstant(v, value)
	}
	if m, ok := catalogue[name]; ok {
		return m.set != nil && m.set(v, value)
	}
	return false
}

func instantOf(v *Value, _ []any) any { return v.Time() }

// setInstant accepts a time.Time, a *Value or epoch milliseconds
func setInstant(v *Value, value any) bool {
	switch x := value.(type) {
	case time.Time:
		if x.IsZero() {
			return false
		}
		v.Revalue(x)
		return true
	case *Value:
		if x == nil {
			return false
		}
		v.Revalue(x.t)
		return true
	}
	if ms, ok := toInt(value); ok {
		v.Revalue(time.UnixMilli(int64(ms)))
		return true
	}
	return false
}

// Keys lists the computed, aggregate and enumerable custom member names
func (v *Value) Keys() []string {
	return keys(v.f.registry)
}

func keys(r *Registry) []string {
	seen := make(map[string]bool, len(catalogue)+len(aggregates))
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range catalogue {
		add(name)
	}
	for name := range aggregates {
		add(name)
	}
	for _, name := range r.Names(true) {
		add(name)
	}
	sort.Strings(names)
	return names
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func argString(args []any, i int) string {
	s, _ := argAt(args, i).(string)
	return s
}

func argStrings(args []any, from int) []string {
	var out []string
	for i := from; i < len(args); i++ {
		if s, ok := args[i].(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func argBool(args []any, i int) bool {
	b, _ := argAt(args, i).(bool)
	return b
}

func argCount(args []any) int {
	if n, ok := toInt(argAt(args, 0)); ok {
		return n
	}
	return 1
}

// argValue converts a *Value, time.Time or date string argument
func argValue(v *Value, args []any, i int) *Value {
	switch x := argAt(args, i).(type) {
	case *Value:
		return x
	case time.Time:
		return v.CloneWith(x)
	case string:
		return v.f.FromString(x, Descriptor{Locale: v.info.Locale, TimeZone: v.info.TimeZone})
	}
	return nil
}

// toInt accepts integers, whole floats and numeric strings
func toInt(value any) (int, bool) {
	switch x := value.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case int32:
		return int(x), true
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return int(x), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func toDateParts(value any) (DateParts, bool) {
	switch x := value.(type) {
	case DateParts:
		return x, true
	case map[string]any:
		p := DateParts{Year: mapInt(x, "year"), Month: mapInt(x, "month"), Date: mapInt(x, "date")}
		return p, p.Year != nil || p.Month != nil || p.Date != nil
	}
	return DateParts{}, false
}

func toTimeParts(value any) (TimeParts, bool) {
	switch x := value.(type) {
	case TimeParts:
		return x, true
	case map[string]any:
		p := TimeParts{
			Hours: mapInt(x, "hours"), Minutes: mapInt(x, "minutes"),
			Seconds: mapInt(x, "seconds"), Milliseconds: mapInt(x, "milliseconds"),
		}
		return p, p.Hours != nil || p.Minutes != nil || p.Seconds != nil || p.Milliseconds != nil
	}
	return TimeParts{}, false
}

func mapInt(m map[string]any, key string) *int {
	if n, ok := toInt(m[key]); ok {
		return &n
	}
	return nil
}
