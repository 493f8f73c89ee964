// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     duration
// Description: Parsing and applying "1 year, 3 months" style expressions
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package duration

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/msto63/zonetime/foundation/utils/timex"
)

// Unit is a calendar field an expression term adjusts
type Unit string

// Units accepted in expressions
const (
	UnitYear        Unit = "year"
	UnitMonth       Unit = "month"
	UnitWeek        Unit = "week"
	UnitDay         Unit = "day"
	UnitHour        Unit = "hour"
	UnitMinute      Unit = "minute"
	UnitSecond      Unit = "second"
	UnitMillisecond Unit = "millisecond"
)

// Units lists the units in table order
var Units = []Unit{UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond, UnitMillisecond}

var unitNames = map[string]Unit{
	"year": UnitYear, "month": UnitMonth, "week": UnitWeek,
	"day": UnitDay, "date": UnitDay, "hour": UnitHour, "minute": UnitMinute,
	"second": UnitSecond, "millisecond": UnitMillisecond,
}

// Term is one "<count> <unit>" part of an expression
type Term struct {
	Count int
	Unit  Unit
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

// ParseUnit accepts singular and plural unit names
func ParseUnit(name string) (Unit, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if unit, ok := unitNames[name]; ok {
		return unit, true
	}
	unit, ok := unitNames[strings.TrimSuffix(name, "s")]
	return unit, ok
}

// ParseExpression reads comma separated terms such as "1 year, 3 months".
// A leading "subtract," negates every count. Terms with an unknown unit or
// a non-numeric count are skipped.
func ParseExpression(expr string) []Term {
	expr = strings.TrimSpace(expr)
	negate := false
	if lower := strings.ToLower(expr); strings.HasPrefix(lower, "subtract,") {
		negate = true
		expr = expr[len("subtract,"):]
	}

	var terms []Term
	for _, raw := range strings.Split(expr, ",") {
		words := strings.Fields(strings.ToLower(raw))
		if len(words) < 2 {
			continue
		}
		count, err := strconv.Atoi(nonAlphanumeric.ReplaceAllString(words[0], ""))
		if err != nil || count == 0 {
			continue
		}
		unit, ok := ParseUnit(nonAlphanumeric.ReplaceAllString(words[1], ""))
		if !ok {
			continue
		}
		if negate {
			count = -count
		}
		terms = append(terms, Term{Count: count, Unit: unit})
	}
	return terms
}

// Negate flips the sign of every term
func Negate(terms []Term) []Term {
	out := make([]Term, len(terms))
	for i, term := range terms {
		out[i] = Term{Count: -term.Count, Unit: term.Unit}
	}
	return out
}

// Apply adds the terms in order to the wall clock of t in loc. Each step
// rolls over like time.Date, so January 31 plus one month is in March.
func Apply(t time.Time, loc *time.Location, terms []Term) time.Time {
	if loc == nil {
		loc = t.Location()
	}
	t = t.In(loc)
	for _, term := range terms {
		f := timex.FieldsOf(t)
		switch term.Unit {
		case UnitYear:
			f.Year += term.Count
		case UnitMonth:
			f.Month += term.Count
		case UnitWeek:
			f.Day += 7 * term.Count
		case UnitDay:
			f.Day += term.Count
		case UnitHour:
			f.Hour += term.Count
		case UnitMinute:
			f.Minute += term.Count
		case UnitSecond:
			f.Second += term.Count
		case UnitMillisecond:
			f.Millisecond += term.Count
		}
		t = f.In(loc)
	}
	return t
}
