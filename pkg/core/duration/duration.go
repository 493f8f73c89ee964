// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     duration
// Description: Signed multi-field differences between instants
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package duration

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/msto63/zonetime/foundation/utils/timex"
	"github.com/msto63/zonetime/pkg/core/intl"
)

const msPerDay = 24 * 60 * 60 * 1000

// Result describes the difference between two instants. Sign is "+" when
// the end is later, "-" when it is earlier and "" when both are equal.
// Full lists years to seconds even when zero; milliseconds appear in the
// texts and, as fractional seconds, in the periods only when nonzero.
type Result struct {
	Error         bool      `json:"error,omitempty" yaml:"error,omitempty"`
	Message       string    `json:"message,omitempty" yaml:"message,omitempty"`
	Sign          string    `json:"sign" yaml:"sign"`
	Years         int       `json:"years" yaml:"years"`
	Months        int       `json:"months" yaml:"months"`
	Days          int       `json:"days" yaml:"days"`
	Hours         int       `json:"hours" yaml:"hours"`
	Minutes       int       `json:"minutes" yaml:"minutes"`
	Seconds       int       `json:"seconds" yaml:"seconds"`
	Milliseconds  int       `json:"milliseconds" yaml:"milliseconds"`
	DiffInDays    int64     `json:"diffInDays" yaml:"diffInDays"`
	Full          string    `json:"full" yaml:"full"`
	Clean         string    `json:"clean" yaml:"clean"`
	ISOPeriod     string    `json:"ISOPeriod" yaml:"ISOPeriod"`
	JSPeriod      string    `json:"jsPeriod" yaml:"jsPeriod"`
	EqualDates    bool      `json:"equalDates" yaml:"equalDates"`
	TimeZoneStart string    `json:"timeZoneStart,omitempty" yaml:"timeZoneStart,omitempty"`
	TimeZoneEnd   string    `json:"timeZoneEnd,omitempty" yaml:"timeZoneEnd,omitempty"`
	From          time.Time `json:"fromUTC" yaml:"fromUTC"`
	To            time.Time `json:"toUTC" yaml:"toUTC"`
	OffsetText    string    `json:"offsetText,omitempty" yaml:"offsetText,omitempty"`
}

// TotalHours folds whole days into the hour count
func (r Result) TotalHours() int {
	return r.Days*24 + r.Hours
}

// Calculator computes differences. Zone relative differences read wall
// clocks in the environment zone.
type Calculator struct {
	env     intl.Environment
	envLoc  *time.Location
	phrases *Phrasebook
}

// NewCalculator creates a calculator for env with phrases in env's language
func NewCalculator(env intl.Environment) *Calculator {
	return &Calculator{env: env, envLoc: env.Location(), phrases: NewPhrasebook(env.Locale)}
}

// WithPhrasebook returns a copy using p for human text
func (c *Calculator) WithPhrasebook(p *Phrasebook) *Calculator {
	clone := *c
	clone.phrases = p
	return &clone
}

// Phrases returns the phrasebook in use
func (c *Calculator) Phrases() *Phrasebook {
	return c.phrases
}

// Diff decomposes the elapsed milliseconds between start and end as if they
// were a UTC instant after the epoch: years count from 1970, months and
// days from their first value. This is elapsed time, not calendar
// subtraction. Zero instants yield an error flagged result.
func (c *Calculator) Diff(start, end time.Time) Result {
	if end.IsZero() {
		return c.invalid("duration.end_invalid")
	}
	if start.IsZero() {
		return c.invalid("duration.start_invalid")
	}

	delta := end.UnixMilli() - start.UnixMilli()
	r := Result{From: start.UTC(), To: end.UTC()}
	switch {
	case delta > 0:
		r.Sign = "+"
	case delta < 0:
		r.Sign = "-"
		delta = -delta
	}

	elapsed := time.UnixMilli(delta).UTC()
	r.Years = elapsed.Year() - 1970
	r.Months = int(elapsed.Month()) - 1
	r.Days = elapsed.Day() - 1
	r.Hours = elapsed.Hour()
	r.Minutes = elapsed.Minute()
	r.Seconds = elapsed.Second()
	r.Milliseconds = int(delta % 1000)
	r.DiffInDays = delta / msPerDay

	r.Full = c.words(r, true)
	r.Clean = c.words(r, false)
	r.EqualDates = delta == 0
	r.ISOPeriod = isoPeriod(r, false)
	r.JSPeriod = r.Sign + isoPeriod(r, true)
	return r
}

// Zoned differences the wall clocks start shows in startZone and end shows
// in endZone, both read as environment wall clocks. OffsetText compares the
// two zones at the end instant.
func (c *Calculator) Zoned(start time.Time, startZone string, end time.Time, endZone string) Result {
	startLoc, startName := c.zone(startZone)
	endLoc, endName := c.zone(endZone)

	var from, to time.Time
	if !start.IsZero() {
		from = c.wallClock(start, startLoc)
	}
	if !end.IsZero() {
		to = c.wallClock(end, endLoc)
	}

	r := c.Diff(from, to)
	r.TimeZoneStart, r.TimeZoneEnd = startName, endName
	if !r.Error {
		at := end
		gap := c.Diff(c.wallClock(at, startLoc), c.wallClock(at, endLoc))
		r.OffsetText = c.OffsetSentence(endName, startName, gap)
	}
	return r
}

// OffsetSentence phrases gap, the difference from other's clock to zone's
// clock, as "<zone> is <amount> ahead of/behind <other>".
func (c *Calculator) OffsetSentence(zone, other string, gap Result) string {
	if gap.Sign == "" {
		return c.phrases.Phrase("offset.none")
	}
	key := "offset.ahead"
	if gap.Sign == "-" {
		key = "offset.behind"
	}
	return c.phrases.Phrase(key, map[string]interface{}{
		"zone": zone, "other": other, "amount": c.amount(gap, ", "),
	})
}

// RelativeSentence phrases gap as "<zone>: <amount> later/earlier"
func (c *Calculator) RelativeSentence(zone string, gap Result) string {
	if gap.Sign == "" {
		return c.phrases.Phrase("offset.none")
	}
	key := "offset.later"
	if gap.Sign == "-" {
		key = "offset.earlier"
	}
	return c.phrases.Phrase(key, map[string]interface{}{
		"zone": zone, "amount": c.amount(gap, " "+c.phrases.Phrase("duration.and")+" "),
	})
}

func (c *Calculator) amount(gap Result, sep string) string {
	hours := gap.TotalHours()
	switch {
	case gap.Minutes == 0:
		return c.phrases.Count("hours", hours)
	case hours == 0:
		return c.phrases.Count("minutes", gap.Minutes)
	}
	return c.phrases.Count("hours", hours) + sep + c.phrases.Count("minutes", gap.Minutes)
}

// FormatOffset renders gap as "±HH:MM"; equal clocks give "+00:00"
func FormatOffset(gap Result) string {
	sign := gap.Sign
	if sign == "" {
		sign = "+"
	}
	return fmt.Sprintf("%s%02d:%02d", sign, gap.TotalHours(), gap.Minutes)
}

// wallClock reads t in loc and rebuilds that reading in the environment zone
func (c *Calculator) wallClock(t time.Time, loc *time.Location) time.Time {
	return timex.FieldsOf(t.In(loc)).In(c.envLoc)
}

func (c *Calculator) zone(name string) (*time.Location, string) {
	if loc, resolved, err := intl.ResolveTimeZone(name); err == nil {
		return loc, resolved
	}
	return c.envLoc, c.envLoc.String()
}

func (c *Calculator) invalid(key string) Result {
	message := c.phrases.Phrase(key)
	return Result{Error: true, Message: message, Full: message, Clean: message}
}

func (c *Calculator) words(r Result, full bool) string {
	fields := []struct {
		unit  string
		value int
	}{
		{"years", r.Years}, {"months", r.Months}, {"days", r.Days},
		{"hours", r.Hours}, {"minutes", r.Minutes}, {"seconds", r.Seconds},
	}

	var items []string
	for _, f := range fields {
		if full || f.value > 0 {
			items = append(items, c.phrases.Count(f.unit, f.value))
		}
	}
	if r.Milliseconds > 0 {
		items = append(items, c.phrases.Count("milliseconds", r.Milliseconds))
	}
	if len(items) == 0 {
		return c.phrases.Phrase("duration.equal")
	}
	return c.phrases.Join(items)
}

// isoPeriod renders an ISO-8601 duration omitting zero components. With
// weeks the days split into weeks and remaining days.
func isoPeriod(r Result, weeks bool) string {
	var b strings.Builder
	b.WriteString("P")
	component := func(n int, designator string) {
		if n > 0 {
			fmt.Fprintf(&b, "%d%s", n, designator)
		}
	}

	component(r.Years, "Y")
	component(r.Months, "M")
	if weeks {
		component(r.Days/7, "W")
		component(r.Days%7, "D")
	} else {
		component(r.Days, "D")
	}
	if r.Hours+r.Minutes+r.Seconds+r.Milliseconds > 0 {
		b.WriteString("T")
		component(r.Hours, "H")
		component(r.Minutes, "M")
		if r.Milliseconds > 0 {
			seconds := strings.TrimRight(fmt.Sprintf("%d.%03d", r.Seconds, r.Milliseconds), "0")
			b.WriteString(seconds + "S")
		} else {
			component(r.Seconds, "S")
		}
	}

	if b.Len() == 1 {
		return "P0D"
	}
	return b.String()
}

var (
	defaultCalculator     *Calculator
	defaultCalculatorOnce sync.Once
)

// Diff uses a calculator for the detected environment
func Diff(start, end time.Time) Result {
	defaultCalculatorOnce.Do(func() {
		defaultCalculator = NewCalculator(intl.DefaultEnvironment())
	})
	return defaultCalculator.Diff(start, end)
}
