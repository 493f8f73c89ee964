// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     offset
// Description: Offsets between time zones and DST detection
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package offset

import (
	"strings"
	"time"

	"github.com/msto63/zonetime/pkg/core/duration"
	"github.com/msto63/zonetime/pkg/core/intl"
)

// UTC is the zone UTCOffset measures against
const UTC = "UTC"

// Result is the offset between two zones at one instant. Offset is
// "+HH:MM" when ToTZ's clock reads later than FromTZ's.
type Result struct {
	FromTZ     string `json:"fromTZ" yaml:"fromTZ"`
	ToTZ       string `json:"toTZ" yaml:"toTZ"`
	Offset     string `json:"offset" yaml:"offset"`
	OffsetText string `json:"offsetText" yaml:"offsetText"`
}

// Engine derives offsets from zone relative durations
type Engine struct {
	calc *duration.Calculator
}

// NewEngine creates an engine on calc
func NewEngine(calc *duration.Calculator) *Engine {
	return &Engine{calc: calc}
}

// Between compares the clocks of zoneA and zoneB at t
func (e *Engine) Between(t time.Time, zoneA, zoneB string) Result {
	gap := e.calc.Zoned(t, zoneA, t, zoneB)
	return Result{
		FromTZ:     gap.TimeZoneStart,
		ToTZ:       gap.TimeZoneEnd,
		Offset:     duration.FormatOffset(gap),
		OffsetText: gap.OffsetText,
	}
}

// UTCOffset is Between(t, zone, UTC)
func (e *Engine) UTCOffset(t time.Time, zone string) Result {
	return e.Between(t, zone, UTC)
}

// InWords phrases the offset of zone relative to t's reference clock, as in
// "Europe/Paris: 1 hour later".
func (e *Engine) InWords(t time.Time, reference, zone string) string {
	gap := e.calc.Zoned(t, reference, t, zone)
	return e.calc.RelativeSentence(gap.TimeZoneEnd, gap)
}

// Negate flips the sign of an "±HH:MM" offset; zero stays "+00:00"
func Negate(offset string) string {
	switch {
	case strings.TrimLeft(offset, "+-") == "00:00":
		return "+00:00"
	case strings.HasPrefix(offset, "-"):
		return "+" + offset[1:]
	case strings.HasPrefix(offset, "+"):
		return "-" + offset[1:]
	}
	return "-" + offset
}

// HasDST reports whether zone's short offset differs between mid January
// and mid July of year.
func HasDST(zone string, year int) bool {
	loc, _, err := intl.ResolveTimeZone(zone)
	if err != nil {
		return false
	}
	january := time.Date(year, time.January, 15, 12, 0, 0, 0, loc)
	july := time.Date(year, time.July, 15, 12, 0, 0, 0, loc)
	return shortOffset(january) != shortOffset(july)
}

// DSTActive reports whether t's offset in zone differs from the January
// offset of the same year. January counts as standard time, which is wrong
// for southern hemisphere zones.
func DSTActive(t time.Time, zone string) bool {
	loc, _, err := intl.ResolveTimeZone(zone)
	if err != nil {
		return false
	}
	t = t.In(loc)
	if !HasDST(zone, t.Year()) {
		return false
	}
	january := time.Date(t.Year(), time.January, 1, 14, 0, 0, 0, loc)
	return shortOffset(t) != shortOffset(january)
}

func shortOffset(t time.Time) string {
	return intl.ZoneName(t, "shortOffset", intl.FallbackLocale)
}
