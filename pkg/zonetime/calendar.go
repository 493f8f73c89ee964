// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     zonetime
// Description: Month and year calendars and cross zone comparisons
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
	"github.com/msto63/zonetime/pkg/core/intl"
)

// monthDays returns midnight in the user zone for every day of the month
func (f *Factory) monthDays(year, monthNr int, d Descriptor) ([]*Value, error) {
	if monthNr < 1 || monthNr > 12 {
		return nil, invalidMonth(monthNr, "zonetime.MonthCalendar")
	}
	info := f.resolver.ResolveDescriptor(d)
	n := timex.DaysInMonth(year, time.Month(monthNr))
	days := make([]*Value, 0, n)
	for day := 1; day <= n; day++ {
		days = append(days, f.value(time.Date(year, time.Month(monthNr), day, 0, 0, 0, 0, f.envLoc), info))
	}
	return days, nil
}

// MonthCalendar returns one value per day of monthNr (1-12) in year
func (f *Factory) MonthCalendar(year, monthNr int, locale string) ([]*Value, error) {
	return f.monthDays(year, monthNr, Descriptor{Locale: locale})
}

// Month is one month of a year calendar, named in lower case English
type Month struct {
	Name string   `json:"name" yaml:"name"`
	Days []*Value `json:"days" yaml:"days"`
}

// YearCalendar holds the days of every month of a year
type YearCalendar struct {
	Year   int     `json:"year" yaml:"year"`
	Months []Month `json:"calendar" yaml:"calendar"`
}

// Month returns the days of the month called name, e.g. "december"
func (c YearCalendar) Month(name string) []*Value {
	name = strings.ToLower(name)
	for _, m := range c.Months {
		if m.Name == name {
			return m.Days
		}
	}
	return nil
}

// YearCalendar returns the calendar of year with values in locale
func (f *Factory) YearCalendar(year int, locale string) YearCalendar {
	cal := YearCalendar{Year: year, Months: make([]Month, 0, 12)}
	for m := time.January; m <= time.December; m++ {
		days, _ := f.monthDays(year, int(m), Descriptor{Locale: locale})
		cal.Months = append(cal.Months, Month{Name: strings.ToLower(m.String()), Days: days})
	}
	return cal
}

// AcrossZones asks what a wall clock time in ZoneID reads in UserZoneID
type AcrossZones struct {
	// DateTime is parsed year first; empty means now
	DateTime   string
	ZoneID     string
	UserZoneID string
}

// AcrossResult is the answer to AcrossZones. Result is keyed by zone id
// with "/" replaced by "_".
type AcrossResult struct {
	RemoteTimeZone string            `json:"remoteTimezone" yaml:"remoteTimezone"`
	UserTimeZone   string            `json:"userTimezone" yaml:"userTimezone"`
	TimeDifference string            `json:"timeDifference" yaml:"timeDifference"`
	Result         map[string]string `json:"result" yaml:"result"`
}

const acrossTemplate = "yyyy/mm/dd hh:mmi:ss"

// TimeAcrossZones reads q.DateTime as a wall clock in q.ZoneID and shows
// the same instant in q.UserZoneID, which defaults to the user zone.
func (f *Factory) TimeAcrossZones(q AcrossZones) AcrossResult {
	remote := f.resolver.Resolve("", q.ZoneID)
	user := f.resolver.Resolve("", q.UserZoneID)
	remoteLoc := f.location(remote.TimeZone)

	instant := f.now()
	if strings.TrimSpace(q.DateTime) != "" {
		fields, err := timex.ParseFields(q.DateTime, "ymd")
		if err != nil {
			f.logger.WarnWithErr("can't convert date string, using current date", err, log.Fields{"input": q.DateTime})
		} else {
			instant = fields.In(remoteLoc)
		}
	}

	between := f.offsets.Between(instant, remote.TimeZone, user.TimeZone)
	render := func(zone string) string {
		return f.renderer.Render(instant, acrossTemplate, "l:en-CA,tz:"+zone+",hrc:23")
	}

	return AcrossResult{
		RemoteTimeZone: remote.TimeZone,
		UserTimeZone:   user.TimeZone,
		TimeDifference: "Time offset " + between.Offset + ": " + between.OffsetText,
		Result: map[string]string{
			zoneKey(remote.TimeZone): render(remote.TimeZone),
			zoneKey(user.TimeZone):   render(user.TimeZone),
		},
	}
}

func zoneKey(zone string) string {
	return strings.ReplaceAll(zone, "/", "_")
}

func (f *Factory) location(zone string) *time.Location {
	if loc, _, err := intl.ResolveTimeZone(zone); err == nil {
		return loc
	}
	return f.envLoc
}
