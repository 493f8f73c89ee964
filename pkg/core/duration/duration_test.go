package duration

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/zonetime/pkg/core/intl"
)

var utcEnv = intl.Environment{Locale: "en-US", TimeZone: "UTC"}

func date(y int, m time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, m, d, h, mi, s, 0, time.UTC)
}

func TestDiffEqualDates(t *testing.T) {
	c := NewCalculator(utcEnv)
	a := date(2024, time.May, 5, 10, 0, 0)

	r := c.Diff(a, a)
	if r.Clean != "Dates are equal" || r.Sign != "" || !r.EqualDates {
		t.Errorf("Diff(a, a) = clean %q sign %q equal %v", r.Clean, r.Sign, r.EqualDates)
	}
	if r.Full != "0 years, 0 months, 0 days, 0 hours, 0 minutes and 0 seconds" {
		t.Errorf("Full = %q", r.Full)
	}
	if r.ISOPeriod != "P0D" || r.JSPeriod != "P0D" {
		t.Errorf("periods = %q, %q", r.ISOPeriod, r.JSPeriod)
	}

	r = c.Diff(a, a.Add(500*time.Millisecond))
	if r.EqualDates || r.Clean == "Dates are equal" {
		t.Errorf("sub-second difference reported as equal: %+v", r)
	}
	if r.Full != "0 years, 0 months, 0 days, 0 hours, 0 minutes, 0 seconds and 500 milliseconds" {
		t.Errorf("Full = %q", r.Full)
	}
}

func TestDiff(t *testing.T) {
	c := NewCalculator(utcEnv)

	tests := []struct {
		name       string
		start, end time.Time
		sign       string
		clean      string
		iso        string
		js         string
		diffInDays int64
	}{
		{
			name:  "later end",
			start: date(2020, time.January, 1, 0, 0, 0), end: date(2020, time.January, 11, 1, 0, 1),
			sign: "+", clean: "10 days, 1 hour and 1 second",
			iso: "P10DT1H1S", js: "+P1W3DT1H1S", diffInDays: 10,
		},
		{
			name:  "earlier end",
			start: date(2020, time.January, 2, 0, 0, 0), end: date(2020, time.January, 1, 0, 0, 0),
			sign: "-", clean: "1 day",
			iso: "P1D", js: "-P1D", diffInDays: 1,
		},
		{
			name:  "elapsed years",
			start: date(2000, time.January, 1, 0, 0, 0), end: date(2002, time.January, 1, 0, 0, 0),
			sign: "+", clean: "2 years and 1 day",
			iso: "P2Y1D", js: "+P2Y1D", diffInDays: 731,
		},
		{
			name:  "half a second",
			start: date(2000, time.January, 1, 0, 0, 0), end: date(2000, time.January, 1, 0, 0, 0).Add(500 * time.Millisecond),
			sign: "+", clean: "500 milliseconds",
			iso: "PT0.5S", js: "+PT0.5S", diffInDays: 0,
		},
		{
			name:  "seconds and milliseconds back",
			start: date(2000, time.January, 1, 0, 0, 1).Add(250 * time.Millisecond), end: date(2000, time.January, 1, 0, 0, 0),
			sign: "-", clean: "1 second and 250 milliseconds",
			iso: "PT1.25S", js: "-PT1.25S", diffInDays: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.Diff(tt.start, tt.end)
			got := []interface{}{r.Sign, r.Clean, r.ISOPeriod, r.JSPeriod, r.DiffInDays, r.EqualDates}
			want := []interface{}{tt.sign, tt.clean, tt.iso, tt.js, tt.diffInDays, false}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Diff mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffInvalidInput(t *testing.T) {
	c := NewCalculator(utcEnv)
	valid := date(2024, time.May, 5, 0, 0, 0)

	if r := c.Diff(valid, time.Time{}); !r.Error || r.Message != "end date not valid" || r.Clean != r.Message {
		t.Errorf("invalid end: %+v", r)
	}
	if r := c.Diff(time.Time{}, valid); !r.Error || r.Full != "start date not valid" {
		t.Errorf("invalid start: %+v", r)
	}
}

func TestZonedDiffLosAngelesToAuckland(t *testing.T) {
	c := NewCalculator(utcEnv)
	instant := date(2025, time.January, 23, 22, 0, 0)

	r := c.Zoned(instant, "America/Los_Angeles", instant, "Pacific/Auckland")
	if r.Hours != 21 || r.Sign != "+" {
		t.Fatalf("hours = %d, sign = %q, want 21 and +", r.Hours, r.Sign)
	}
	if r.TimeZoneStart != "America/Los_Angeles" || r.TimeZoneEnd != "Pacific/Auckland" {
		t.Errorf("zones = %q, %q", r.TimeZoneStart, r.TimeZoneEnd)
	}
	if want := "Pacific/Auckland is 21 hours ahead of America/Los_Angeles"; r.OffsetText != want {
		t.Errorf("OffsetText = %q, want %q", r.OffsetText, want)
	}
	if got := FormatOffset(r); got != "+21:00" {
		t.Errorf("FormatOffset = %q", got)
	}
}

func TestOffsetSentenceWithMinutes(t *testing.T) {
	c := NewCalculator(utcEnv)
	instant := date(2025, time.January, 23, 12, 0, 0)

	r := c.Zoned(instant, "Asia/Kolkata", instant, "UTC")
	if want := "UTC is 5 hours, 30 minutes behind Asia/Kolkata"; r.OffsetText != want {
		t.Errorf("OffsetText = %q, want %q", r.OffsetText, want)
	}
	if want := "UTC: 5 hours and 30 minutes earlier"; c.RelativeSentence("UTC", r) != want {
		t.Errorf("RelativeSentence = %q, want %q", c.RelativeSentence("UTC", r), want)
	}
}

func TestPhrasebookLanguages(t *testing.T) {
	de := NewCalculator(intl.Environment{Locale: "de-DE", TimeZone: "UTC"})
	r := de.Diff(date(2020, time.January, 1, 0, 0, 0), date(2020, time.January, 3, 1, 0, 0))
	if r.Clean != "2 Tage und 1 Stunde" {
		t.Errorf("German clean = %q", r.Clean)
	}

	nl := NewPhrasebook("nl-BE")
	if nl.Locale() != "nl" || nl.Count("minutes", 1) != "1 minuut" {
		t.Errorf("Dutch phrasebook: %q %q", nl.Locale(), nl.Count("minutes", 1))
	}

	if got := NewPhrasebook("sw").Locale(); got != "en" {
		t.Errorf("unknown language should fall back to en, got %q", got)
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		expr string
		want []Term
	}{
		{"1 year, 3 months", []Term{{1, UnitYear}, {3, UnitMonth}}},
		{"2 Weeks,1 day", []Term{{2, UnitWeek}, {1, UnitDay}}},
		{"subtract, 5 hours, 1 date", []Term{{-5, UnitHour}, {-1, UnitDay}}},
		{"three days, 4 fortnights, 10 seconds", []Term{{10, UnitSecond}}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseExpression(tt.expr)); diff != "" {
				t.Errorf("ParseExpression mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply(t *testing.T) {
	start := date(2024, time.January, 31, 12, 0, 0)

	got := Apply(start, time.UTC, ParseExpression("1 month"))
	if want := date(2024, time.March, 2, 12, 0, 0); !got.Equal(want) {
		t.Errorf("Jan 31 + 1 month = %v, want %v", got, want)
	}

	got = Apply(start, time.UTC, Negate(ParseExpression("1 week, 12 hours")))
	if want := date(2024, time.January, 24, 0, 0, 0); !got.Equal(want) {
		t.Errorf("subtracting = %v, want %v", got, want)
	}

	berlin, _, err := intl.ResolveTimeZone("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	beforeDST := time.Date(2025, time.March, 29, 12, 0, 0, 0, berlin)
	got = Apply(beforeDST, berlin, []Term{{1, UnitDay}})
	if got.Hour() != 12 || got.Sub(beforeDST) != 23*time.Hour {
		t.Errorf("one day across DST = %v", got)
	}
}
