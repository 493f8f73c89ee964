package zonetime

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/zonetime/foundation/core/log"
	"github.com/msto63/zonetime/pkg/core/intl"
)

var fixedNow = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func newTestFactory(t *testing.T, env intl.Environment) (*Factory, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelWarn, Format: log.FormatText, Output: &buf})
	f := New(
		WithEnvironment(env),
		WithRegistry(NewRegistry()),
		WithLogger(logger),
		WithClock(func() time.Time { return fixedNow }),
	)
	return f, &buf
}

var utcEnv = intl.Environment{Locale: "en-US", TimeZone: "UTC"}

func utc(y int, m time.Month, d, h, mi int) time.Time {
	return time.Date(y, m, d, h, mi, 0, 0, time.UTC)
}

func TestFromUsesUserZone(t *testing.T) {
	f, _ := newTestFactory(t, intl.Environment{Locale: "nl-NL", TimeZone: "Europe/Amsterdam"})

	if got := f.From(2020, 0, 5, 13, 0, 0).ISO(); got != "2020-01-05T12:00:00.000Z" {
		t.Errorf("From(2020, 0, 5, 13) ISO = %q", got)
	}
	if got := f.From().ISO(); got != "2025-01-15T12:00:00.000Z" {
		t.Errorf("From() should be now, got %q", got)
	}
}

func TestDualProjection(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)

	tokyo := f.FromTime(utc(2000, time.January, 1, 0, 0), Descriptor{TimeZone: "Asia/Tokyo"})
	got := []int{tokyo.Year(User), tokyo.Hours(User), tokyo.Hours(Zone), tokyo.DateNr(Zone)}
	if diff := cmp.Diff([]int{2000, 0, 9, 1}, got); diff != "" {
		t.Errorf("Tokyo projections mismatch (-want +got):\n%s", diff)
	}

	la := f.FromTime(utc(2000, time.January, 1, 0, 0), Descriptor{TimeZone: "America/Los_Angeles"})
	want := DateTimeInfo{TimeZone: "America/Los_Angeles", Year: 1999, Month: 12, Date: 31, Hours: 16}
	if diff := cmp.Diff(want, la.DateTime(Zone)); diff != "" {
		t.Errorf("DateTime(Zone) mismatch (-want +got):\n%s", diff)
	}
	if la.Day(Zone) != 5 || la.Day(User) != 6 {
		t.Errorf("Day = zone %d, user %d, want 5 and 6", la.Day(Zone), la.Day(User))
	}
}

func TestZoneSetters(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 1, 0, 0), Descriptor{TimeZone: "Asia/Tokyo"})

	v.SetHours(10)
	if got := v.ISO(); got != "2000-01-01T01:00:00.000Z" {
		t.Errorf("after SetHours(10) ISO = %q", got)
	}

	v.SetMonth(3)
	v.SetDate(DateParts{Date: Int(31)})
	if diff := cmp.Diff([]int{2000, 3, 31}, v.DateValues(Zone)); diff != "" {
		t.Errorf("DateValues(Zone) mismatch (-want +got):\n%s", diff)
	}

	v.SetTime(TimeParts{Minutes: Int(30), Milliseconds: Int(250)})
	if diff := cmp.Diff([]int{10, 30, 0, 250}, v.TimeValues(Zone)); diff != "" {
		t.Errorf("TimeValues(Zone) mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 1, 0, 0), Descriptor{Locale: "de-DE", TimeZone: "Europe/Berlin"})

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"zone", v.ZoneFormat("dd.mm.yyyy hh:mmi"), "01.01.2000 01:00"},
		{"user", v.Format("hh:mmi"), "00:00"},
		{"option override", v.ZoneFormat("hh:mmi", "tz:Asia/Tokyo"), "09:00"},
		{"month name", v.ZoneFormat("d MM yyyy"), "1 Januar 2000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if got := v.ToString(); !strings.HasPrefix(got, "Sat Jan 1 2000 01:00:00 GMT+0100 (") {
		t.Errorf("ToString() = %q", got)
	}
}

func TestFormatTracesTemplate(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelTrace, Format: log.FormatText, Output: &buf})
	f := New(WithEnvironment(utcEnv), WithRegistry(NewRegistry()), WithLogger(logger))

	f.FromTime(utc(2000, time.January, 1, 0, 0)).Format("yyyy", "l:nl")
	for _, want := range []string{"rendering template", "yyyy", "l:nl"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("trace output missing %q: %s", want, buf.String())
		}
	}

	quiet, quietBuf := newTestFactory(t, utcEnv)
	quiet.FromTime(utc(2000, time.January, 1, 0, 0)).Format("yyyy")
	if quietBuf.Len() != 0 {
		t.Errorf("warn level logger traced: %s", quietBuf.String())
	}
}

func TestMidnightInValueZone(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 1, 0, 0), Descriptor{TimeZone: "Europe/Berlin"})

	if got := v.Midnight().ISO(); got != "1999-12-31T23:00:00.000Z" {
		t.Errorf("Midnight() ISO = %s, want 1999-12-31T23:00:00.000Z", got)
	}
}

func TestDifferenceAndOffsets(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	instant := utc(2025, time.January, 23, 22, 0)

	la := f.FromTime(instant, Descriptor{TimeZone: "America/Los_Angeles"})
	auckland := f.FromTime(instant, Descriptor{TimeZone: "Pacific/Auckland"})
	r := la.DifferenceTo(auckland)
	if r.Hours != 21 || r.Sign != "+" {
		t.Errorf("DifferenceTo hours = %d sign = %q, want 21 +", r.Hours, r.Sign)
	}

	paris := f.FromTime(utc(2025, time.January, 1, 0, 0), Descriptor{TimeZone: "Europe/Paris"})
	auckland = f.FromTime(utc(2025, time.January, 1, 0, 0), Descriptor{TimeZone: "Pacific/Auckland"})
	if got := paris.OffsetFrom(auckland); got != "+12:00" {
		t.Errorf("OffsetFrom = %q, want +12:00", got)
	}

	tokyo := f.FromTime(instant, Descriptor{TimeZone: "Asia/Tokyo"})
	if got := tokyo.UTCOffset(); got != "-09:00" {
		t.Errorf("UTCOffset = %q, want -09:00", got)
	}
	if got := tokyo.UTC().TimeZone(); got != "UTC" {
		t.Errorf("UTC().TimeZone() = %q", got)
	}

	info := tokyo.Info()
	if info.OffsetFromLocal != "Asia/Tokyo: 9 hours later" || info.OffsetFromUTC != "UTC: 9 hours earlier" {
		t.Errorf("Info offsets = %q, %q", info.OffsetFromLocal, info.OffsetFromUTC)
	}

	start := f.FromTime(utc(2025, time.January, 1, 0, 0))
	end := f.FromTime(utc(2025, time.January, 16, 0, 0))
	if start.DaysUntil(end) != 15 || end.DaysUntil(start) != -15 {
		t.Errorf("DaysUntil = %d, %d", start.DaysUntil(end), end.DaysUntil(start))
	}
}

func TestDST(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	berlin := Descriptor{TimeZone: "Europe/Berlin"}

	may := f.FromTime(utc(2000, time.May, 1, 0, 0), berlin)
	december := f.FromTime(utc(2000, time.December, 1, 0, 0), berlin)
	shanghai := f.FromTime(utc(2000, time.May, 1, 0, 0), Descriptor{TimeZone: "Asia/Shanghai"})

	got := []bool{may.HasDST(), may.DSTActive(), december.DSTActive(), shanghai.HasDST()}
	if diff := cmp.Diff([]bool{true, true, false, false}, got); diff != "" {
		t.Errorf("DST mismatch (-want +got):\n%s", diff)
	}
}

func TestAddSubtract(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 31, 12, 0))

	if got := v.Add("1 month").ISO(); got != "2000-03-02T12:00:00.000Z" {
		t.Errorf("Add(1 month) = %q", got)
	}
	if got := v.Subtract("1 year, 2 days").ISO(); got != "1999-01-29T12:00:00.000Z" {
		t.Errorf("Subtract = %q", got)
	}
	if got := v.ISO(); got != "2000-01-31T12:00:00.000Z" {
		t.Errorf("Add must not change the receiver, got %q", got)
	}
}

func TestNavigation(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	wednesday := f.FromTime(utc(2025, time.January, 15, 12, 0))

	tests := []struct {
		name string
		got  *Value
		want string
	}{
		{"next friday", wednesday.Next("friday", false), "2025-01-17T00:00:00.000Z"},
		{"previous mon", wednesday.Previous("mon", false), "2025-01-13T00:00:00.000Z"},
		{"next same day", wednesday.Next("Wednesday", false), "2025-01-22T00:00:00.000Z"},
		{"keep today", wednesday.Next("wed", true), "2025-01-15T00:00:00.000Z"},
		{"first monday", wednesday.FirstWeekday(false), "2025-01-13T00:00:00.000Z"},
		{"first sunday", wednesday.FirstWeekday(true), "2025-01-12T00:00:00.000Z"},
		{"unknown day", wednesday.Next("blursday", false), "2025-01-15T00:00:00.000Z"},
		{"remove time", wednesday.RemoveTime(), "2025-01-15T00:00:00.000Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.ISO(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if n := len(wednesday.FullMonth("")); n != 31 {
		t.Errorf("FullMonth has %d days, want 31", n)
	}
}

func TestCloneRevalueRelocate(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 1, 0, 0))

	clone := v.Clone()
	clone.SetDateNr(20)
	if v.DateNr(Zone) != 1 || clone.DateNr(Zone) != 20 {
		t.Errorf("clone shares state: %d, %d", v.DateNr(Zone), clone.DateNr(Zone))
	}

	if v.Revalue(time.Time{}) != v {
		t.Error("Revalue without a time should return the receiver")
	}
	v.Revalue(utc(2015, time.March, 17, 0, 0), Descriptor{L: "nl", TZ: "Europe/Amsterdam"})
	if v.ISO() != "2015-03-17T00:00:00.000Z" || v.Locale() != "nl" || v.TimeZone() != "Europe/Amsterdam" {
		t.Errorf("Revalue = %s %s %s", v.ISO(), v.Locale(), v.TimeZone())
	}

	v.Relocate(Descriptor{TimeZone: "Asia/Kolkata"})
	if v.Locale() != "nl" || v.LocaleInfo().FormatOptions != "l:nl,tz:Asia/Kolkata" {
		t.Errorf("Relocate = %+v", v.LocaleInfo())
	}
}

func TestComparisons(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	past := f.FromTime(utc(2000, time.January, 1, 0, 0))
	future := f.Now().Add("5 days")

	if !past.IsPast(nil) || past.IsFuture(nil) || !future.IsFuture(nil) {
		t.Error("IsPast/IsFuture against now")
	}
	if !f.Now().IsFuture(past) || f.Now().IsPast(past) {
		t.Error("IsPast/IsFuture against a reference")
	}

	now := f.Now()
	if !now.Between(Range{Start: past, End: future}) {
		t.Error("now should be between past and future")
	}
	if now.Between(Range{Start: now, End: future}) || !now.Between(Range{Start: now, End: future, IncludeStart: true}) {
		t.Error("IncludeStart not honored")
	}
}

func TestParse(t *testing.T) {
	f, logs := newTestFactory(t, utcEnv)

	tests := []struct {
		input, order, want string
	}{
		{"2000/01/01", "ymd", "2000-01-01T00:00:00.000Z"},
		{"15.01.2025 10:30", "dmy", "2025-01-15T10:30:00.000Z"},
		{"2020-02-29T23:59:58", "ymd", "2020-02-29T23:59:58.000Z"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := f.Parse(tt.input, tt.order).ISO(); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if got := f.Parse("not a date", "ymd").ISO(); got != "2025-01-15T12:00:00.000Z" {
		t.Errorf("invalid input should give now, got %q", got)
	}
	if !strings.Contains(logs.String(), "can't convert date string") {
		t.Errorf("expected a warning, log = %q", logs.String())
	}

	if got := f.FromString("2024-06-01T08:00:00Z").ISO(); got != "2024-06-01T08:00:00.000Z" {
		t.Errorf("FromString = %q", got)
	}
	if got := f.FromEpochSeconds(946684800).ISO(); got != "2000-01-01T00:00:00.000Z" {
		t.Errorf("FromEpochSeconds = %q", got)
	}
}
