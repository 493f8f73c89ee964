package zonetime

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
)

func TestGet(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 1, 0, 0))

	tests := []struct {
		name string
		args []any
		want any
	}{
		{"year", nil, 2000},
		{"month", nil, 1},
		{"day", nil, 6},
		{"quarter", nil, "First"},
		{"isLeapYear", nil, true},
		{"daysThisMonth", nil, 31},
		{"UnixMilli", nil, int64(946684800000)},
		{"format", []any{"yyyy-mm-dd"}, "2000-01-01"},
		{"daysUntil", []any{"2000-01-16"}, 15},
		{"zoneArray", nil, []int{2000, 1, 1, 0, 0, 0, 0}},
		{"zoneValues", nil, DateTimeInfo{TimeZone: "UTC", Year: 2000, Month: 1, Date: 1}},
		{"values", nil, DateTimeInfo{TimeZone: "UTC", Year: 2000, Month: 1, Date: 1}},
		{"localeString", nil, v.Local()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Get(tt.name, tt.args...)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.name, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Get(%q) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestAggregates(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 1, 0, 0))

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"addDays", []any{3}, "2000-01-04T00:00:00.000Z"},
		{"addDays", nil, "2000-01-02T00:00:00.000Z"},
		{"subtractHours", []any{2}, "1999-12-31T22:00:00.000Z"},
		{"addWeeks", []any{"2"}, "2000-01-15T00:00:00.000Z"},
		{"tomorrow", nil, "2000-01-02T00:00:00.000Z"},
		{"yesterday", nil, "1999-12-31T00:00:00.000Z"},
		{"nextWeek", nil, "2000-01-08T00:00:00.000Z"},
		{"previousMonth", nil, "1999-12-01T00:00:00.000Z"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s%v", tt.name, tt.args), func(t *testing.T) {
			got, err := v.Get(tt.name, tt.args...)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.name, err)
			}
			if iso := got.(*Value).ISO(); iso != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.name, iso, tt.want)
			}
		})
	}

	if v.ISO() != "2000-01-01T00:00:00.000Z" {
		t.Errorf("aggregates must not change the receiver, got %s", v.ISO())
	}
}

func TestSet(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 1, 0, 0))

	if !v.Set("year", 2010) || !v.Set("dateNr", "15") || !v.Set("hours", 6.0) {
		t.Fatal("numeric setters should accept int, numeric string and whole float")
	}
	if v.ISO() != "2010-01-15T06:00:00.000Z" {
		t.Errorf("after setters ISO = %s", v.ISO())
	}

	for _, input := range []any{"abc", 1.5, nil, []int{1}} {
		if v.Set("minutes", input) {
			t.Errorf("Set(minutes, %v) should fail", input)
		}
	}
	if v.Set("quarter", 2) || v.Set("nosuchmember", 1) {
		t.Error("read only and unknown members must not be set")
	}
	if v.ISO() != "2010-01-15T06:00:00.000Z" {
		t.Errorf("failed sets changed the value: %s", v.ISO())
	}

	if !v.Set("date", map[string]any{"month": 3, "date": 2}) {
		t.Fatal("Set(date) with a map failed")
	}
	if !v.Set("time", TimeParts{Minutes: Int(45)}) {
		t.Fatal("Set(time) with TimeParts failed")
	}
	if v.ISO() != "2010-03-02T06:45:00.000Z" {
		t.Errorf("after date and time ISO = %s", v.ISO())
	}

	if !v.Set("epoch", 0) || v.ISO() != "1970-01-01T00:00:00.000Z" {
		t.Errorf("Set(epoch, 0) ISO = %s", v.ISO())
	}
	if !v.Set("value", utc(2024, time.February, 29, 0, 0)) || v.ISO() != "2024-02-29T00:00:00.000Z" {
		t.Errorf("Set(value) ISO = %s", v.ISO())
	}

	if !v.Set("localeInfo", Descriptor{L: "fr-FR", TZ: "Europe/Paris"}) || v.TimeZone() != "Europe/Paris" {
		t.Errorf("Set(localeInfo) = %+v", v.LocaleInfo())
	}
}

func TestSetInstant(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	other := f.FromTime(utc(2012, time.December, 21, 11, 0))

	tests := []struct {
		name   string
		member string
		input  any
		ok     bool
		want   string
	}{
		{"value from time", "value", utc(2024, time.February, 29, 0, 0), true, "2024-02-29T00:00:00.000Z"},
		{"value from milliseconds", "value", int64(0), true, "1970-01-01T00:00:00.000Z"},
		{"value from numeric string", "value", "86400000", true, "1970-01-02T00:00:00.000Z"},
		{"value from another value", "value", other, true, "2012-12-21T11:00:00.000Z"},
		{"epoch from another value", "epoch", other, true, "2012-12-21T11:00:00.000Z"},
		{"zero time rejected", "value", time.Time{}, false, "2000-01-01T00:00:00.000Z"},
		{"nil value rejected", "value", (*Value)(nil), false, "2000-01-01T00:00:00.000Z"},
		{"text rejected", "value", "tomorrow", false, "2000-01-01T00:00:00.000Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := f.FromTime(utc(2000, time.January, 1, 0, 0))
			if got := v.Set(tt.member, tt.input); got != tt.ok {
				t.Errorf("Set(%q, %v) = %v, want %v", tt.member, tt.input, got, tt.ok)
			}
			if got := v.ISO(); got != tt.want {
				t.Errorf("ISO() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSetValuesMembers(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 1, 0, 0))

	if _, err := v.Get("setDateValues", map[string]any{"year": 2001, "month": 6}); err != nil {
		t.Fatalf("Get(setDateValues) error = %v", err)
	}
	if _, err := v.Get("setTimeValues", TimeParts{Hours: Int(9), Seconds: Int(30)}); err != nil {
		t.Fatalf("Get(setTimeValues) error = %v", err)
	}
	if got := v.ISO(); got != "2001-06-01T09:00:30.000Z" {
		t.Errorf("after setDateValues and setTimeValues ISO = %s", got)
	}

	if _, err := v.Get("setDateValues", "junk"); err != nil {
		t.Fatalf("Get(setDateValues, junk) error = %v", err)
	}
	if got := v.ISO(); got != "2001-06-01T09:00:30.000Z" {
		t.Errorf("unusable parts changed the value: %s", got)
	}
}

func TestCustomExtensions(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	v := f.FromTime(utc(2000, time.January, 1, 0, 0))

	err := f.AddCustomExtension(Extension{
		Name:     "addCentury",
		IsGetter: true,
		Fn:       func(v *Value, _ ...any) any { return v.Add("100 years") },
	})
	if err != nil {
		t.Fatalf("AddCustomExtension() error = %v", err)
	}
	err = f.AddCustomExtension(Extension{
		Name:       "shout",
		Enumerable: true,
		Fn: func(v *Value, args ...any) any {
			return fmt.Sprintf("%v %d!", args[0], v.Year(Zone))
		},
	})
	if err != nil {
		t.Fatalf("AddCustomExtension() error = %v", err)
	}

	got, err := v.Get("addCentury")
	if err != nil {
		t.Fatalf("Get(addCentury) error = %v", err)
	}
	if year := got.(*Value).Year(User); year != 2100 {
		t.Errorf("addCentury year = %d, want 2100", year)
	}

	got, err = v.Get("shout", "hello")
	if err != nil || got != "hello 2000!" {
		t.Errorf("Get(shout) = %v, %v", got, err)
	}

	keys := v.Keys()
	if !sort.StringsAreSorted(keys) {
		t.Error("Keys() not sorted")
	}
	has := func(name string) bool {
		i := sort.SearchStrings(keys, name)
		return i < len(keys) && keys[i] == name
	}
	if has("addCentury") {
		t.Error("non enumerable extension listed in Keys()")
	}
	for _, name := range []string{"shout", "clone", "addDays", "tomorrow", "zoneDateTime"} {
		if !has(name) {
			t.Errorf("Keys() is missing %q", name)
		}
	}

	if err := f.AddCustomExtension(Extension{Name: "  "}); !mdwerror.HasCode(err, mdwerror.CodeInvalidExtension) {
		t.Errorf("blank extension error = %v", err)
	}
}

func TestGetUnknownMember(t *testing.T) {
	f, _ := newTestFactory(t, utcEnv)
	_, err := f.Now().Get("fooBar")
	if !mdwerror.HasCode(err, mdwerror.CodeUnknownMember) {
		t.Errorf("Get(fooBar) error = %v, want CodeUnknownMember", err)
	}
}

func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry()
	for _, answer := range []int{1, 2} {
		answer := answer
		if err := r.Add(Extension{Name: "answer", Fn: func(*Value, ...any) any { return answer }}); err != nil {
			t.Fatal(err)
		}
	}
	ext, ok := r.Lookup("answer")
	if !ok || ext.Fn(nil) != 2 {
		t.Error("later registration should replace the earlier one")
	}
	if diff := cmp.Diff([]string{"answer"}, r.Names(false)); diff != "" {
		t.Errorf("Names(false) mismatch (-want +got):\n%s", diff)
	}
	if len(r.Names(true)) != 0 {
		t.Error("Names(true) should skip non enumerable entries")
	}
}
