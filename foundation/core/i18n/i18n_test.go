// File: i18n_test.go
// Title: Internationalization Module Tests
// Description: Tests bundle loading from fs.FS, locale matching, templates
//              and plural forms.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: In-memory bundles via fstest.MapFS

package i18n

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testBundles() fstest.MapFS {
	return fstest.MapFS{
		"phrases/en.toml": {Data: []byte(`
[duration]
hour = ["{{.Count}} hour", "{{.Count}} hours"]
equal = "Dates are equal"
and = "and"
`)},
		"phrases/de.yaml": {Data: []byte(`
duration:
  hour:
    - "{{.Count}} Stunde"
    - "{{.Count}} Stunden"
  equal: "Daten sind gleich"
`)},
		"phrases/README.md": {Data: []byte("ignored")},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Options{DefaultLocale: "en", FS: testBundles(), Dir: "phrases"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestNew(t *testing.T) {
	m := newTestManager(t)

	locales := m.GetAvailableLocales()
	if len(locales) != 2 || locales[0] != "de" || locales[1] != "en" {
		t.Errorf("available locales = %v", locales)
	}

	t.Run("empty default locale", func(t *testing.T) {
		if _, err := New(Options{FS: testBundles(), Dir: "phrases"}); err == nil {
			t.Error("expected error for empty default locale")
		}
	})

	t.Run("default locale missing", func(t *testing.T) {
		if _, err := New(Options{DefaultLocale: "fr", FS: testBundles(), Dir: "phrases"}); err == nil {
			t.Error("expected error when default bundle is absent")
		}
	})
}

func TestNewFromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "nl.toml"), []byte(`greeting = "Hallo"`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := New(Options{DefaultLocale: "nl", Dir: dir})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := m.T("greeting"); got != "Hallo" {
		t.Errorf("T(greeting) = %q", got)
	}
}

func TestMatch(t *testing.T) {
	m := newTestManager(t)

	tests := map[string]string{
		"de":    "de",
		"de-DE": "de",
		"de_AT": "de",
		"en-GB": "en",
		"ja-JP": "en",
		"":      "en",
	}
	for in, want := range tests {
		if got := m.Match(in); got != want {
			t.Errorf("Match(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTFor(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{"en", "duration.equal", "Dates are equal"},
		{"de-DE", "duration.equal", "Daten sind gleich"},
		{"de", "duration.and", "and"},
		{"en", "duration.missing", "[duration.missing]"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.key, func(t *testing.T) {
			if got := m.TFor(tt.locale, tt.key); got != tt.want {
				t.Errorf("TFor = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := m.TryTFor("en", "nope"); err == nil {
		t.Error("TryTFor should fail for missing key")
	}
}

func TestPluralFor(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		locale string
		count  int
		want   string
	}{
		{"en", 1, "1 hour"},
		{"en", 0, "0 hours"},
		{"en", 21, "21 hours"},
		{"de", 1, "1 Stunde"},
		{"de-CH", 3, "3 Stunden"},
	}

	for _, tt := range tests {
		got := m.PluralFor(tt.locale, "duration.hour", tt.count, map[string]interface{}{"Count": tt.count})
		if got != tt.want {
			t.Errorf("PluralFor(%s, %d) = %q, want %q", tt.locale, tt.count, got, tt.want)
		}
	}
}

func TestSetLocale(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetLocale("de"); err != nil {
		t.Fatalf("SetLocale failed: %v", err)
	}
	if got := m.T("duration.equal"); got != "Daten sind gleich" {
		t.Errorf("T after SetLocale = %q", got)
	}
	if err := m.SetLocale("xx"); err == nil {
		t.Error("expected error for unknown locale")
	}
	if m.GetCurrentLocale() != "de" {
		t.Errorf("current locale changed by failed SetLocale: %s", m.GetCurrentLocale())
	}
}
