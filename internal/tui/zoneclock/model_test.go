package zoneclock

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/msto63/zonetime/pkg/core/config"
	"github.com/msto63/zonetime/pkg/core/intl"
	"github.com/msto63/zonetime/pkg/zonetime"
)

var start = time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	f := zonetime.New(
		zonetime.WithEnvironment(intl.Environment{Locale: "en-US", TimeZone: "UTC"}),
		zonetime.WithRegistry(zonetime.NewRegistry()),
		zonetime.WithClock(func() time.Time { return start }),
	)
	return New(Config{
		Zones:    []string{"UTC", "Europe/Berlin", "Asia/Tokyo"},
		Template: "yyyy-mm-dd hh:mmi",
		Locale:   "en-US",
		Factory:  f,
	})
}

func TestRows(t *testing.T) {
	m := newTestModel(t)

	want := []table.Row{
		{"UTC", "2025-07-01 12:00", "+00:00", "-"},
		{"Europe/Berlin", "2025-07-01 14:00", "+02:00", "yes"},
		{"Asia/Tokyo", "2025-07-01 21:00", "+09:00", "-"},
	}
	if diff := cmp.Diff(want, m.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestClockOptions(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"yyyy-mm-dd hh:mmi", "hrc:23"},
		{"hh:mmi dp", ""},
		{"hh:mmi hrc:12", ""},
		{"hh:mmi {dp}", "hrc:23"},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			if got := clockOptions(tt.template); got != tt.want {
				t.Errorf("clockOptions(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestTick(t *testing.T) {
	m := newTestModel(t)

	next := time.Date(2025, time.December, 1, 6, 30, 0, 0, time.UTC)
	updated, cmd := m.Update(tickMsg(next))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m = updated.(Model)
	if diff := cmp.Diff(table.Row{"Europe/Berlin", "2025-12-01 07:30", "+01:00", "no"}, m.Rows()[1]); diff != "" {
		t.Errorf("Berlin row mismatch (-want +got):\n%s", diff)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = updated.(Model)
	if !m.Paused() {
		t.Fatal("p should pause")
	}
	updated, _ = m.Update(tickMsg(next.Add(time.Hour)))
	m = updated.(Model)
	if got := m.Rows()[0][1]; got != "2025-12-01 06:30" {
		t.Errorf("paused clock moved to %q", got)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestView(t *testing.T) {
	view := newTestModel(t).View()
	for _, want := range []string{Logo, "Asia/Tokyo", "2025-07-01T12:00:00Z", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() is missing %q", want)
		}
	}
}

func TestConfigFrom(t *testing.T) {
	cfg := config.Default()
	got := ConfigFrom(cfg, nil)
	if diff := cmp.Diff(cfg.Clock.Zones, got.Zones); diff != "" {
		t.Errorf("Zones mismatch (-want +got):\n%s", diff)
	}
	if got.Interval != time.Second || got.Template != cfg.Clock.Template {
		t.Errorf("ConfigFrom() = %+v", got)
	}
}
