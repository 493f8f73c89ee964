// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     zoneclock
// Description: Bubbletea model showing one clock per time zone
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package zoneclock

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/zonetime/pkg/core/config"
	"github.com/msto63/zonetime/pkg/core/dtformat"
	"github.com/msto63/zonetime/pkg/core/version"
	"github.com/msto63/zonetime/pkg/zonetime"
)

// Config holds zone clock configuration
type Config struct {
	Zones    []string
	Template string
	Interval time.Duration
	Locale   string
	Factory  *zonetime.Factory
}

// ConfigFrom maps the clock section of the application config
func ConfigFrom(cfg *config.Config, f *zonetime.Factory) Config {
	return Config{
		Zones:    cfg.Clock.Zones,
		Template: cfg.Clock.Template,
		Interval: cfg.Clock.Interval.Duration,
		Locale:   cfg.Defaults.Locale,
		Factory:  f,
	}
}

// Model is the Bubbletea model of the zone clock
type Model struct {
	cfg    Config
	table  table.Model
	now    time.Time
	paused bool
	width  int
}

var columns = []table.Column{
	{Title: "Zone", Width: 24},
	{Title: "Time", Width: 24},
	{Title: "UTC", Width: 8},
	{Title: "DST", Width: 5},
}

// New creates a zone clock model
func New(cfg Config) Model {
	if cfg.Factory == nil {
		cfg.Factory = zonetime.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.Template == "" {
		cfg.Template = "yyyy-mm-dd hh:mmi:ss"
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(len(cfg.Zones)+1),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())

	m := Model{cfg: cfg, table: t, now: cfg.Factory.Now().Time()}
	m.refresh()
	return m
}

// Init starts the ticker
func (m Model) Init() tea.Cmd {
	return tick(m.cfg.Interval)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		if !m.paused {
			m.now = time.Time(msg)
			m.refresh()
		}
		return m, tick(m.cfg.Interval)
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Rows returns the rendered table rows
func (m Model) Rows() []table.Row {
	return m.table.Rows()
}

// Paused reports whether the clocks are frozen
func (m Model) Paused() bool {
	return m.paused
}

func (m *Model) refresh() {
	rows := make([]table.Row, 0, len(m.cfg.Zones))
	for _, zone := range m.cfg.Zones {
		rows = append(rows, m.row(zone))
	}
	m.table.SetRows(rows)
}

func (m Model) row(zone string) table.Row {
	v := m.cfg.Factory.FromTime(m.now, zonetime.Descriptor{Locale: m.cfg.Locale, TimeZone: zone})

	dst := "-"
	if v.HasDST() {
		dst = "no"
		if v.DSTActive() {
			dst = "yes"
		}
	}
	return table.Row{v.TimeZone(), v.ZoneFormat(m.cfg.Template, clockOptions(m.cfg.Template)), v.UTC().OffsetFrom(v), dst}
}

// clockOptions keeps the clock on 24 hours unless template picks a day
// period or an hour cycle itself
func clockOptions(template string) string {
	tp := dtformat.ParseTemplate(template)
	if tp.HasWord("dp") {
		return ""
	}
	for _, token := range tp.Dynamic {
		if strings.HasPrefix(token, "hrc:") {
			return ""
		}
	}
	return "hrc:23"
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitlePanelStyle.Render(fmt.Sprintf("%s %s", Logo, version.Clock)))
	b.WriteString("\n")
	b.WriteString(TablePanelStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		RenderKeyHint("p", "pause"),
		RenderKeyHint("↑/↓", "select"),
		RenderKeyHint("q", "quit"),
	}, "  "))
	return b.String()
}

func (m Model) renderStatusBar() string {
	status := "UTC " + m.now.UTC().Format(time.RFC3339)
	if m.paused {
		status += "  " + StatusPausedStyle.Render("paused")
	}
	style := StatusBarStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, style.Render(status))
}

// Run starts the zone clock program
func Run(cfg Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}
