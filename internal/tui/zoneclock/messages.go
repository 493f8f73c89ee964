// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     zoneclock
// Description: Message types for the zone clock
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package zoneclock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries the instant the clocks show
type tickMsg time.Time

// tick schedules the next tickMsg after interval
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
