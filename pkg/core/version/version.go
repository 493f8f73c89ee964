// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

// Version constants for zonetime components
const (
	// Library version
	Library = "1.0.0"

	// Tool versions
	CLI   = "1.0.0"
	Clock = "1.0.0"
)

// Commit and BuildDate are set at link time with -ldflags "-X ..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "zonetime":
		return CLI
	case "clock", "zoneclock":
		return Clock
	default:
		return Library
	}
}

// String renders a one line version banner for name
func String(name string) string {
	return name + " " + ComponentVersion(name) + " (library " + Library + ", commit " + Commit + ", built " + BuildDate + ")"
}
