// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the zone clock TUI
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/internal/tui/zoneclock"
)

var (
	clockZones    []string
	clockTemplate string
	clockInterval time.Duration
)

var clockCmd = &cobra.Command{
	Use:     "clock",
	Aliases: []string{"worldclock", "zones"},
	Short:   "Starts the interactive zone clock",
	Long: `Starts a terminal clock showing the current time in several zones,
with their UTC offsets and DST state. Zones, template and refresh interval
come from the [clock] section of the config file unless given as flags.

Keys:
  p / Space   Pause/Resume
  Up/Down     Select a row
  q / Ctrl+C  Quit`,
	RunE: runClock,
}

func init() {
	rootCmd.AddCommand(clockCmd)

	clockCmd.Flags().StringSliceVar(&clockZones, "zones", nil, "zones to show, e.g. UTC,Asia/Tokyo")
	clockCmd.Flags().StringVarP(&clockTemplate, "template", "t", "", "time template")
	clockCmd.Flags().DurationVar(&clockInterval, "interval", 0, "refresh interval")
}

func runClock(cmd *cobra.Command, args []string) error {
	cfg := zoneclock.ConfigFrom(app.cfg, app.factory)
	if len(clockZones) > 0 {
		cfg.Zones = clockZones
	}
	if clockTemplate != "" {
		cfg.Template = clockTemplate
	}
	if clockInterval > 0 {
		cfg.Interval = clockInterval
	}

	return zoneclock.Run(cfg)
}
