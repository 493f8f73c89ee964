// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     cmd
// Description: CLI command printing month and year calendars
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
	"github.com/msto63/zonetime/pkg/core/intl"
	"github.com/msto63/zonetime/pkg/zonetime"
)

var calendarLocale string

var calendarCmd = &cobra.Command{
	Use:   "calendar [year] [month]",
	Short: "Prints a month or year calendar",
	Long: `Prints the calendar of a month (1-12) or, without a month, of the whole
year. Names follow --in-locale, or the user locale.`,
	Example: `  zonetime calendar 2000 2 --in-locale fr
  zonetime calendar 2025 -o json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().StringVar(&calendarLocale, "in-locale", "", "locale of month and weekday names")
}

var (
	calendarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#8B5CF6")).
				Width(7 * calendarCellWidth).
				Align(lipgloss.Center)

	calendarHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#06B6D4")).
				Width(calendarCellWidth).
				Align(lipgloss.Right)

	calendarCellStyle = lipgloss.NewStyle().
				Width(calendarCellWidth).
				Align(lipgloss.Right)

	calendarMonthStyle = lipgloss.NewStyle().
				MarginRight(2).
				MarginBottom(1)
)

const calendarCellWidth = 4

// calendarMonth is the serialized form of one month
type calendarMonth struct {
	Name string   `json:"name" yaml:"name"`
	Days []string `json:"days" yaml:"days"`
}

type calendarYear struct {
	Year   int             `json:"year" yaml:"year"`
	Locale string          `json:"locale" yaml:"locale"`
	Months []calendarMonth `json:"calendar" yaml:"calendar"`
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := app.factory.Now()
	year, month := now.Year(zonetime.User), 0

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return mdwerror.Wrap(err, "invalid year").
				WithCode(mdwerror.CodeInvalidNumericInput).
				WithDetail("year", args[0])
		}
		year = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return mdwerror.Wrap(err, "invalid month").
				WithCode(mdwerror.CodeInvalidNumericInput).
				WithDetail("month", args[1])
		}
		month = n
	}

	locale := app.factory.ValidateLocaleZoneInfo(zonetime.Descriptor{Locale: calendarLocale}).Locale

	if month != 0 {
		days, err := app.factory.MonthCalendar(year, month, locale)
		if err != nil {
			return err
		}
		data := calendarYear{Year: year, Locale: locale, Months: []calendarMonth{serializeMonth(days)}}
		return render(cmd, data, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, renderMonth(days, locale))
			return err
		})
	}

	cal := app.factory.YearCalendar(year, locale)
	data := calendarYear{Year: year, Locale: locale}
	for _, m := range cal.Months {
		data.Months = append(data.Months, serializeMonth(m.Days))
	}

	return render(cmd, data, func(w io.Writer) error {
		var rows []string
		for i := 0; i < len(cal.Months); i += 3 {
			var blocks []string
			for _, m := range cal.Months[i:min(i+3, len(cal.Months))] {
				blocks = append(blocks, calendarMonthStyle.Render(renderMonth(m.Days, locale)))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
		}
		_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
		return err
	})
}

func serializeMonth(days []*zonetime.Value) calendarMonth {
	m := calendarMonth{}
	if len(days) == 0 {
		return m
	}
	m.Name = days[0].MonthName(zonetime.User)
	for _, d := range days {
		m.Days = append(m.Days, d.Format("yyyy-mm-dd", "l:en-CA"))
	}
	return m
}

// renderMonth lays out days as a Sunday first grid
func renderMonth(days []*zonetime.Value, locale string) string {
	if len(days) == 0 {
		return ""
	}
	first := days[0]

	lines := []string{calendarTitleStyle.Render(fmt.Sprintf("%s %d", first.MonthName(zonetime.User), first.Year(zonetime.User)))}

	var header []string
	for _, name := range intl.WeekdayNames(locale, intl.Short) {
		header = append(header, calendarHeaderStyle.Render(truncate(name, calendarCellWidth-1)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	week := make([]string, 0, 7)
	for i := 0; i < first.Day(zonetime.User); i++ {
		week = append(week, calendarCellStyle.Render(""))
	}
	for _, d := range days {
		week = append(week, calendarCellStyle.Render(strconv.Itoa(d.DateNr(zonetime.User))))
		if len(week) == 7 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = week[:0]
		}
	}
	if len(week) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
