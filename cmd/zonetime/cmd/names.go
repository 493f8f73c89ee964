package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/pkg/zonetime"
)

var namesShort bool

var namesCmd = &cobra.Command{
	Use:   "names [locale]",
	Short: "Lists month and weekday names of a locale",
	Example: `  zonetime names nl-NL
  zonetime names zh --short`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNames,
}

func init() {
	rootCmd.AddCommand(namesCmd)

	namesCmd.Flags().BoolVar(&namesShort, "short", false, "print abbreviated names")
}

type localNames struct {
	Locale   string            `json:"locale" yaml:"locale"`
	Months   zonetime.NameList `json:"months" yaml:"months"`
	Weekdays zonetime.NameList `json:"weekdays" yaml:"weekdays"`
}

func runNames(cmd *cobra.Command, args []string) error {
	locale := ""
	if len(args) > 0 {
		locale = args[0]
	}
	locale = app.factory.ValidateLocaleZoneInfo(zonetime.Descriptor{Locale: locale}).Locale

	data := localNames{
		Locale:   locale,
		Months:   app.factory.LocalMonthNames(locale),
		Weekdays: app.factory.LocalWeekdayNames(locale),
	}
	return render(cmd, data, func(w io.Writer) error {
		months, weekdays := data.Months.Long, data.Weekdays.Long
		if namesShort {
			months, weekdays = data.Months.Short, data.Weekdays.Short
		}
		fmt.Fprintf(w, "%s\n", data.Locale)
		fmt.Fprintf(w, "  months:   %s\n", strings.Join(months, ", "))
		fmt.Fprintf(w, "  weekdays: %s\n", strings.Join(weekdays, ", "))
		return nil
	})
}
