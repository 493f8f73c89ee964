package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/pkg/zonetime"
)

var (
	showZone   string
	showLocale string
)

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Shows a date in a zone next to the user zone",
	Long: `Shows a date (default: now) in the given locale and zone, next to the
user locale and zone, with the offsets between them and UTC.

The date is read as a wall clock in the user zone.`,
	Example: `  zonetime show --zone Asia/Tokyo
  zonetime show "2025-03-30 02:30" --tz Europe/Berlin --zone America/New_York -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showZone, "zone", "z", "", "time zone of the value")
	showCmd.Flags().StringVar(&showLocale, "in-locale", "", "locale of the value")
}

func runShow(cmd *cobra.Command, args []string) error {
	v := valueAt(args, 0, zonetime.Descriptor{Locale: showLocale, TimeZone: showZone})
	info := v.Info()

	return render(cmd, info, func(w io.Writer) error {
		fmt.Fprintf(w, "%-12s %s\n", "Value:", info.InstanceLocale.String)
		fmt.Fprintf(w, "%-12s %s\n", "User:", info.UserLocale.String)
		fmt.Fprintf(w, "%-12s %s\n", "Local:", v.Local())
		fmt.Fprintf(w, "%-12s %s\n", "ISO:", v.ISO())
		fmt.Fprintf(w, "%-12s %s\n", "Week:", fmt.Sprintf("%d of %d, %s quarter", v.WeekNr(), v.WeeksInYear(), v.Quarter()))
		fmt.Fprintf(w, "%-12s %s\n", "From local:", info.OffsetFromLocal)
		fmt.Fprintf(w, "%-12s %s\n", "From UTC:", info.OffsetFromUTC)
		return nil
	})
}
