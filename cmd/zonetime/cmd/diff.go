package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/pkg/zonetime"
)

var (
	diffFromZone string
	diffToZone   string
	diffDays     bool
)

var diffCmd = &cobra.Command{
	Use:   "diff <from> [to]",
	Short: "Shows the time between two dates",
	Long: `Shows the years, months, days and time between two dates (default for
<to>: now). Each date is read as a wall clock in the user zone and
compared on the wall clock of its own zone.`,
	Example: `  zonetime diff 2000-01-01
  zonetime diff "2025-01-23 14:00" "2025-01-23 14:00" --from-zone America/Los_Angeles --to-zone Pacific/Auckland`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().StringVar(&diffFromZone, "from-zone", "", "time zone of <from>")
	diffCmd.Flags().StringVar(&diffToZone, "to-zone", "", "time zone of <to>")
	diffCmd.Flags().BoolVar(&diffDays, "days", false, "print the signed number of days only")
}

func runDiff(cmd *cobra.Command, args []string) error {
	from := valueAt(args, 0, zonetime.Descriptor{TimeZone: diffFromZone})
	to := valueAt(args, 1, zonetime.Descriptor{TimeZone: diffToZone})

	if diffDays {
		days := from.DaysUntil(to)
		return render(cmd, map[string]int{"days": days}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, days)
			return err
		})
	}

	result := from.DifferenceTo(to)
	return render(cmd, result, func(w io.Writer) error {
		fmt.Fprintln(w, result.Clean)
		if result.OffsetText != "" {
			fmt.Fprintln(w, result.OffsetText)
		}
		return nil
	})
}
