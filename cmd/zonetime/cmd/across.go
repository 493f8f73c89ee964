package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/pkg/zonetime"
)

var (
	acrossFrom string
	acrossTo   string
)

var acrossCmd = &cobra.Command{
	Use:   "across [date]",
	Short: "Shows what a wall clock time in one zone reads in another",
	Long: `Reads [date] (default: now) as a wall clock in --from and shows the same
instant in --to, which defaults to the user zone.`,
	Example: `  zonetime across "2025/01/15 15:00" --from America/Vancouver --to Europe/Amsterdam`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runAcross,
}

func init() {
	rootCmd.AddCommand(acrossCmd)

	acrossCmd.Flags().StringVar(&acrossFrom, "from", "", "zone the date is read in")
	acrossCmd.Flags().StringVar(&acrossTo, "to", "", "zone to show the date in (default: user zone)")
	_ = acrossCmd.MarkFlagRequired("from")
}

func runAcross(cmd *cobra.Command, args []string) error {
	q := zonetime.AcrossZones{ZoneID: acrossFrom, UserZoneID: acrossTo}
	if len(args) > 0 {
		q.DateTime = args[0]
	}
	result := app.factory.TimeAcrossZones(q)

	return render(cmd, result, func(w io.Writer) error {
		keys := make([]string, 0, len(result.Result))
		for k := range result.Result {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%-24s %s\n", k, result.Result[k])
		}
		fmt.Fprintln(w, result.TimeDifference)
		return nil
	})
}
