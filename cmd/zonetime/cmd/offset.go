package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/pkg/zonetime"
)

var offsetAt string

var offsetCmd = &cobra.Command{
	Use:   "offset <zone> [other-zone]",
	Short: "Shows the offset between two zones",
	Long: `Shows the "+HH:MM" offset from <zone> to [other-zone] (default: UTC),
positive when the clock of [other-zone] reads later.`,
	Example: `  zonetime offset Europe/Paris Pacific/Auckland
  zonetime offset Asia/Kolkata --at 2025-07-01`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runOffset,
}

func init() {
	rootCmd.AddCommand(offsetCmd)

	offsetCmd.Flags().StringVar(&offsetAt, "at", "", "date the offset applies to (default: now)")
}

type offsetResult struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Offset string `json:"offset" yaml:"offset"`
	Text   string `json:"text" yaml:"text"`
}

func runOffset(cmd *cobra.Command, args []string) error {
	from := valueAt([]string{offsetAt}, 0, zonetime.Descriptor{TimeZone: args[0]})
	to := from.UTC()
	if len(args) > 1 {
		to = from.Clone().Relocate(zonetime.Descriptor{TimeZone: args[1]})
	}

	diff := from.DifferenceTo(to)
	result := offsetResult{
		From:   from.TimeZone(),
		To:     to.TimeZone(),
		Offset: from.OffsetFrom(to),
		Text:   diff.OffsetText,
	}
	return render(cmd, result, func(w io.Writer) error {
		fmt.Fprintf(w, "%s -> %s: %s\n", result.From, result.To, result.Offset)
		if result.Text != "" {
			fmt.Fprintln(w, result.Text)
		}
		return nil
	})
}
