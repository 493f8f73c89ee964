package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/pkg/zonetime"
)

var (
	formatZone    string
	formatOptions []string
)

var formatCmd = &cobra.Command{
	Use:   "format <template> [date]",
	Short: "Renders a date with a template in the user zone",
	Long: `Renders a date (default: now) with a template such as
"yyyy-mm-dd hh:mmi" or "WD d MM yyyy". Text in {braces} is kept literally.

The date is read as a wall clock in the user zone and rendered there in
the locale of the value. Options like "l:fr-FR,hrc:12" override the
template.`,
	Example: `  zonetime format "WD d MM yyyy" 2025-01-15 --option l:nl-NL`,
	Args:    cobra.RangeArgs(1, 2),
	RunE:    runFormat,
}

var zoneFormatCmd = &cobra.Command{
	Use:     "zoneformat <template> [date]",
	Short:   "Renders a date with a template in the zone of the value",
	Example: `  zonetime zoneformat "dd.mm.yyyy hh:mmi" --zone Europe/Berlin`,
	Args:    cobra.RangeArgs(1, 2),
	RunE:    runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd, zoneFormatCmd)

	for _, c := range []*cobra.Command{formatCmd, zoneFormatCmd} {
		c.Flags().StringVarP(&formatZone, "zone", "z", "", "time zone of the value")
		c.Flags().StringSliceVar(&formatOptions, "option", nil, "format options, e.g. l:de-DE,tz:UTC")
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	v := valueAt(args, 1, zonetime.Descriptor{TimeZone: formatZone})

	var out string
	if cmd.Name() == "zoneformat" {
		out = v.ZoneFormat(args[0], formatOptions...)
	} else {
		out = v.Format(args[0], formatOptions...)
	}

	data := map[string]string{"template": args[0], "timeZone": v.TimeZone(), "result": out}
	return render(cmd, data, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, out)
		return err
	})
}
