package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/pkg/zonetime"
)

var (
	addDate     string
	addZone     string
	addTemplate string
)

var addCmd = &cobra.Command{
	Use:   "add <expression>",
	Short: "Moves a date by an expression like \"1 year, 3 days\"",
	Long: `Moves a date (default: now) by an expression such as "2 weeks" or
"1 year, -3 hours". Fields change on the wall clock of --zone, so adding a
day across a DST change keeps the clock time.`,
	Example: `  zonetime add "1 month" --date 2000-01-31
  zonetime add "-1 day, 2 hours" --zone Europe/Berlin`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var subtractCmd = &cobra.Command{
	Use:   "subtract <expression>",
	Short: "Moves a date back by an expression",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd, subtractCmd)

	for _, c := range []*cobra.Command{addCmd, subtractCmd} {
		c.Flags().StringVar(&addDate, "date", "", "start date (default: now)")
		c.Flags().StringVarP(&addZone, "zone", "z", "", "time zone of the date")
		c.Flags().StringVarP(&addTemplate, "template", "t", "", "output template (default: config defaults.template)")
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	v := valueAt([]string{addDate}, 0, zonetime.Descriptor{TimeZone: addZone})
	expr := strings.Join(args, ",")

	var moved *zonetime.Value
	if cmd.Name() == "subtract" {
		moved = v.Subtract(expr)
	} else {
		moved = v.Add(expr)
	}

	template := addTemplate
	if template == "" {
		template = app.cfg.Defaults.Template
	}
	out := moved.ZoneFormat(template)

	data := map[string]any{"from": v, "to": moved, "result": out}
	return render(cmd, data, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, out)
		return err
	})
}
