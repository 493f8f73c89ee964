package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
	"github.com/msto63/zonetime/pkg/core/intl"
	"github.com/msto63/zonetime/pkg/zonetime"
)

var dstCmd = &cobra.Command{
	Use:   "dst <zone> [date]",
	Short: "Reports whether a zone observes and currently applies DST",
	Example: `  zonetime dst Europe/Berlin
  zonetime dst Australia/Sydney 2025-01-15`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDST,
}

func init() {
	rootCmd.AddCommand(dstCmd)
}

type dstResult struct {
	TimeZone  string `json:"timeZone" yaml:"timeZone"`
	Year      int    `json:"year" yaml:"year"`
	HasDST    bool   `json:"hasDST" yaml:"hasDST"`
	DSTActive bool   `json:"DSTActive" yaml:"DSTActive"`
	UTCOffset string `json:"UTCOffset" yaml:"UTCOffset"`
}

func runDST(cmd *cobra.Command, args []string) error {
	if _, _, err := intl.ResolveTimeZone(args[0]); err != nil {
		return mdwerror.Wrap(err, "unknown time zone").
			WithCode(mdwerror.CodeInvalidTimeZone).
			WithOperation("cmd.dst").
			WithDetail("zone", args[0])
	}
	v := valueAt(args, 1, zonetime.Descriptor{TimeZone: args[0]})

	result := dstResult{
		TimeZone:  v.TimeZone(),
		Year:      v.Year(zonetime.Zone),
		HasDST:    v.HasDST(),
		DSTActive: v.DSTActive(),
		UTCOffset: v.UTC().OffsetFrom(v),
	}
	return render(cmd, result, func(w io.Writer) error {
		fmt.Fprintf(w, "%s (UTC%s)\n", result.TimeZone, result.UTCOffset)
		fmt.Fprintf(w, "  observes DST in %d: %s\n", result.Year, yesNo(result.HasDST))
		fmt.Fprintf(w, "  DST in effect:       %s\n", yesNo(result.DSTActive))
		return nil
	})
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
