package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/pkg/core/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Shows the effective configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, app.cfg, func(w io.Writer) error {
			return app.cfg.Write(w)
		})
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Lists the locations searched for a config file",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "$%s_CONFIG\n", config.EnvPrefix)
		for _, p := range config.DefaultPaths() {
			marker := " "
			if _, err := os.Stat(p); err == nil {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %s\n", marker, p)
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathsCmd)
	rootCmd.AddCommand(configCmd)
}
