package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/zonetime/foundation/core/log"
	"github.com/msto63/zonetime/foundation/utils/stringx"
	"github.com/msto63/zonetime/pkg/core/config"
	"github.com/msto63/zonetime/pkg/core/intl"
	"github.com/msto63/zonetime/pkg/core/logging"
	"github.com/msto63/zonetime/pkg/zonetime"
)

var (
	cfgFile      string
	verbose      bool
	userLocale   string
	userTimeZone string
	outputFormat string
)

// app is the state shared by all commands, set up before each run
var app struct {
	cfg     *config.Config
	logger  *log.Logger
	factory *zonetime.Factory
}

var rootCmd = &cobra.Command{
	Use:   "zonetime",
	Short: "Locale and time zone aware dates on the command line",
	Long: `zonetime formats, compares and shifts date/time values across locales
and IANA time zones.

The user locale and zone come from --locale and --tz, the [defaults]
section of the config file, or the environment (LANG, TZ), in that order.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command; a failing command is also reported on the
// configured logger
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && app.logger != nil {
		app.logger.LogError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./zonetime.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&userLocale, "locale", "l", "", "user locale, e.g. de-DE")
	rootCmd.PersistentFlags().StringVar(&userTimeZone, "tz", "", "user time zone, e.g. Europe/Berlin")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		app.cfg, err = config.Load(cfgFile)
	} else {
		app.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		printError("can't load configuration", err)
		return err
	}

	app.logger = logging.NewCLILogger(app.cfg.General.LogLevel, app.cfg.General.LogFormat, verbose)

	env := intl.DefaultEnvironment()
	env.Locale = stringx.FirstNonBlank(userLocale, app.cfg.Defaults.Locale, env.Locale)
	env.TimeZone = stringx.FirstNonBlank(userTimeZone, app.cfg.Defaults.TimeZone, env.TimeZone)

	app.factory = zonetime.New(zonetime.WithEnvironment(env), zonetime.WithLogger(app.logger))
	app.logger.Debug("environment ready", log.Fields{"locale": env.Locale, "time_zone": env.TimeZone})
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
