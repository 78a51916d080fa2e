// Command smartspeak-nav runs and inspects SmartSpeak navigation flows.
//
// Usage:
//
//	smartspeak-nav replay flows/teacher.toml
//	smartspeak-nav menu --role guardian
//	smartspeak-nav listen --device /dev/input/event1
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak"
	"github.com/jhncrl04/smartspeak-sub001/pkg/smartspeak/config"
)

type globalFlags struct {
	configPath string
	logFile    string
	logLevel   string
	locale     string
}

// app carries state set up by the root command for its subcommands.
type app struct {
	flags globalFlags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "smartspeak-nav",
		Short:         "Run and inspect SmartSpeak navigation flows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := smartspeak.Init(smartspeak.Options{
				ConfigPath: a.flags.configPath,
				LogPath:    a.flags.logFile,
				LogLevel:   a.flags.logLevel,
				Locale:     a.flags.locale,
			})
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default: XDG config, then ./smartspeak.toml)")
	pf.StringVar(&a.flags.logFile, "log-file", "", "log file path (default: XDG state directory)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.locale, "locale", "", "language for screen titles, e.g. en or fil")

	root.AddCommand(
		newReplayCmd(a),
		newMenuCmd(a),
		newListenCmd(a),
	)
	return root
}

func main() {
	err := newRootCmd().Execute()
	smartspeak.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
