// Cellui runs the cellui demo application.
//
// It hosts every stock control in one window on the selected backend, and can
// replay a debug command script against the same application for scripted checks.
//
// Usage:
//
//	cellui [command] [flags]
//
// Running without arguments starts the demo on the configured backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cellui/config"
	"github.com/lixenwraith/cellui/logging"
)

// Set through -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	flagConfig   string
	flagBackend  string
	flagWidth    int
	flagHeight   int
	flagLogLevel string
	flagLogFile  string
	flagNoBell   bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cellui",
	Short: "Text-mode UI toolkit demo",
	Long: `Cellui shows the stock controls of the cellui toolkit in one window.

The backend is picked from the configuration file unless --backend is given:
ansi, console, debug or webcanvas. Use the script command to replay a debug
command file against the demo.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		applyFlags(cmd, loaded)
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid flags: %w", err)
		}
		if err := logging.Initialize(loaded.LogLevel, loaded.LogFile); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "configuration file (default is the user config dir)")
	pf.StringVarP(&flagBackend, "backend", "b", "", "backend: default, ansi, console, debug or webcanvas")
	pf.IntVar(&flagWidth, "width", 0, "screen width, 0 uses the device size")
	pf.IntVar(&flagHeight, "height", 0, "screen height, 0 uses the device size")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error; empty disables logging")
	pf.StringVar(&flagLogFile, "log-file", "", "log destination, stderr when empty")
	pf.BoolVar(&flagNoBell, "no-bell", false, "disable the audible bell")

	rootCmd.AddCommand(demoCmd, scriptCmd, versionCmd)
}

// applyFlags overrides configuration values with the flags given on the command line
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		c.Backend = flagBackend
	}
	if flags.Changed("width") {
		c.Width = flagWidth
	}
	if flags.Changed("height") {
		c.Height = flagHeight
	}
	if flags.Changed("log-level") {
		c.LogLevel = flagLogLevel
	}
	if flags.Changed("log-file") {
		c.LogFile = flagLogFile
	}
	if flagNoBell {
		c.Bell.Enabled = false
	}
}
