package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/cellui/audio"
	"github.com/lixenwraith/cellui/backend"
	"github.com/lixenwraith/cellui/config"
	"github.com/lixenwraith/cellui/logging"
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/ui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive demo",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

var scriptCmd = &cobra.Command{
	Use:   "script <file>",
	Short: "Replay a debug command script against the demo",
	Long: `Script runs the demo on the debug backend, feeding it the commands in file.

Frames requested with Paint are printed to stdout. A failed CheckHash,
CheckCursor or CheckClipboardText stops the run with a non-zero exit
status unless the script disables errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cellui %s (commit: %s)\n", version, commit)
	},
}

func runDemo(cmd *cobra.Command, args []string) (err error) {
	opts, err := cfg.BackendOptions()
	if err != nil {
		return err
	}
	log := logging.Named("cellui")
	opts.Logger = logging.Named("backend")

	b, err := backend.New(opts)
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", opts.Type, err)
	}
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(2)
		}
	}()
	defer b.Close()

	bell := newBell(cfg, log)
	defer bell.Close()

	if err := runApp(b, cfg, bell); err != nil {
		return err
	}
	log.Info("demo finished")
	logging.Sync()
	return nil
}

func runScript(cmd *cobra.Command, args []string) (err error) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	opts, err := cfg.BackendOptions()
	if err != nil {
		return err
	}
	opts.Type = backend.Debug
	opts.Script = string(data)
	opts.Output = cmd.OutOrStdout()
	opts.Logger = logging.Named("backend")

	b, err := backend.New(opts)
	if err != nil {
		return err
	}
	defer b.Close()

	defer func() {
		if r := recover(); r != nil {
			var ae *backend.AssertionError
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				err = fmt.Errorf("script %s: %w", args[0], ae)
				return
			}
			panic(r)
		}
	}()
	return runApp(b, cfg, nil)
}

// newBell opens the speaker when the bell is enabled; failures leave it silent
func newBell(c *config.Config, log *zap.Logger) *audio.Bell {
	volume := c.Bell.Volume
	if !c.Bell.Enabled {
		volume = 0
	}
	bell := audio.NewBell(audio.DefaultTone(), volume, logging.Named("audio"))
	if volume > 0 {
		if err := bell.Initialize(); err != nil {
			log.Debug("bell disabled", zap.Error(err))
		}
	}
	return bell
}

// runApp builds the demo on b and runs it until the backend closes
func runApp(b backend.Backend, c *config.Config, bell *audio.Bell) error {
	th, err := c.Theme.Apply(ui.DefaultTheme())
	if err != nil {
		return err
	}
	d := newDemo()
	opts := []ui.Option{ui.WithTheme(th), ui.WithDesktop(d), ui.WithLogger(logging.Named("ui"))}
	if bell != nil {
		opts = append(opts, ui.WithBell(func() {
			if d.soundOn() {
				bell.Ring()
			}
		}))
	}
	rt := ui.New(b, opts...)
	d.build(rt)
	return rt.Run()
}
