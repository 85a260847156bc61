// Command sandbox runs the engine with a pannable map and the on-screen
// thumbstick that drives it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hubastard/grove-thumbstick/engine/colors"
	"github.com/hubastard/grove-thumbstick/engine/config"
	"github.com/hubastard/grove-thumbstick/engine/core"
	glbackend "github.com/hubastard/grove-thumbstick/engine/gfx/gl"
	"github.com/hubastard/grove-thumbstick/engine/observability"
	"github.com/hubastard/grove-thumbstick/engine/platform"
	"github.com/hubastard/grove-thumbstick/engine/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:           "sandbox",
		Short:         "Interactive playground for the grove thumbstick",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./grove.yaml)")

	root.AddCommand(newRunCmd(&cfgFile), newConfigCmd(&cfgFile), newResetCmd(&cfgFile))
	return root
}

func newRunCmd(cfgFile *string) *cobra.Command {
	var touch bool
	var userAgent string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the sandbox window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("touch") {
				cfg.Joystick.TouchCapable = touch
			}
			if cmd.Flags().Changed("user-agent") {
				cfg.Joystick.UserAgent = userAgent
			}
			return run(cfg)
		},
	}
	cmd.Flags().BoolVar(&touch, "touch", false, "treat the host as touch capable (always show the stick)")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "user agent string fed to mobile detection")
	return cmd
}

func newConfigCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newResetCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-placement",
		Short: "Forget the saved thumbstick position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			store, err := storage.NewFileStore(cfg.Storage.Path)
			if err != nil {
				return err
			}
			if err := store.Delete(cfg.Joystick.StorageKey); err != nil {
				return fmt.Errorf("reset placement: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "placement %q cleared in %s\n", cfg.Joystick.StorageKey, store.Path())
			return nil
		},
	}
}

func run(cfg *config.Config) error {
	log := observability.NewLogger(cfg.Logger)
	defer func() { _ = log.Sync() }()

	store, err := storage.NewFileStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	log.Info("placement store", zap.String("path", store.Path()))

	engineCfg := core.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		VSync:      cfg.Window.VSync,
		ClearColor: colors.DarkGray,
	}
	app := &App{cfg: cfg, store: store, log: log}

	newWindow := func(c core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(c, log.Named("platform"))
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	newRenderer := func(win core.Window, c core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(win, c, log.Named("gl"))
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	return core.Run(app, engineCfg, newWindow, newRenderer, log)
}
