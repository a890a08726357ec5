package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"serialization-bridge/bridge"
	"serialization-bridge/fixture"
)

// app is the state shared by every command after flags are parsed.
type app struct {
	configPath string
	debug      bool

	cfg    bridge.Config
	logger *zap.Logger
}

func (a *app) load(*cobra.Command, []string) error {
	cfg, err := bridge.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	if a.debug {
		cfg.DebugLogs = true
	}

	a.cfg = *cfg
	a.logger = zap.NewNop()

	if cfg.DebugLogs {
		a.logger = bridge.NewLogger(*cfg)
	}

	return nil
}

func (a *app) bridgeFor(s *fixture.Scene) (*bridge.Bridge, error) {
	return bridge.New(s.World, a.cfg, bridge.WithLogger(a.logger))
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "bridge",
		Short: "Save, restore and duplicate bridged component data",
		Long: color.CyanString(`bridge runs the serialization bridge against a seeded sample scene.

It shows which component fields are bridged, what their persisted state
looks like and how duplication carries them to a copied subtree.`),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./bridge.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable development logging")

	rootCmd.AddCommand(newDiscoverCommand(a))
	rootCmd.AddCommand(newSaveCommand(a))
	rootCmd.AddCommand(newDuplicateCommand(a))

	return rootCmd
}
