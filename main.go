package main

import (
	"codeberg.org/seppun/seppun-kb/pkg/config"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	err := rootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	config string
	keymap string
	debug  bool
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:          "seppun-kb",
		Short:        "Hotkey daemon for X11",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.config, "config", "", "settings file (default $XDG_CONFIG_HOME/seppun/config.toml)")
	root.PersistentFlags().StringVar(&flags.keymap, "keymap", "", "keymap file (overrides the settings file)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		startCmd(&flags),
		stopCmd(&flags),
		reloadCmd(&flags),
		addCmd(&flags),
		listCmd(&flags),
		checkCmd(&flags),
		historyCmd(&flags),
	)

	return root
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}

	if flags.keymap != "" {
		cfg.Keymap, err = filepath.Abs(flags.keymap)
		if err != nil {
			return nil, fmt.Errorf("resolve keymap path: %w", err)
		}
	}
	if flags.debug {
		cfg.Debug = true
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return cfg, nil
}
