package main

import (
	"codeberg.org/seppun/seppun-kb/pkg/bindfile"
	"codeberg.org/seppun/seppun-kb/pkg/binding"
	"codeberg.org/seppun/seppun-kb/pkg/config"
	"codeberg.org/seppun/seppun-kb/pkg/daemonctl"
	"codeberg.org/seppun/seppun-kb/pkg/logging"
	"context"
	"errors"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"io"
	"strings"
	"time"
)

var (
	keysStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75"))
)

func startCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			foreground, _ := cmd.Flags().GetBool("foreground")

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			var marker *daemonctl.Marker
			if foreground {
				marker, err = daemonctl.CreateMarker(cfg.PidFile)
			} else {
				var isParent bool
				marker, isParent, err = daemonctl.Daemonize(cfg.PidFile, cfg.LogFile)
				if err == nil && isParent {
					fmt.Printf("seppun-kb started, logging to %s\n", cfg.LogFile)
					return nil
				}
			}
			if err != nil {
				return err
			}

			log, err := logging.New(cfg.Debug)
			if err != nil {
				_ = marker.Remove()
				return fmt.Errorf("create logger: %w", err)
			}
			defer log.Sync()

			return runDaemon(cfg, marker, log)
		},
	}
	cmd.Flags().Bool("foreground", false, "stay in the foreground (for systemd and debugging)")
	return cmd
}

func stopCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Release all grabs and stop the running daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			pid, err := daemonctl.Stop(cfg.PidFile)
			if errors.Is(err, daemonctl.ErrNotRunning) {
				fmt.Println("seppun-kb is not running")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("stopping seppun-kb (pid %d)\n", pid)
			return nil
		},
	}
}

func reloadCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Make the running daemon re-read its keymap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			pid, err := daemonctl.Reload(cfg.PidFile)
			if errors.Is(err, daemonctl.ErrNotRunning) {
				fmt.Println("seppun-kb is not running")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("reloading seppun-kb (pid %d)\n", pid)
			return nil
		},
	}
}

func addCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <binding>",
		Short: "Append a binding such as 'super+Return=xterm' to the keymap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			line := strings.TrimSpace(args[0])
			b, err := binding.Parse(line)
			if err != nil {
				return fmt.Errorf("invalid binding %q: %w", line, err)
			}
			if !b.Valid() {
				return fmt.Errorf("invalid binding %q: %w", line, binding.ErrNoKey)
			}

			err = bindfile.New(cfg.Keymap, zap.NewNop().Sugar()).Append(line)
			if err != nil {
				return err
			}
			fmt.Printf("Bind added: %s\n", line)

			_, err = daemonctl.Reload(cfg.PidFile)
			if errors.Is(err, daemonctl.ErrNotRunning) {
				fmt.Println("seppun-kb is not running, the binding is active on next start")
				return nil
			}
			return err
		},
	}
}

func listCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the bindings of the keymap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			table, rejections, err := bindfile.New(cfg.Keymap, zap.NewNop().Sugar()).Read()
			if err != nil {
				return err
			}

			printBindings(cmd.OutOrStdout(), table)
			printRejections(cmd.OutOrStdout(), rejections)
			return nil
		},
	}
}

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the keymap without touching the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			table, rejections, err := bindfile.New(cfg.Keymap, zap.NewNop().Sugar()).Read()
			if err != nil {
				return err
			}

			printRejections(cmd.OutOrStdout(), rejections)
			if len(rejections) > 0 {
				return fmt.Errorf("%s: %d of %d lines rejected", cfg.Keymap, len(rejections), len(rejections)+table.Len())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bindings ok\n", cfg.Keymap, table.Len())
			return nil
		},
	}
}

func historyCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recently launched commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cfg.History.Backend != config.BackendSQLite && cfg.History.Backend != config.BackendJSON {
				fmt.Fprintf(cmd.OutOrStdout(), "launch history is not kept on disk (backend %q)\n", cfg.History.Backend)
				return nil
			}

			store, err := openHistory(cfg.History, zap.NewNop().Sugar())
			if err != nil {
				return err
			}
			defer store.Close()

			launches, err := store.RecentLaunches(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(launches) == 0 {
				fmt.Fprintln(out, "no launches recorded")
				return nil
			}
			for _, l := range launches {
				result := fmt.Sprintf("pid %d", l.PID)
				if l.Error != "" {
					result = rejectedStyle.Render(l.Error)
				}
				fmt.Fprintf(out, "%s  %s  %s  %s\n",
					dimStyle.Render(l.Time.Local().Format(time.DateTime)),
					keysStyle.Render(l.Keys),
					shellquote.Join(l.Command...),
					result,
				)
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "number of launches to show (0 = all)")
	return cmd
}

func printBindings(out io.Writer, table binding.Table) {
	bindings := table.Bindings()
	if len(bindings) == 0 {
		fmt.Fprintln(out, "no bindings")
		return
	}

	width := 0
	for _, b := range bindings {
		width = max(width, len(b.Keys()))
	}

	keys := keysStyle.Width(width + 2)
	for _, b := range bindings {
		command := shellquote.Join(b.Command...)
		if !b.HasCommand() {
			command = dimStyle.Render("(no command)")
		}
		fmt.Fprintf(out, "%s%s\n", keys.Render(b.Keys()), command)
	}
}

func printRejections(out io.Writer, rejections []binding.Rejection) {
	for _, r := range rejections {
		fmt.Fprintf(out, "%s %s\n", rejectedStyle.Render(r.Error()), dimStyle.Render(r.Text))
	}
}
