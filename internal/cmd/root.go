// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llbbl/startmenu/internal/config"
	"github.com/llbbl/startmenu/internal/guard"
	"github.com/llbbl/startmenu/internal/logging"
	"github.com/llbbl/startmenu/internal/menu"
	"github.com/llbbl/startmenu/internal/status"
	"github.com/llbbl/startmenu/internal/sysinfo"
	"github.com/llbbl/startmenu/internal/theme"
	"github.com/llbbl/startmenu/internal/tui"
	"github.com/llbbl/startmenu/internal/weather"
)

// Version is set at build time with -ldflags
var Version = "dev"

// Flag variables
var (
	force    bool
	menuPath string
)

var rootCmd = &cobra.Command{
	Use:   "startmenu",
	Short: "Terminal start menu, shown once per shell session",
	Long: `startmenu shows a configurable menu when a terminal session begins.
Pick an entry and its command runs in your shell; the menu returns when the
command exits.

The menu appears at most once per session, tracked through the
GHOSTTY_MENU_SHOWN environment variable. Print the hook for your rc file
with 'startmenu init <shell>'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Log to a file when configured; while the menu runs, stderr is
		// part of the screen.
		if cfg.LogFile != "" {
			logFile, err := logging.SetupFileLogger(cfg.LogFile, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return fmt.Errorf("setting up logging: %w", err)
			}
			defer logFile.Close()
		} else {
			logging.SetupLogger(cfg.LogLevel, cfg.LogFormat)
		}

		// Never draw a menu into a pipe or a cron job. The marker stays
		// untouched so an interactive shell can still show the menu later.
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			slog.Debug("stdout is not a terminal, skipping menu", "component", "cmd")
			return nil
		}

		// The shell hook exports the marker before invoking us and passes
		// --force, because it has already done the session check itself.
		// Without the flag, running startmenu by hand respects the marker.
		g := guard.New(guard.OSEnviron{})
		if force {
			// Still set the marker so every command dispatched from the
			// menu inherits the session state.
			if err := g.MarkShown(); err != nil {
				return fmt.Errorf("setting session marker: %w", err)
			}
			return launchMenu(cfg)
		}

		err = g.RunOnce(func() error { return launchMenu(cfg) })
		if errors.Is(err, guard.ErrAlreadyShown) {
			slog.Debug("session marker already set", "component", "cmd", "marker", guard.MarkerName)
			fmt.Println("Start menu already shown in this session (use --force to show it again)")
			return nil
		}
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("startmenu version %s\n", Version)
	},
}

func init() {
	// Define flags on root command
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Show the menu even if it was already shown this session")
	rootCmd.PersistentFlags().StringVar(&menuPath, "menu", "", "Path to the menu file (overrides STARTMENU_MENU)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(menuCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// launchMenu runs the external program named by STARTMENU_PROGRAM if one is
// configured, otherwise the built-in menu UI.
func launchMenu(cfg *config.Config) error {
	if cfg.Program != "" {
		return runProgram(cfg.Program)
	}

	// Load menu, header and theme
	path := resolveMenuPath(cfg)
	slog.Debug("loading menu", "component", "cmd", "path", path)
	mn, err := menu.Load(path)
	if err != nil {
		slog.Error("failed to load menu", "component", "cmd", "path", path, "error", err)
		return fmt.Errorf("loading menu: %w", err)
	}

	dir := menu.Dir(cfg.ConfigDir)
	header := menu.LoadHeader(menu.HeaderPath(dir))

	palette, err := theme.Load(menu.ThemePath(dir))
	if err != nil {
		// A broken theme should not keep the menu from showing.
		slog.Warn("ignoring theme", "component", "cmd", "error", err)
		palette = theme.Default()
	}

	// Start the status bar refresher
	var fetcher status.WeatherFetcher
	if cfg.WeatherEnabled() {
		fetcher = weather.NewClient(cfg.WeatherURL)
	}
	refresher := status.New(sysinfo.NewDefaultProber(), fetcher, cfg.StatusInterval, cfg.WeatherInterval)
	snap := refresher.SnapshotOnce()
	statusCh := refresher.Start()
	defer refresher.Stop()

	// Run the TUI
	model := tui.NewModelWithOptions(*mn, header, palette, resolveShell(cfg), snap, statusCh)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// runProgram hands the terminal to the user's own menu program and passes
// its exit code through.
func runProgram(program string) error {
	slog.Debug("running external menu program", "component", "cmd", "program", program)
	c := exec.Command(program)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("running %s: %w", program, err)
	}
	return nil
}

// resolveShell picks the shell that runs menu entries: explicit setting
// first, then the login shell, then plain sh.
func resolveShell(cfg *config.Config) string {
	if cfg.Shell != "" {
		return cfg.Shell
	}
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "sh"
}

// GetMenuPath returns the --menu flag value.
func GetMenuPath() string {
	return menuPath
}

// IsForce returns the --force flag value.
func IsForce() bool {
	return force
}
