// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/llbbl/startmenu/internal/config"
	"github.com/llbbl/startmenu/internal/menu"
	"github.com/llbbl/startmenu/internal/theme"
)

var (
	forceMenuInit bool
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Menu file management commands",
	Long:  `Commands for managing the startmenu menu, header, and theme files.`,
}

var menuPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print menu file location",
	Long:  `Print the path to the menu file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		fmt.Println(resolveMenuPath(cfg))
		return nil
	},
}

var menuInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default menu file",
	Long: `Write the built-in default menu to the menu file location.
Refuses to overwrite an existing file unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		path := resolveMenuPath(cfg)
		if err := menu.WriteDefault(path, forceMenuInit); err != nil {
			if errors.Is(err, menu.ErrMenuExists) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			return fmt.Errorf("writing default menu: %w", err)
		}

		fmt.Printf("Wrote default menu to %s\n", path)
		return nil
	},
}

var menuCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the menu and theme files",
	Long:  `Load the menu and theme files and report configuration problems.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		path := resolveMenuPath(cfg)
		fmt.Printf("Checking %s\n", path)

		mn, err := menu.Load(path)
		if err != nil {
			return fmt.Errorf("loading menu: %w", err)
		}

		problems := menu.Validate(mn)

		// The theme file is optional, but a present and broken one counts.
		if _, err := theme.Load(menu.ThemePath(menu.Dir(cfg.ConfigDir))); err != nil {
			problems = append(problems, menu.Problem{Path: menu.ThemeFileName, Msg: err.Error()})
		}

		if len(problems) == 0 {
			fmt.Println("No problems found.")
			return nil
		}
		for _, p := range problems {
			fmt.Println(p.String())
		}
		return fmt.Errorf("%d problem(s) in menu configuration", len(problems))
	},
}

var menuEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the menu file in your editor",
	Long: `Open the menu file in $EDITOR (or $VISUAL, falling back to vi).
The default menu is written first if the file does not exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Make sure there is something to edit.
		path := resolveMenuPath(cfg)
		if err := menu.WriteDefault(path, false); err != nil && !errors.Is(err, menu.ErrMenuExists) {
			return fmt.Errorf("writing default menu: %w", err)
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = os.Getenv("VISUAL")
		}
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("running %s: %w", editor, err)
		}
		return nil
	},
}

func init() {
	// Add flags
	menuInitCmd.Flags().BoolVar(&forceMenuInit, "force", false, "Overwrite an existing menu file")

	// Add subcommands to menu command
	menuCmd.AddCommand(menuPathCmd)
	menuCmd.AddCommand(menuInitCmd)
	menuCmd.AddCommand(menuCheckCmd)
	menuCmd.AddCommand(menuEditCmd)
}

// resolveMenuPath picks the menu file: the --menu flag wins, then the
// STARTMENU_MENU variable, then menu.json in the config directory.
func resolveMenuPath(cfg *config.Config) string {
	if menuPath != "" {
		return menuPath
	}
	if cfg.MenuPath != "" {
		return cfg.MenuPath
	}
	return menu.MenuPath(menu.Dir(cfg.ConfigDir))
}
