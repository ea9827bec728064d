// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llbbl/startmenu/internal/shell"
)

var initCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Print the shell startup hook",
	Long: `Print the snippet that shows the start menu once per interactive
session. Put it in your shell's rc file:

  bash:  echo 'eval "$(startmenu init bash)"' >> ~/.bashrc
  zsh:   echo 'eval "$(startmenu init zsh)"' >> ~/.zshrc
  fish:  echo 'startmenu init fish | source' >> ~/.config/fish/config.fish

Supported shells: ` + strings.Join(shell.Names(), ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hook, err := shell.Hook(args[0])
		if err != nil {
			return err
		}
		fmt.Print(hook)
		return nil
	},
}
