// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"log/slog"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
)

// shellCommand builds the process for a dispatched entry. An empty shell
// falls back to sh so dispatch still works outside a login environment.
func shellCommand(shell, command string) *exec.Cmd {
	if shell == "" {
		shell = "sh"
	}
	return exec.Command(shell, "-c", command)
}

// dispatchCommand suspends the TUI, runs the command line through the
// user's shell with the terminal attached, and resumes drawing when it
// exits. A non-zero exit comes back as an execFinishedMsg and is shown in
// the footer; it never terminates the menu.
func (m *Model) dispatchCommand(command string) tea.Cmd {
	m.execErr = nil
	m.lastCommand = command

	slog.Debug("dispatching command",
		"component", "tui",
		"shell", m.shell,
		"cmd", command,
	)

	return tea.ExecProcess(shellCommand(m.shell, command), func(err error) tea.Msg {
		return execFinishedMsg{err: err}
	})
}
