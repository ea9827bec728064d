// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llbbl/startmenu/internal/menu"
)

// openPrompt swaps the footer for a one-line input bound to the entry.
func (m *Model) openPrompt(entry menu.Entry) tea.Cmd {
	m.promptActive = true
	m.promptEntry = &entry
	m.promptInput.Reset()
	return m.promptInput.Focus()
}

// closePrompt leaves prompt mode without dispatching anything.
func (m *Model) closePrompt() {
	m.promptActive = false
	m.promptEntry = nil
	m.promptInput.Blur()
	m.promptInput.Reset()
}

// handlePromptKeys handles key input while the prompt is open. Enter with
// an empty input cancels, matching how the original menu treated a blank
// answer. Everything else is delegated to the text input.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		input := strings.TrimSpace(m.promptInput.Value())
		entry := m.promptEntry
		m.closePrompt()
		if entry == nil || input == "" {
			return m, nil
		}
		return m, m.dispatchCommand(entry.CommandLine(input))
	}

	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}
