// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llbbl/startmenu/internal/menu"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case statusMsg:
		m.status = msg.snapshot
		if m.statusCh == nil {
			return m, nil
		}
		// Re-arm the listener for the next snapshot
		return m, m.listenForStatus()
	case execFinishedMsg:
		if msg.err != nil {
			m.execErr = msg.err
			slog.Debug("command failed",
				"component", "tui",
				"cmd", m.lastCommand,
				"err", msg.err,
			)
		}
	}
	return m, nil
}

// handleKeyMsg routes key messages to the appropriate handler.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C leaves the menu from anywhere, prompt included
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle prompt input first
	if m.promptActive {
		return m.handlePromptKeys(msg)
	}

	// Handle submenu popup keys
	if len(m.popups) > 0 {
		return m.handlePopupKeys(msg)
	}

	// Handle main menu keys
	return m.handleMainKeys(msg)
}

// handlePopupKeys handles key input while a submenu popup is open.
func (m Model) handlePopupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	top := &m.popups[len(m.popups)-1]

	switch msg.String() {
	case "esc", "q":
		// Close the innermost submenu only
		m.popPopup()
		return m, nil

	case "j", "down":
		top.cursor = nextSelectable(top.entries, top.cursor, 1)
		return m, nil

	case "k", "up":
		top.cursor = nextSelectable(top.entries, top.cursor, -1)
		return m, nil

	case "enter":
		if len(top.entries) == 0 {
			return m, nil
		}
		return m.activate(top.entries[top.cursor])
	}

	// Live shortcuts within the popup's own entries
	if entry, ok := matchShortcut(top.entries, msg.String()); ok {
		return m.activate(entry)
	}

	return m, nil
}

// handleMainKeys handles key input in the top-level menu. Note the
// asymmetry kept from the original curses UI: esc leaves the menu here,
// while q only ever closes popups and is free for entry shortcuts.
func (m Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.cursor = nextSelectable(m.menu.Entries, m.cursor, 1)
		return m, nil

	case "k", "up":
		m.cursor = nextSelectable(m.menu.Entries, m.cursor, -1)
		return m, nil

	case "enter":
		if len(m.menu.Entries) == 0 || m.cursor >= len(m.menu.Entries) {
			return m, nil
		}
		return m.activate(m.menu.Entries[m.cursor])

	case "esc":
		return m, tea.Quit
	}

	// Live shortcuts on the top-level entries
	if entry, ok := matchShortcut(m.menu.Entries, msg.String()); ok {
		return m.activate(entry)
	}

	return m, nil
}

// activate performs the action of a menu entry.
func (m Model) activate(entry menu.Entry) (tea.Model, tea.Cmd) {
	switch entry.Kind() {
	case menu.KindSubmenu:
		m.pushPopup(entry)
		return m, nil

	case menu.KindBack:
		m.popPopup()
		return m, nil

	case menu.KindShell:
		// Hand the terminal back to the shell
		return m, tea.Quit

	case menu.KindPrompt:
		return m, m.openPrompt(entry)

	case menu.KindCommand:
		return m, m.dispatchCommand(entry.Cmd)
	}

	// Separators do nothing
	return m, nil
}

// nextSelectable returns the index of the next selectable entry in the
// given direction, wrapping around the ends and skipping separators. When
// no entry is selectable the current index is returned unchanged.
func nextSelectable(entries []menu.Entry, cur, delta int) int {
	if len(entries) == 0 {
		return 0
	}

	i := cur
	for range entries {
		i = (i + delta + len(entries)) % len(entries)
		if entries[i].Selectable() {
			return i
		}
	}
	return cur
}

// firstSelectable returns the index of the first selectable entry.
func firstSelectable(entries []menu.Entry) int {
	for i, e := range entries {
		if e.Selectable() {
			return i
		}
	}
	return 0
}

// matchShortcut finds the entry whose normalized shortcut matches the key
// string the terminal reported.
func matchShortcut(entries []menu.Entry, key string) (menu.Entry, bool) {
	for _, e := range entries {
		if e.Shortcut == "" || !e.Selectable() {
			continue
		}
		if menu.NormalizeShortcut(e.Shortcut) == key {
			return e, true
		}
	}
	return menu.Entry{}, false
}
