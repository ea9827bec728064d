// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package tui provides the Bubble Tea menu screen for startmenu.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llbbl/startmenu/internal/menu"
	"github.com/llbbl/startmenu/internal/status"
	"github.com/llbbl/startmenu/internal/theme"
)

// promptWidth is the width of the one-line prompt input in the footer.
const promptWidth = 40

// Model is the main TUI model for startmenu.
type Model struct {
	// Data
	menu   menu.Menu
	header []string
	shell  string // shell binary used to dispatch command entries

	// UI State
	cursor int
	popups []popup // open submenus, innermost last

	// Prompt
	promptActive bool
	promptInput  textinput.Model
	promptEntry  *menu.Entry // entry awaiting input

	// Status bar
	status   status.Snapshot
	statusCh <-chan status.Snapshot // channel for receiving refresher snapshots

	// Dispatch state
	lastCommand string // most recently dispatched command line
	execErr     error  // exit error of the last dispatched command

	// Dimensions
	width, height int

	// Styles
	styles Styles
}

// statusMsg carries a fresh status bar snapshot from the refresher.
type statusMsg struct {
	snapshot status.Snapshot
}

// execFinishedMsg is sent when a dispatched command exits and the terminal
// has been handed back to the TUI.
type execFinishedMsg struct {
	err error
}

// NewModel creates a new TUI model for the given menu. The cursor starts on
// the first selectable entry, so a menu that opens with a separator still
// highlights a real row.
func NewModel(mn menu.Menu, shell string, statusCh <-chan status.Snapshot) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = promptWidth

	return Model{
		menu:        mn,
		header:      menu.DefaultHeader,
		shell:       shell,
		cursor:      firstSelectable(mn.Entries),
		promptInput: ti,
		statusCh:    statusCh,
		styles:      DefaultStyles(),
	}
}

// NewModelWithHeader creates a new TUI model with a custom header block.
func NewModelWithHeader(mn menu.Menu, header []string, shell string, statusCh <-chan status.Snapshot) Model {
	m := NewModel(mn, shell, statusCh)
	if len(header) > 0 {
		m.header = header
	}
	return m
}

// NewModelWithOptions creates a new TUI model with a theme palette and an
// initial status snapshot, so the status bar is populated before the first
// refresher tick arrives.
func NewModelWithOptions(mn menu.Menu, header []string, palette theme.Palette, shell string, snap status.Snapshot, statusCh <-chan status.Snapshot) Model {
	m := NewModelWithHeader(mn, header, shell, statusCh)
	m.styles = NewStyles(palette)
	m.status = snap
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.statusCh == nil {
		return nil
	}
	return m.listenForStatus()
}

// listenForStatus returns a command that waits for the next snapshot from
// the refresher channel.
func (m Model) listenForStatus() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.statusCh
		if !ok {
			// Channel closed, refresher stopped
			return nil
		}
		return statusMsg{snapshot: snap}
	}
}

// Update implements tea.Model - see update.go for implementation.

// View implements tea.Model - see view.go for implementation.
