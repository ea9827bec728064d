// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llbbl/startmenu/internal/menu"
)

// popup is one open submenu level.
type popup struct {
	title   string
	entries []menu.Entry
	cursor  int
}

// pushPopup opens the entry's items as a new submenu on top of the stack.
func (m *Model) pushPopup(entry menu.Entry) {
	m.popups = append(m.popups, popup{
		title:   entry.Label,
		entries: entry.Items,
		cursor:  firstSelectable(entry.Items),
	})
}

// popPopup closes the innermost submenu.
func (m *Model) popPopup() {
	if len(m.popups) == 0 {
		return
	}
	m.popups = m.popups[:len(m.popups)-1]
}

// renderPopup renders the innermost submenu as a bordered box. The caller
// centers it in the menu area.
func (m Model) renderPopup() string {
	p := m.popups[len(m.popups)-1]

	var lines []string
	lines = append(lines, m.styles.PopupTitle.Render(p.title))
	lines = append(lines, "")

	if len(p.entries) == 0 {
		lines = append(lines, m.styles.HelpDesc.Render("(no entries)"))
	} else {
		lines = append(lines, renderEntries(p.entries, p.cursor, m.styles))
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.HelpDesc.Render("j/k: Navigate  Enter: Select  Esc/q: Close"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.PopupBorder.Render(content)
}
