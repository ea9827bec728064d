// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/llbbl/startmenu/internal/menu"
)

// Fallback dimensions used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// View implements tea.Model and renders the complete menu screen: the
// header and menu centered in the terminal, the footer and status bar
// pinned to the bottom.
func (m Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	sections := []string{m.renderHeader(width), ""}
	if len(m.popups) > 0 {
		sections = append(sections, centerBlock(m.renderPopup(), width))
	} else {
		sections = append(sections, centerBlock(m.renderMenu(), width))
	}
	body := strings.Join(sections, "\n")

	footer := m.renderFooter(width)

	// Center the body in the space above the footer
	bodyHeight := lipgloss.Height(body)
	footerHeight := lipgloss.Height(footer)
	padTop := (height - footerHeight - bodyHeight) / 2
	if padTop < 0 {
		padTop = 0
	}
	padBottom := height - footerHeight - bodyHeight - padTop
	if padBottom < 0 {
		padBottom = 0
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", padTop))
	b.WriteString(body)
	b.WriteString(strings.Repeat("\n", padBottom+1))
	b.WriteString(footer)
	return b.String()
}

// renderHeader renders the header block with a rule underneath, centered.
func (m Model) renderHeader(width int) string {
	block := strings.Join(m.header, "\n")
	rule := strings.Repeat("─", lipgloss.Width(block))

	header := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Header.Render(block),
		m.styles.HeaderRule.Render(rule),
	)
	return centerBlock(header, width)
}

// renderMenu renders the top-level menu entries.
func (m Model) renderMenu() string {
	return renderEntries(m.menu.Entries, m.cursor, m.styles)
}

// renderEntries renders one menu level with labels in the left column and
// shortcut glyphs in the right one.
func renderEntries(entries []menu.Entry, cursor int, st Styles) string {
	labelWidth, glyphWidth := columnWidths(entries)

	rows := make([]string, 0, len(entries))
	for i, e := range entries {
		if e.Kind() == menu.KindSeparator {
			row := fmt.Sprintf(" %-*s  %*s ", labelWidth, e.Label, glyphWidth, "")
			rows = append(rows, st.Separator.Render(row))
			continue
		}

		label := fmt.Sprintf("%-*s", labelWidth, e.Label)
		glyphs := fmt.Sprintf("%*s", glyphWidth, menu.Iconify(e.Shortcut))

		if i == cursor {
			rows = append(rows, st.SelectedItem.Render(" "+label+"  "+glyphs+" "))
		} else {
			rows = append(rows, " "+st.MenuItem.Render(label)+"  "+st.Shortcut.Render(glyphs)+" ")
		}
	}

	return strings.Join(rows, "\n")
}

// columnWidths returns the label and glyph column widths for a menu level.
func columnWidths(entries []menu.Entry) (labelWidth, glyphWidth int) {
	for _, e := range entries {
		if n := utf8.RuneCountInString(e.Label); n > labelWidth {
			labelWidth = n
		}
		if n := utf8.RuneCountInString(menu.Iconify(e.Shortcut)); n > glyphWidth {
			glyphWidth = n
		}
	}
	return labelWidth, glyphWidth
}

// renderFooter renders the hint line (or the prompt input, or the last
// dispatch error) with the status bar below it.
func (m Model) renderFooter(width int) string {
	var top string
	switch {
	case m.promptActive:
		label := ""
		if m.promptEntry != nil {
			label = m.promptEntry.Prompt
		}
		top = " " + m.styles.PromptLabel.Render(label) + " " + m.promptInput.View()
	case m.execErr != nil:
		top = " " + m.styles.Error.Render(fmt.Sprintf("command failed: %v", m.execErr))
	default:
		top = " " + m.renderHints()
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, m.renderStatusBar(width))
}

// renderHints renders the keybinding hints shown in the footer.
func (m Model) renderHints() string {
	type hint struct {
		key  string
		desc string
	}

	hints := []hint{{"j/k", "move"}, {"enter", "select"}, {"esc", "quit"}}
	if len(m.popups) > 0 {
		hints = []hint{{"j/k", "move"}, {"enter", "select"}, {"esc/q", "close"}}
	}

	var parts []string
	for i, h := range hints {
		key := m.styles.HelpKey.Render(h.key)
		desc := m.styles.HelpDesc.Render(h.desc)
		parts = append(parts, fmt.Sprintf("%s %s", key, desc))
		if i < len(hints)-1 {
			parts = append(parts, m.styles.HelpDesc.Render(" | "))
		}
	}

	return strings.Join(parts, "")
}

// renderStatusBar renders the bottom line: host and OS on the left, weather
// and clock on the right, truncated to fit the terminal.
func (m Model) renderStatusBar(width int) string {
	var left, right string
	if !m.status.IsZero() {
		left = m.status.Left()
		right = m.status.Right()
	}

	avail := width - 2
	if n := avail - utf8.RuneCountInString(right) - 1; utf8.RuneCountInString(left) > n {
		left = truncateString(left, max(n, 0))
	}

	gap := avail - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}

	return m.styles.StatusBar.Render(" " + left + strings.Repeat(" ", gap) + right + " ")
}

// centerBlock pads every line of a block so the block as a whole sits in
// the horizontal middle of the terminal. Lines keep their relative
// alignment, which matters for ASCII art headers.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad < 1 {
		return block
	}
	return lipgloss.NewStyle().MarginLeft(pad).Render(block)
}

// truncateString truncates a string to the specified length, adding "..."
// if truncated.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
