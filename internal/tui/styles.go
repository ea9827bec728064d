// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llbbl/startmenu/internal/theme"
)

// Styles contains all lipgloss style definitions for the TUI.
type Styles struct {
	// Header block
	Header     lipgloss.Style
	HeaderRule lipgloss.Style

	// Menu rows
	MenuItem     lipgloss.Style
	SelectedItem lipgloss.Style
	Separator    lipgloss.Style
	Shortcut     lipgloss.Style

	// Submenu popups
	PopupBorder lipgloss.Style
	PopupTitle  lipgloss.Style

	// Prompt input
	PromptLabel lipgloss.Style

	// Footer
	StatusBar lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style

	// Messages
	Error lipgloss.Style
}

// NewStyles builds the style set from a color palette.
func NewStyles(p theme.Palette) Styles {
	accent := lipgloss.Color(p.Accent)
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	border := lipgloss.Color(p.Border)
	errColor := lipgloss.Color(p.Error)

	return Styles{
		// Header
		Header: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		HeaderRule: lipgloss.NewStyle().
			Foreground(border),

		// Menu rows
		MenuItem: lipgloss.NewStyle().
			Foreground(text),

		SelectedItem: lipgloss.NewStyle().
			Foreground(text).
			Background(accent).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(muted),

		Shortcut: lipgloss.NewStyle().
			Foreground(muted),

		// Popups
		PopupBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		PopupTitle: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		// Prompt
		PromptLabel: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		// Footer
		StatusBar: lipgloss.NewStyle().
			Foreground(muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		// Messages
		Error: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
	}
}

// DefaultStyles creates a new Styles instance with the stock palette.
func DefaultStyles() Styles {
	return NewStyles(theme.Default())
}
