// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package testutil provides testing utilities and helpers for the startmenu project.
package testutil

import "github.com/llbbl/startmenu/internal/menu"

// EntryOption is a functional option for configuring test menu entries.
type EntryOption func(*menu.Entry)

// NewTestEntry creates an Entry with sensible defaults for testing.
// Use the With* option functions to customize specific fields.
func NewTestEntry(opts ...EntryOption) menu.Entry {
	entry := menu.Entry{
		Label:    "Editor",
		Cmd:      "true",
		Shortcut: "Ctrl+E",
	}

	for _, opt := range opts {
		opt(&entry)
	}

	return entry
}

// WithLabel sets the entry label.
func WithLabel(label string) EntryOption {
	return func(e *menu.Entry) {
		e.Label = label
	}
}

// WithCmd sets the entry command.
func WithCmd(cmd string) EntryOption {
	return func(e *menu.Entry) {
		e.Cmd = cmd
	}
}

// WithShortcut sets the entry shortcut.
func WithShortcut(shortcut string) EntryOption {
	return func(e *menu.Entry) {
		e.Shortcut = shortcut
	}
}

// WithPrompt sets the entry prompt text.
func WithPrompt(prompt string) EntryOption {
	return func(e *menu.Entry) {
		e.Prompt = prompt
	}
}

// WithItems nests submenu entries, clearing the command so the entry reads
// as a plain submenu.
func WithItems(items ...menu.Entry) EntryOption {
	return func(e *menu.Entry) {
		e.Cmd = ""
		e.Shortcut = ""
		e.Items = items
	}
}

// Separator returns a divider entry.
func Separator() menu.Entry {
	return menu.Entry{Label: menu.SeparatorLabel}
}

// NewTestMenu wraps entries in a Menu. With no arguments it returns a small
// three-entry menu that exercises commands, separators, and the shell exit.
func NewTestMenu(entries ...menu.Entry) *menu.Menu {
	if len(entries) == 0 {
		entries = []menu.Entry{
			NewTestEntry(),
			Separator(),
			NewTestEntry(WithLabel("Switch to shell"), WithCmd(menu.CmdShell), WithShortcut("Ctrl+Space")),
		}
	}
	return &menu.Menu{Entries: entries}
}
