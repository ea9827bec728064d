// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ctrl+E", "⌃ E"},
		{"Cmd+Shift+P", "⌘ ⇧ P"},
		{"Ctrl+Space", "⌃ ␣"},
		{"Alt+F4", "⌥ F4"},
		{"Opt+X", "⌥ X"},
		{"F5", "F5"},
		{" Ctrl + E ", "⌃ E"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Iconify(tt.in), "iconify %q", tt.in)
	}
}

func TestNormalizeShortcut(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ctrl+E", "ctrl+e"},
		{"ctrl+e", "ctrl+e"},
		{"Ctrl+Space", "ctrl+@"},
		{"Shift+X", "X"},
		{"Space", " "},
		{"Alt+Enter", "alt+enter"},
		{"F5", "f5"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeShortcut(tt.in), "normalize %q", tt.in)
	}
}
