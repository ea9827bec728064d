// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package menu

import "strings"

// iconMap renders modifier names as keyboard glyphs in the shortcut column.
var iconMap = map[string]string{
	"Ctrl":  "⌃",
	"Cmd":   "⌘",
	"Alt":   "⌥",
	"Opt":   "⌥",
	"Shift": "⇧",
	"Space": "␣",
}

// Iconify renders a shortcut like "Ctrl+E" as "⌃ E" for display.
func Iconify(shortcut string) string {
	if shortcut == "" {
		return ""
	}
	parts := strings.Split(shortcut, "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if glyph, ok := iconMap[p]; ok {
			p = glyph
		}
		parts[i] = p
	}
	return strings.Join(parts, " ")
}

// NormalizeShortcut converts a config shortcut into the key string the
// terminal reports, so live key matching is a plain string compare.
// "Ctrl+E" becomes "ctrl+e"; ctrl+space arrives as the NUL control chord
// "ctrl+@"; a shifted letter arrives as its uppercase rune.
func NormalizeShortcut(shortcut string) string {
	if shortcut == "" {
		return ""
	}

	parts := strings.Split(shortcut, "+")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}

	if len(parts) == 2 && parts[0] == "ctrl" && parts[1] == "space" {
		return "ctrl+@"
	}
	if len(parts) == 2 && parts[0] == "shift" && len(parts[1]) == 1 {
		return strings.ToUpper(parts[1])
	}
	if len(parts) == 1 && parts[0] == "space" {
		return " "
	}
	return strings.Join(parts, "+")
}
