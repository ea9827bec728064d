// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package menu

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config file names inside the startmenu config directory.
const (
	MenuFileName   = "menu.json"
	HeaderFileName = "header.txt"
	ThemeFileName  = "theme.toml"
)

// Dir returns the startmenu config directory. An explicit override wins;
// otherwise it resolves under the XDG config home (~/.config/startmenu on
// most systems).
func Dir(override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(xdg.ConfigHome, "startmenu")
}

// MenuPath returns the menu.json path inside dir.
func MenuPath(dir string) string { return filepath.Join(dir, MenuFileName) }

// HeaderPath returns the header.txt path inside dir.
func HeaderPath(dir string) string { return filepath.Join(dir, HeaderFileName) }

// ThemePath returns the theme.toml path inside dir.
func ThemePath(dir string) string { return filepath.Join(dir, ThemeFileName) }
