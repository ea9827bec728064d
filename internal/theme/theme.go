// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package theme loads the optional color overrides for the menu UI.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Palette holds the colors the UI draws with. Values are lipgloss color
// strings: "#rrggbb" hex or an ANSI 0-255 code.
type Palette struct {
	Accent string // selection bar, popup border, header
	Text   string // entry labels
	Muted  string // shortcut column, status bar
	Border string // header rule
	Error  string // failed dispatch notice
}

// Default returns the stock palette.
func Default() Palette {
	return Palette{
		Accent: "#7D56F4",
		Text:   "#FFFDF5",
		Muted:  "#626262",
		Border: "#383838",
		Error:  "#FF0000",
	}
}

// fileTheme is the on-disk shape of theme.toml.
type fileTheme struct {
	Accent string `toml:"accent"`
	Text   string `toml:"text"`
	Muted  string `toml:"muted"`
	Border string `toml:"border"`
	Error  string `toml:"error"`
}

// Load reads theme.toml at path and overlays it on the default palette.
// Keys left out keep their defaults; a missing file is the default palette.
func Load(path string) (Palette, error) {
	p := Default()

	var raw fileTheme
	meta, err := toml.DecodeFile(path, &raw)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return Palette{}, fmt.Errorf("failed to load theme: %w", err)
	}

	fields := []struct {
		key   string
		value string
		dst   *string
	}{
		{"accent", raw.Accent, &p.Accent},
		{"text", raw.Text, &p.Text},
		{"muted", raw.Muted, &p.Muted},
		{"border", raw.Border, &p.Border},
		{"error", raw.Error, &p.Error},
	}

	for _, f := range fields {
		if !meta.IsDefined(f.key) {
			continue
		}
		v := strings.TrimSpace(f.value)
		if !validColor(v) {
			return Palette{}, fmt.Errorf("invalid %s color %q: want #rrggbb or an ANSI code 0-255", f.key, f.value)
		}
		*f.dst = v
	}

	return p, nil
}

// validColor accepts "#rrggbb" hex or an ANSI 0-255 code.
func validColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return false
		}
		_, err := strconv.ParseUint(s[1:], 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
