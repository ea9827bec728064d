// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package menu loads and validates the user's menu definition.
package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Special command words. Anything else in an entry's cmd field is a shell
// command line.
const (
	// CmdShell leaves the menu and returns control to the shell.
	CmdShell = "shell"
	// CmdPopup opens the entry's nested items as a submenu. Entries with
	// items open a submenu whether or not cmd spells it out.
	CmdPopup = "popup"
	// CmdBack closes the current submenu.
	CmdBack = "back"
)

// SeparatorLabel marks an entry as a visual divider.
const SeparatorLabel = "---"

// ErrEmptyMenu reports a menu file whose menu list is present but empty.
var ErrEmptyMenu = errors.New("menu contains no entries")

// ErrMenuExists reports that WriteDefault would overwrite an existing file.
var ErrMenuExists = errors.New("menu file already exists")

// Entry is a single menu row. Cmd holds a shell command line or one of the
// special words above. Prompt, when set, asks the user for one line of input
// and substitutes it for {} in Cmd, shell-quoted. Items nests a submenu.
type Entry struct {
	Label    string  `json:"label"`
	Cmd      string  `json:"cmd,omitempty"`
	Shortcut string  `json:"shortcut,omitempty"`
	Prompt   string  `json:"prompt,omitempty"`
	Items    []Entry `json:"items,omitempty"`
}

// Kind classifies what activating an entry does.
type Kind int

const (
	KindCommand Kind = iota
	KindSeparator
	KindSubmenu
	KindShell
	KindBack
	KindPrompt
)

// Kind reports how the entry behaves when activated.
func (e Entry) Kind() Kind {
	switch {
	case e.Label == SeparatorLabel,
		e.Cmd == "" && e.Prompt == "" && len(e.Items) == 0:
		return KindSeparator
	case len(e.Items) > 0, e.Cmd == CmdPopup:
		return KindSubmenu
	case e.Cmd == CmdShell:
		return KindShell
	case e.Cmd == CmdBack:
		return KindBack
	case e.Prompt != "":
		return KindPrompt
	default:
		return KindCommand
	}
}

// Selectable reports whether the cursor may rest on the entry.
func (e Entry) Selectable() bool {
	return e.Kind() != KindSeparator
}

// CommandLine returns the shell command to dispatch for the entry. For
// prompt entries, input replaces every {} in cmd, single-quoted so shell
// metacharacters in the input stay inert.
func (e Entry) CommandLine(input string) string {
	if e.Prompt == "" {
		return e.Cmd
	}
	return strings.ReplaceAll(e.Cmd, "{}", ShellQuote(input))
}

// ShellQuote wraps s in single quotes, escaping embedded single quotes, so
// the result is a single shell word.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Menu is the parsed menu definition.
type Menu struct {
	Entries []Entry
}

// menuDoc is the on-disk shape: {"menu": [...]}.
type menuDoc struct {
	Menu []Entry `json:"menu"`
}

// Default returns the built-in menu written on first run. The Extras
// submenu carries the stock tools plus a nested Homebrew submenu with two
// prompt entries.
func Default() *Menu {
	return &Menu{Entries: []Entry{
		{Label: "Editor", Cmd: "bash -lc 'nvim'", Shortcut: "Ctrl+E"},
		{Label: "Extras", Cmd: CmdPopup, Shortcut: "Ctrl+X", Items: []Entry{
			{Label: "System info (macchina)", Cmd: `bash -lc 'macchina || uname -a; read -p "Enter"'`},
			{Label: "Finder -> yazi", Cmd: `bash -lc 'yazi || echo "yazi not found"; read -p "Enter"'`},
			{Label: "Brew …", Cmd: CmdPopup, Items: []Entry{
				{Label: "Brew update", Cmd: `bash -lc 'brew update; read -p "Enter"'`},
				{Label: "Brew upgrade", Cmd: `bash -lc 'brew upgrade; read -p "Enter"'`},
				{Label: "Brew list installed", Cmd: `bash -lc 'brew list; read -p "Enter"'`},
				{Label: "Brew search (type name)", Cmd: `bash -lc 'brew search {}; read -p "Enter"'`, Prompt: "Search brew for"},
				{Label: "Brew info (type name)", Cmd: `bash -lc 'brew info {}; read -p "Enter"'`, Prompt: "Brew info for"},
				{Label: "Back", Cmd: CmdBack},
			}},
			{Label: SeparatorLabel},
			{Label: "Matrix", Cmd: `bash -lc 'echo Custom A; read -p "Enter"'`},
			{Label: "Spotify", Cmd: `bash -lc 'echo Custom B; read -p "Enter"'`},
			{Label: "Back", Cmd: CmdBack},
		}},
		{Label: "Search", Cmd: `bash -lc 'fzf; read -p "Enter"'`, Shortcut: "Ctrl+S"},
		{Label: "Switch to shell", Cmd: CmdShell, Shortcut: "Ctrl+Space"},
	}}
}

// Load reads the menu file at path. A missing file is not an error: the
// default menu is written there and returned, so the first run works out of
// the box. A file without a "menu" key falls back to the default entries; a
// present but empty list is an error.
func Load(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if werr := WriteDefault(path, false); werr != nil {
			return nil, werr
		}
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var doc menuDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if doc.Menu == nil {
		return Default(), nil
	}
	if len(doc.Menu) == 0 {
		return nil, ErrEmptyMenu
	}
	return &Menu{Entries: doc.Menu}, nil
}

// WriteDefault writes the default menu to path, creating parent directories.
// Refuses to overwrite unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return ErrMenuExists
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(menuDoc{Menu: Default().Entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write menu file: %w", err)
	}
	return nil
}

// DefaultHeader is shown when no header file exists.
var DefaultHeader = []string{"WELCOME"}

// LoadHeader reads the header block, one display line per file line. A
// missing file yields DefaultHeader.
func LoadHeader(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultHeader
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	// A trailing newline is file hygiene, not a blank display line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return DefaultHeader
	}
	return lines
}
