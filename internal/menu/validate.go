// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package menu

import (
	"fmt"
	"strings"
)

// Problem describes one issue found in a menu definition.
type Problem struct {
	Path string // breadcrumb to the offending entry, "" for the top level
	Msg  string
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Msg
	}
	return fmt.Sprintf("%s: %s", p.Path, p.Msg)
}

// Validate checks a menu definition for mistakes the UI cannot work around:
// unlabeled entries, shortcut collisions within a level, prompt entries with
// nowhere to put the input, popup entries with nothing to open, and levels
// with nothing selectable.
func Validate(m *Menu) []Problem {
	return validateLevel(m.Entries, "")
}

func validateLevel(entries []Entry, crumb string) []Problem {
	var problems []Problem

	add := func(path, msg string) {
		problems = append(problems, Problem{Path: path, Msg: msg})
	}

	shortcuts := make(map[string]string) // normalized shortcut -> first label
	selectable := 0

	for _, e := range entries {
		path := e.Label
		if crumb != "" {
			path = crumb + " > " + e.Label
		}

		if e.Selectable() {
			selectable++
		}

		if e.Label == "" && e.Kind() != KindSeparator {
			add(crumb, "entry has no label")
		}

		if s := NormalizeShortcut(e.Shortcut); s != "" {
			if first, dup := shortcuts[s]; dup {
				add(path, fmt.Sprintf("shortcut %q already used by %q", e.Shortcut, first))
			} else {
				shortcuts[s] = e.Label
			}
		}

		if e.Prompt != "" && !strings.Contains(e.Cmd, "{}") {
			add(path, "prompt entry needs a {} placeholder in cmd")
		}

		if e.Cmd == CmdPopup && len(e.Items) == 0 {
			add(path, "popup entry has no items")
		}

		if len(e.Items) > 0 {
			problems = append(problems, validateLevel(e.Items, path)...)
		}
	}

	if selectable == 0 {
		add(crumb, "no selectable entries")
	}

	return problems
}
