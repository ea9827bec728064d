// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llbbl/startmenu/internal/menu"
)

// createTestModel creates a test model with the given entries.
func createTestModel(entries []menu.Entry) Model {
	m := NewModel(menu.Menu{Entries: entries}, "sh", nil)
	m.width = 100
	m.height = 30
	return m
}

// commandEntries returns n plain command entries labeled a, b, c, ...
func commandEntries(n int) []menu.Entry {
	entries := make([]menu.Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = menu.Entry{
			Label: string(rune('a' + i%26)),
			Cmd:   "true",
		}
	}
	return entries
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNavigationDown_WrapsToTop(t *testing.T) {
	m := createTestModel(commandEntries(3))

	if m.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", m.cursor)
	}

	// Navigate down three times: 1, 2, then wrap back to 0
	for i := 0; i < 3; i++ {
		newModel, _ := m.Update(keyRunes('j'))
		m = newModel.(Model)
	}

	if m.cursor != 0 {
		t.Errorf("expected cursor to wrap to 0, got %d", m.cursor)
	}
}

func TestNavigationUp_WrapsToBottom(t *testing.T) {
	m := createTestModel(commandEntries(3))

	newModel, _ := m.Update(keyRunes('k'))
	m = newModel.(Model)

	if m.cursor != 2 {
		t.Errorf("expected cursor to wrap to 2, got %d", m.cursor)
	}
}

func TestNavigation_ArrowKeysMatchVimKeys(t *testing.T) {
	m := createTestModel(commandEntries(3))

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = newModel.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor at 1 after down, got %d", m.cursor)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = newModel.(Model)
	if m.cursor != 0 {
		t.Errorf("expected cursor at 0 after up, got %d", m.cursor)
	}
}

func TestNavigation_SkipsSeparators(t *testing.T) {
	entries := []menu.Entry{
		{Label: "Editor", Cmd: "true"},
		{Label: menu.SeparatorLabel},
		{Label: "Search", Cmd: "true"},
	}
	m := createTestModel(entries)

	// Down from 0 lands on 2, never on the separator at 1
	newModel, _ := m.Update(keyRunes('j'))
	m = newModel.(Model)
	if m.cursor != 2 {
		t.Errorf("expected cursor to skip separator down to 2, got %d", m.cursor)
	}

	newModel, _ = m.Update(keyRunes('k'))
	m = newModel.(Model)
	if m.cursor != 0 {
		t.Errorf("expected cursor to skip separator back to 0, got %d", m.cursor)
	}
}

func TestNavigation_WrapSkipsTrailingSeparator(t *testing.T) {
	entries := []menu.Entry{
		{Label: "Editor", Cmd: "true"},
		{Label: "Search", Cmd: "true"},
		{Label: menu.SeparatorLabel},
	}
	m := createTestModel(entries)
	m.cursor = 1

	// Down from the last selectable wraps past the separator to the top
	newModel, _ := m.Update(keyRunes('j'))
	m = newModel.(Model)
	if m.cursor != 0 {
		t.Errorf("expected cursor to wrap to 0, got %d", m.cursor)
	}
}

func TestCursorStartsOnFirstSelectable(t *testing.T) {
	entries := []menu.Entry{
		{Label: menu.SeparatorLabel},
		{Label: "Editor", Cmd: "true"},
	}
	m := createTestModel(entries)

	if m.cursor != 1 {
		t.Errorf("expected cursor to start at 1, got %d", m.cursor)
	}
}

func TestNavigationWithEmptyMenu(t *testing.T) {
	m := createTestModel(nil)

	// Navigate down should not panic or change anything
	newModel, _ := m.Update(keyRunes('j'))
	m = newModel.(Model)

	if m.cursor != 0 {
		t.Errorf("cursor should stay at 0 with empty menu, got %d", m.cursor)
	}

	// Enter should not panic either
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	if m.cursor != 0 {
		t.Errorf("cursor should stay at 0 after enter on empty menu, got %d", m.cursor)
	}
}

func TestNavigationAllSeparators_StaysPut(t *testing.T) {
	entries := []menu.Entry{
		{Label: menu.SeparatorLabel},
		{Label: menu.SeparatorLabel},
	}
	m := createTestModel(entries)
	start := m.cursor

	newModel, _ := m.Update(keyRunes('j'))
	m = newModel.(Model)

	if m.cursor != start {
		t.Errorf("expected cursor to stay at %d, got %d", start, m.cursor)
	}
}

func TestWindowSize_UpdatesDimensions(t *testing.T) {
	m := createTestModel(commandEntries(2))

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = newModel.(Model)

	if m.width != 120 || m.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.width, m.height)
	}
}
