// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llbbl/startmenu/internal/menu"
)

// openPromptModel returns a model with the prompt open for a brew-search
// style entry.
func openPromptModel(t *testing.T) Model {
	t.Helper()

	entries := []menu.Entry{
		{Label: "Brew search", Cmd: "brew search {}", Prompt: "Search brew for"},
	}
	m := createTestModel(entries)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	require.True(t, m.promptActive, "expected prompt to be open")
	return m
}

// typeString feeds a string into the model one key at a time.
func typeString(m Model, s string) Model {
	for _, r := range s {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
		newModel, _ := m.Update(msg)
		m = newModel.(Model)
	}
	return m
}

func TestEnterOnPromptEntry_OpensPrompt(t *testing.T) {
	m := openPromptModel(t)

	assert.True(t, m.promptInput.Focused())
	require.NotNil(t, m.promptEntry)
	assert.Equal(t, "Brew search", m.promptEntry.Label)
}

func TestPromptSubmit_DispatchesQuotedInput(t *testing.T) {
	m := openPromptModel(t)
	m = typeString(m, "htop")

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, "brew search 'htop'", m.lastCommand)
	assert.False(t, m.promptActive)
}

func TestPromptSubmit_QuotesMetacharacters(t *testing.T) {
	m := openPromptModel(t)
	m = typeString(m, "x'; rm -rf ~")

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, `brew search 'x'\''; rm -rf ~'`, m.lastCommand)
}

func TestPromptEmptySubmit_Cancels(t *testing.T) {
	m := openPromptModel(t)

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	assert.Nil(t, cmd)
	assert.False(t, m.promptActive)
	assert.Empty(t, m.lastCommand)
}

func TestPromptWhitespaceSubmit_Cancels(t *testing.T) {
	m := openPromptModel(t)
	m = typeString(m, "   ")

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	assert.Nil(t, cmd)
	assert.False(t, m.promptActive)
}

func TestPromptEsc_CancelsAndClearsInput(t *testing.T) {
	m := openPromptModel(t)
	m = typeString(m, "abc")

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = newModel.(Model)
	assert.False(t, m.promptActive)
	assert.Nil(t, m.promptEntry)

	// Reopening starts from a blank input
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)
	require.True(t, m.promptActive)
	assert.Empty(t, m.promptInput.Value())
}

func TestPromptKeys_DoNotLeakToMenu(t *testing.T) {
	entries := []menu.Entry{
		{Label: "Brew search", Cmd: "brew search {}", Prompt: "Search brew for"},
		{Label: "Editor", Cmd: "nvim", Shortcut: "Ctrl+E"},
	}
	m := createTestModel(entries)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)
	require.True(t, m.promptActive)

	// j and q edit the input instead of navigating or closing
	m = typeString(m, "jq")

	assert.Equal(t, 0, m.cursor)
	assert.True(t, m.promptActive)
	assert.Equal(t, "jq", m.promptInput.Value())
}

func TestPromptCtrlC_Quits(t *testing.T) {
	m := openPromptModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(cmd))
}
