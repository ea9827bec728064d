// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"path/filepath"
	"testing"

	"github.com/llbbl/startmenu/internal/config"
)

func TestGetMenuPath_DefaultEmpty(t *testing.T) {
	// Reset the flag value for testing
	menuPath = ""

	got := GetMenuPath()
	if got != "" {
		t.Errorf("GetMenuPath() = %q, want empty string", got)
	}
}

func TestIsForce_DefaultFalse(t *testing.T) {
	// Reset the flag value for testing
	force = false

	if IsForce() {
		t.Error("IsForce() = true, want false")
	}
}

func TestVersionVariable(t *testing.T) {
	// Version should have a default value
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestResolveShell_ExplicitSettingWins(t *testing.T) {
	t.Setenv("SHELL", "/bin/bash")

	got := resolveShell(&config.Config{Shell: "/usr/bin/fish"})
	if got != "/usr/bin/fish" {
		t.Errorf("resolveShell() = %q, want %q", got, "/usr/bin/fish")
	}
}

func TestResolveShell_LoginShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")

	got := resolveShell(&config.Config{})
	if got != "/bin/zsh" {
		t.Errorf("resolveShell() = %q, want %q", got, "/bin/zsh")
	}
}

func TestResolveShell_FallsBackToSh(t *testing.T) {
	t.Setenv("SHELL", "")

	got := resolveShell(&config.Config{})
	if got != "sh" {
		t.Errorf("resolveShell() = %q, want %q", got, "sh")
	}
}

func TestResolveMenuPath_FlagWins(t *testing.T) {
	// Reset the flag value after testing
	menuPath = "/tmp/flag-menu.json"
	defer func() { menuPath = "" }()

	got := resolveMenuPath(&config.Config{MenuPath: "/tmp/env-menu.json"})
	if got != "/tmp/flag-menu.json" {
		t.Errorf("resolveMenuPath() = %q, want the --menu value", got)
	}
}

func TestResolveMenuPath_ConfigValue(t *testing.T) {
	// Reset the flag value for testing
	menuPath = ""

	got := resolveMenuPath(&config.Config{MenuPath: "/tmp/env-menu.json"})
	if got != "/tmp/env-menu.json" {
		t.Errorf("resolveMenuPath() = %q, want the STARTMENU_MENU value", got)
	}
}

func TestResolveMenuPath_DefaultsToConfigDir(t *testing.T) {
	// Reset the flag value for testing
	menuPath = ""

	dir := t.TempDir()
	got := resolveMenuPath(&config.Config{ConfigDir: dir})
	want := filepath.Join(dir, "menu.json")
	if got != want {
		t.Errorf("resolveMenuPath() = %q, want %q", got, want)
	}
}
