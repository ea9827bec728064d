// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package guard decides whether the start menu should launch in the current
// shell session. A session is "new" until the marker variable appears in the
// environment; the shell hook exports it so every later process in the same
// session inherits it, and the binary sets it in its own environment so the
// commands it dispatches inherit it too.
package guard

import (
	"errors"
	"os"
)

// MarkerName is the environment variable that records that the menu has
// already been shown in this session.
const MarkerName = "GHOSTTY_MENU_SHOWN"

// MarkerValue is what the marker is set to. Only presence is checked on
// read; any non-empty value counts as shown.
const MarkerValue = "1"

// ErrAlreadyShown reports that the marker was already present and the
// launch was skipped. Callers treat it as a no-op, not a failure.
var ErrAlreadyShown = errors.New("menu already shown in this session")

// Environ is the slice of environment access the guard needs.
// This abstraction enables testing marker semantics without mutating the
// test process environment.
type Environ interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnviron implements Environ against the real process environment.
type OSEnviron struct{}

// LookupEnv reports the value of key and whether it is present.
func (OSEnviron) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Setenv sets key in the process environment.
func (OSEnviron) Setenv(key, value string) error { return os.Setenv(key, value) }

// Guard checks and sets the session marker.
type Guard struct {
	env Environ
}

// New returns a Guard backed by env. Pass OSEnviron{} for real use.
func New(env Environ) *Guard {
	return &Guard{env: env}
}

// ShouldLaunch reports whether the menu has not yet been shown in this
// session. An empty value is treated the same as unset: the shell hook's
// emptiness test cannot tell the two apart, so neither do we.
func (g *Guard) ShouldLaunch() bool {
	v, ok := g.env.LookupEnv(MarkerName)
	return !ok || v == ""
}

// MarkShown records that the menu has been shown. Idempotent; the marker is
// never cleared again for the life of the session.
func (g *Guard) MarkShown() error {
	return g.env.Setenv(MarkerName, MarkerValue)
}

// RunOnce launches the menu at most once per session. When the marker is
// already present it returns ErrAlreadyShown without invoking launch. Otherwise
// it sets the marker first and then invokes launch, so the marker stays set
// even if the launch fails; a broken menu must not relaunch on every prompt.
func (g *Guard) RunOnce(launch func() error) error {
	if !g.ShouldLaunch() {
		return ErrAlreadyShown
	}
	if err := g.MarkShown(); err != nil {
		return err
	}
	return launch()
}
