// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package sysinfo probes the host for the machine identity shown in the
// status bar.
package sysinfo

import (
	"os"
	"runtime"
	"strings"
	"sync"
)

// Prober resolves the hostname and OS version. The OS version is resolved
// once and cached; it does not change under a running session. The hostname
// is re-read on every call since it is cheap and can be renamed.
type Prober struct {
	executor      CommandExecutor
	goos          string
	osReleasePath string

	mu         sync.Mutex
	osVersion  string
	osResolved bool
}

// NewProber creates a Prober with the provided executor.
func NewProber(executor CommandExecutor) *Prober {
	return &Prober{
		executor:      executor,
		goos:          runtime.GOOS,
		osReleasePath: "/etc/os-release",
	}
}

// NewDefaultProber creates a Prober that runs real host commands.
func NewDefaultProber() *Prober {
	return NewProber(&RealExecutor{})
}

// Hostname returns the machine's display name. On macOS the user-facing
// computer name is preferred over the raw node name.
func (p *Prober) Hostname() string {
	if p.goos == "darwin" {
		if out, err := p.executor.Execute("scutil", "--get", "ComputerName"); err == nil {
			if name := strings.TrimSpace(string(out)); name != "" {
				return name
			}
		}
	}

	host, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return host
}

// OSVersion returns a human-readable OS name, like "macOS 15.2" or
// "Ubuntu 24.04 LTS". Falls back to the bare platform name when the probes
// come up empty.
func (p *Prober) OSVersion() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.osResolved {
		p.osVersion = p.resolveOSVersion()
		p.osResolved = true
	}
	return p.osVersion
}

func (p *Prober) resolveOSVersion() string {
	switch p.goos {
	case "darwin":
		if out, err := p.executor.Execute("sw_vers", "-productVersion"); err == nil {
			if v := strings.TrimSpace(string(out)); v != "" {
				return "macOS " + v
			}
		}
		return "macOS"
	case "linux":
		if name := prettyName(p.osReleasePath); name != "" {
			return name
		}
	}
	return p.goos
}

// prettyName extracts PRETTY_NAME from an os-release file.
func prettyName(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	for _, line := range strings.Split(string(data), "\n") {
		if v, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(strings.TrimSpace(v), `"`)
		}
	}
	return ""
}
