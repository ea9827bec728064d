// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package sysinfo

import (
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout bounds host probes. Probes feed a status bar, so a slow
// command is worth less than a fast blank.
const DefaultTimeout = 2 * time.Second

// CommandExecutor is an interface for running host probe commands.
// This abstraction enables mocking in tests without hitting real external commands.
type CommandExecutor interface {
	Execute(name string, args ...string) ([]byte, error)
}

// RealExecutor implements CommandExecutor using os/exec.
type RealExecutor struct {
	Timeout time.Duration
}

// Execute runs the command and returns its standard output.
// Commands are executed with a timeout to prevent indefinite blocking.
func (r *RealExecutor) Execute(name string, args ...string) ([]byte, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return exec.CommandContext(ctx, name, args...).Output()
}
