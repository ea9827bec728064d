// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package testutil

import (
	"fmt"
	"strings"
	"sync"
)

// mockResponse is a canned probe result.
type mockResponse struct {
	output []byte
	err    error
}

// MockExecutor implements sysinfo.CommandExecutor with canned responses
// keyed by the full command line. Commands without a registered response
// fail loudly, so tests notice probes they did not expect. All calls are
// recorded for verification.
type MockExecutor struct {
	mu        sync.Mutex
	responses map[string]mockResponse
	calls     [][]string
}

// NewMockExecutor creates a MockExecutor with no registered responses.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		responses: make(map[string]mockResponse),
	}
}

// AddResponse registers the result Execute returns for a command line.
func (m *MockExecutor) AddResponse(name string, args []string, output []byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[commandKey(name, args)] = mockResponse{output: output, err: err}
}

// Execute records the call and returns the canned response registered for it.
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Record the call: first element is the command name, rest are args
	m.calls = append(m.calls, append([]string{name}, args...))

	if resp, ok := m.responses[commandKey(name, args)]; ok {
		return resp.output, resp.err
	}
	return nil, fmt.Errorf("unexpected command: %s", commandKey(name, args))
}

// Reset clears all recorded calls, keeping the registered responses.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// CallCount returns the number of Execute calls made.
func (m *MockExecutor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// GetCall returns the call at the given index, or nil if out of range.
func (m *MockExecutor) GetCall(index int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.calls) {
		return nil
	}
	return m.calls[index]
}

func commandKey(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
