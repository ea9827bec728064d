// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package shell generates the per-shell startup hooks that install the
// session launch gate. The hook lives in the user's rc file and runs on
// every interactive shell start: if the session marker is unset or empty it
// exports the marker and then runs the menu. Exporting before running is
// what makes the gate stick for the whole session, including every process
// the menu itself starts.
package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/llbbl/startmenu/internal/guard"
)

// Supported lists the shells Hook can generate for.
var Supported = []string{"bash", "fish", "zsh"}

// hookTemplates are keyed by shell name. %[1]s is the marker variable,
// %[2]s its value, %[3]s the command to run.
var hookTemplates = map[string]string{
	// bash and zsh share POSIX syntax.
	"bash": `# startmenu shell hook: show the start menu once per session.
if [ -z "${%[1]s-}" ]; then
  export %[1]s=%[2]s
  %[3]s
fi
`,
	"zsh": `# startmenu shell hook: show the start menu once per session.
if [ -z "${%[1]s-}" ]; then
  export %[1]s=%[2]s
  %[3]s
fi
`,
	"fish": `# startmenu shell hook: show the start menu once per session.
if test -z "$%[1]s"
    set -gx %[1]s %[2]s
    %[3]s
end
`,
}

// hookCommand is what the snippet runs. The hook has already checked the
// marker itself, and it exports the marker before invoking, so the binary is
// told to skip its own session check or it would see the marker and decline.
const hookCommand = "startmenu --force"

// Hook returns the startup snippet for the named shell. The snippet sets the
// marker before invoking the menu, never after.
func Hook(shellName string) (string, error) {
	tmpl, ok := hookTemplates[shellName]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q: must be one of %s", shellName, strings.Join(Supported, ", "))
	}
	return fmt.Sprintf(tmpl, guard.MarkerName, guard.MarkerValue, hookCommand), nil
}

// Names returns the supported shell names, sorted, for help text and
// completion.
func Names() []string {
	names := make([]string, len(Supported))
	copy(names, Supported)
	sort.Strings(names)
	return names
}
