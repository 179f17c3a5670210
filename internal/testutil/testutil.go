// Package testutil provides testing utilities and helpers for relindex.
package testutil

import (
	"bytes"
	"strings"
	"testing"
)

// RunCommands feeds a newline-joined command script through run and returns
// whatever run writes to its output buffer. run is typically
// dispatch.Dispatcher.Run bound to a *relindex.Engine; kept as a function
// parameter here so this package never needs to import relindex/dispatch
// and risk a cycle.
func RunCommands(t *testing.T, run func(in *bytes.Reader, out *bytes.Buffer) error, lines ...string) string {
	t.Helper()

	in := bytes.NewReader([]byte(strings.Join(lines, "\n") + "\n"))
	var out bytes.Buffer

	if err := run(in, &out); err != nil {
		t.Fatalf("command script failed: %v", err)
	}

	return out.String()
}
