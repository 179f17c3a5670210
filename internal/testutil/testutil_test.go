package testutil

import (
	"bytes"
	"testing"
)

func TestRunCommands(t *testing.T) {
	run := func(in *bytes.Reader, out *bytes.Buffer) error {
		buf := make([]byte, in.Len())
		in.Read(buf)
		out.WriteString("echo:" + string(buf))
		return nil
	}

	got := RunCommands(t, run, "addent \"a\"", "report")
	want := "echo:addent \"a\"\nreport\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
