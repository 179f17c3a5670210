package dispatch

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/relindex/relindex/internal/relindex"
	"github.com/relindex/relindex/internal/testutil"
)

func run(t *testing.T, lines ...string) string {
	t.Helper()
	return testutil.RunCommands(t, func(in *bytes.Reader, out *bytes.Buffer) error {
		d := New(relindex.New(), out)
		_, err := d.Run(context.Background(), in)
		return err
	}, lines...)
}

func TestTokenizeStripsQuotesAndSplitsOnWhitespace(t *testing.T) {
	got := tokenize(`addrel "a" "b"   "knows"`)
	want := []string{"addrel", "a", "b", "knows"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeIgnoresUnpairedQuotes(t *testing.T) {
	got := tokenize(`addent "a`)
	want := []string{"addent", "a"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEmptyReportIsNone(t *testing.T) {
	got := run(t, `report`, `end`)
	if got != "none\n" {
		t.Errorf("got %q, want %q", got, "none\n")
	}
}

func TestBasicSingleRelationReport(t *testing.T) {
	got := run(t,
		`addent "a"`,
		`addent "b"`,
		`addrel "a" "b" "friend"`,
		`report`,
		`end`,
	)
	want := "\"friend\" \"b\" 1; \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMultiTypeReportOrderedAndTrailingSpace(t *testing.T) {
	got := run(t,
		`addent "x"`,
		`addent "y"`,
		`addent "z"`,
		`addrel "x" "y" "knows"`,
		`addrel "x" "z" "knows"`,
		`addrel "y" "z" "likes"`,
		`report`,
		`end`,
	)
	want := "\"knows\" \"y\" \"z\" 1; \"likes\" \"z\" 1; \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCascadingDelentAcrossTypes(t *testing.T) {
	got := run(t,
		`addent "x"`,
		`addent "y"`,
		`addent "z"`,
		`addrel "x" "y" "knows"`,
		`addrel "x" "z" "knows"`,
		`addrel "y" "z" "likes"`,
		`delent "x"`,
		`report`,
		`delent "y"`,
		`report`,
		`end`,
	)
	want := "\"likes\" \"z\" 1; \nnone\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEndOfInputWithoutExplicitEndCommand(t *testing.T) {
	var out bytes.Buffer
	d := New(relindex.New(), &out)
	in := strings.NewReader("addent \"a\"\nreport\n")
	count, err := d.Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 commands processed, got %d", count)
	}
	if out.String() != "none\n" {
		t.Errorf("got %q, want %q", out.String(), "none\n")
	}
}

func TestMalformedCommandTerminatesProcessing(t *testing.T) {
	got := run(t,
		`addent "a"`,
		`addrel "a" "b"`, // missing the type argument
		`addent "b"`,     // never reached
		`report`,
	)
	// addrel with two args is malformed and halts processing before the
	// later addent/report lines run, so nothing is ever written.
	if got != "" {
		t.Errorf("expected no output after malformed command, got %q", got)
	}
}

func TestUnknownCommandTerminatesProcessing(t *testing.T) {
	got := run(t,
		`addent "a"`,
		`bogus "a"`,
		`report`,
	)
	if got != "" {
		t.Errorf("expected no output after unknown command, got %q", got)
	}
}

func TestDuplicateAddEntIsSilentNoOp(t *testing.T) {
	got := run(t,
		`addent "a"`,
		`addent "a"`,
		`addent "b"`,
		`addrel "a" "b" "friend"`,
		`report`,
		`end`,
	)
	want := "\"friend\" \"b\" 1; \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRepeatedReportIsDeterministic(t *testing.T) {
	got := run(t,
		`addent "a"`,
		`addent "b"`,
		`addrel "a" "b" "friend"`,
		`report`,
		`report`,
		`end`,
	)
	want := "\"friend\" \"b\" 1; \n\"friend\" \"b\" 1; \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
