package dispatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/relindex/relindex/internal/logging"
	"github.com/relindex/relindex/internal/relindex"
)

var log = logging.GetLogger("dispatch")

// defaultScannerBufferKB is the maximum input line length accepted
// when no override is configured, matching config.DefaultConfig's
// Engine.ScannerBufferKB.
const defaultScannerBufferKB = 16 * 1024

// Dispatcher reads commands from an input stream, drives an
// *relindex.Engine, and writes report output to a buffered sink. It is
// the command-line surface of the index: everything it knows about the
// textual grammar stays in this package.
type Dispatcher struct {
	engine          *relindex.Engine
	out             *bufio.Writer
	scannerBufferKB int
}

// New returns a Dispatcher over engine, buffering output writes to w,
// with the scanner's maximum line length at its default.
func New(engine *relindex.Engine, w io.Writer) *Dispatcher {
	return &Dispatcher{
		engine:          engine,
		out:             bufio.NewWriter(w),
		scannerBufferKB: defaultScannerBufferKB,
	}
}

// WithScannerBufferKB overrides the scanner's maximum line length, in
// kilobytes (config.Config.Engine.ScannerBufferKB). Values <= 0 are
// ignored, leaving the default in place. Returns d for chaining.
func (d *Dispatcher) WithScannerBufferKB(kb int) *Dispatcher {
	if kb > 0 {
		d.scannerBufferKB = kb
	}
	return d
}

// Run reads r line by line until end, end-of-input, a malformed
// command, or ctx is cancelled, dispatching each recognized command to
// the underlying engine. It returns the number of commands processed
// and flushes all buffered output before returning, including on error.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	maxLine := d.scannerBufferKB * 1024
	initial := 64 * 1024
	if initial > maxLine {
		// bufio.Scanner accepts tokens up to the larger of max and the
		// initial buffer's capacity, so the initial buffer must not
		// exceed the configured maximum.
		initial = maxLine
	}
	scanner.Buffer(make([]byte, initial), maxLine)

	count := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			d.flush()
			return count, ctx.Err()
		default:
		}

		line := scanner.Text()
		tokens := tokenize(line)

		var done bool
		var err error
		if len(tokens) == 0 {
			// A blank line carries no command token at all, which fails
			// every comparison the grammar makes against it; treat it
			// exactly like an unrecognized first token and stop.
			done = true
		} else {
			done, err = d.dispatch(tokens)
		}
		count++
		if err != nil {
			d.flush()
			return count, err
		}
		if done {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		d.flush()
		return count, fmt.Errorf("reading input: %w", err)
	}
	if err := d.flush(); err != nil {
		return count, err
	}
	return count, nil
}

// flush writes buffered output to the underlying sink. A failure here
// is the one genuine I/O failure this package can hit, so it is logged
// and wrapped in ErrWritingReport rather than returned bare.
func (d *Dispatcher) flush() error {
	if err := d.out.Flush(); err != nil {
		log.LogError("flush_report", err)
		return fmt.Errorf("%w: %v", ErrWritingReport, err)
	}
	return nil
}

// dispatch executes a single tokenized command. It reports done=true
// when processing should stop: either an explicit end command or a
// malformed line, which the grammar treats as end-of-input.
func (d *Dispatcher) dispatch(tokens []string) (done bool, err error) {
	cmd := tokens[0]
	args := tokens[1:]

	switch cmd {
	case "addent":
		if len(args) != 1 {
			return true, nil
		}
		log.LogCommand(cmd, "id", args[0])
		d.engine.AddEntity(args[0])
	case "delent":
		if len(args) != 1 {
			return true, nil
		}
		log.LogCommand(cmd, "id", args[0])
		d.engine.RemoveEntity(args[0])
	case "addrel":
		if len(args) != 3 {
			return true, nil
		}
		log.LogCommand(cmd, "from", args[0], "to", args[1], "type", args[2])
		d.engine.AddRelation(args[0], args[1], args[2])
	case "delrel":
		if len(args) != 3 {
			return true, nil
		}
		log.LogCommand(cmd, "from", args[0], "to", args[1], "type", args[2])
		d.engine.RemoveRelation(args[0], args[1], args[2])
	case "report":
		if len(args) != 0 {
			return true, nil
		}
		d.report()
	case "end":
		if len(args) != 0 {
			return true, nil
		}
		return true, nil
	default:
		// Unknown first token: the grammar terminates processing here.
		return true, nil
	}
	return false, nil
}

// report writes the current snapshot of the relation-type table in the
// format described by the external interface: ascending byte order of
// type, leaders in ascending byte order, a trailing space before the
// final newline to match the reference implementation byte-for-byte.
func (d *Dispatcher) report() {
	entries := d.engine.Report()
	if len(entries) == 0 {
		fmt.Fprintln(d.out, "none")
		return
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteByte('"')
		b.WriteString(e.Type)
		b.WriteByte('"')
		for _, leader := range e.Leaders {
			b.WriteString(` "`)
			b.WriteString(leader)
			b.WriteByte('"')
		}
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(e.CurrentMax))
		b.WriteString("; ")
	}
	fmt.Fprintln(d.out, b.String())
}
