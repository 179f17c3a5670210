package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/relindex/relindex/internal/dispatch"
	"github.com/relindex/relindex/internal/logging"
	"github.com/relindex/relindex/internal/relindex"
)

// runCmd is also reachable as the root command's default action, so
// `relindex < commands.txt` and `relindex run < commands.txt` behave
// identically.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process commands from the input stream and print report output",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEngine(cmd)
	},
}

func runEngine(cmd *cobra.Command) error {
	log := logging.GetLogger("relindex")

	cfg, err := loadConfig()
	if err != nil {
		log.LogError("load_config", err)
		return err
	}
	log.LogOperation("config_loaded")

	in, out, closeIn, closeOut, err := openStreams(cmd)
	if err != nil {
		log.LogError("open_streams", err)
		return err
	}
	defer closeIn()
	defer closeOut()
	log.LogOperation("streams_opened")

	runID := uuid.NewString()
	log = log.With("run_id", runID)

	d := dispatch.New(relindex.New(), out).WithScannerBufferKB(cfg.Engine.ScannerBufferKB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	count, err := d.Run(ctx, in)
	log.LogRun(count, float64(time.Since(start).Microseconds())/1000.0, "run_id", runID)
	if err != nil && err != context.Canceled {
		log.LogError("dispatch_run", err)
		return err
	}
	return nil
}

func openStreams(cmd *cobra.Command) (in io.Reader, out io.Writer, closeIn, closeOut func() error, err error) {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	closeIn = func() error { return nil }
	closeOut = func() error { return nil }

	if inputPath == "" {
		in = os.Stdin
	} else {
		f, ferr := os.Open(inputPath)
		if ferr != nil {
			return nil, nil, nil, nil, fmt.Errorf("%w: %v", ErrOpeningInput, ferr)
		}
		in = f
		closeIn = f.Close
	}

	if outputPath == "" {
		out = os.Stdout
	} else {
		f, ferr := os.Create(outputPath)
		if ferr != nil {
			return nil, nil, nil, nil, fmt.Errorf("%w: %v", ErrOpeningOutput, ferr)
		}
		out = f
		closeOut = f.Close
	}

	return in, out, closeIn, closeOut, nil
}
