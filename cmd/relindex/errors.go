package main

import "errors"

var (
	// ErrLoadingConfig indicates the configuration file could not be
	// read or parsed.
	ErrLoadingConfig = errors.New("loading configuration")
	// ErrOpeningInput indicates the --input file could not be opened
	// for reading.
	ErrOpeningInput = errors.New("opening input file")
	// ErrOpeningOutput indicates the --output file could not be
	// created for writing.
	ErrOpeningOutput = errors.New("opening output file")
)
