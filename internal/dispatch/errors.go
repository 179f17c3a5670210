package dispatch

import "errors"

// ErrWritingReport indicates the buffered output sink could not be
// flushed to its underlying writer — a full disk or closed pipe, most
// likely. There is no retry path; the dispatcher surfaces it directly
// to the caller.
var ErrWritingReport = errors.New("writing report output")
