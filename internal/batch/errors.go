package batch

import "errors"

// Sentinel errors for batch runs.
var (
	// ErrMissingTranscript indicates the required transcript path was not set.
	ErrMissingTranscript = errors.New("transcript file is required")
	// ErrMissingOutput indicates the json format was requested without an output path.
	ErrMissingOutput = errors.New("output file is required for json format")
	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
)
