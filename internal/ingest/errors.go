package ingest

import "errors"

// Sentinel kinds for input parsing errors.
var (
	ErrMalformedTranscript = errors.New("malformed transcript")
	ErrMalformedSegments   = errors.New("malformed segments")
)
