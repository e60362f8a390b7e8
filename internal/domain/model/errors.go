package model

import "errors"

// Sentinel kinds for transcript decoding errors.
var (
	ErrMissingField = errors.New("missing required word field")
)
