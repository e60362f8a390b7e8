package repository

import "errors"

// Sentinel kinds for report store errors.
var (
	ErrNotFound     = errors.New("report not found")
	ErrEmptyID      = errors.New("empty report id")
	ErrInvalidLimit = errors.New("invalid history limit")
)
