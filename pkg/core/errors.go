package core

import "errors"

// Common errors.
var (
	// ErrInvalidArgument is returned before any I/O when a required argument is missing.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrReadOnly        = errors.New("hosts file is in read-only mode")
	ErrNotWatchable    = errors.New("repository does not support watching")
)
