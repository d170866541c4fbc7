package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrParseFailed is returned when the environment cannot be parsed
	// into the destination struct.
	ErrParseFailed = errors.New("failed to parse environment into config")
)
