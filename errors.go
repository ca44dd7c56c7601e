package inflowave

import "errors"

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no .inflowave.yaml is found.
	ErrConfigNotFound = errors.New("inflowave: no .inflowave.yaml found")

	// ErrNoQueryFiles is returned when a workspace scan finds no query files.
	ErrNoQueryFiles = errors.New("inflowave: no query files found")
)
