package core

import "errors"

// Sentinel errors returned by engine operations. Callers match with
// errors.Is; informational no-op conditions (timer already running, nothing
// to stop) are not errors and are reported through result structs instead.
var (
	// ErrTaskNotFound is returned when a token resolves to no task,
	// neither by id nor by fuzzy name match.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidDate is returned when a display-format date string does
	// not parse as DD/MM/YYYY.
	ErrInvalidDate = errors.New("invalid date")
)
