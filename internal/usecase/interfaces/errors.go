package interfaces

import "errors"

var (
	// ErrConditionFailed is returned when a conditional write loses its
	// guard (item missing, flag already set, counter at its limit,
	// unexpected current state). Use cases translate it into the
	// operation-specific error.
	ErrConditionFailed = errors.New("storage condition failed")

	// ErrStorageUnavailable wraps persistence I/O failures. It is the only
	// error class callers may retry; logical errors never change outcome
	// on retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
