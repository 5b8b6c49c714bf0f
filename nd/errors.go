package nd

import "errors"

// Errors returned by array operations. Wrapped errors carry the detail;
// test with errors.Is.
var (
	// ErrValue reports shape, rank or argument mismatches.
	ErrValue = errors.New("nd: value error")

	// ErrIndex reports a coordinate outside an axis.
	ErrIndex = errors.New("nd: index error")

	// ErrConfig reports an invalid global configuration value.
	ErrConfig = errors.New("nd: config error")

	// ErrNotImplemented reports a shape combination the engine declines to support.
	ErrNotImplemented = errors.New("nd: not implemented")
)
