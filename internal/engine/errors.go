package engine

import "errors"

// Errors returned by manager operations.
var (
	// ErrNoBuffers indicates the manager holds no buffers.
	ErrNoBuffers = errors.New("no buffers")

	// ErrIndexOutOfRange indicates a buffer index outside the list.
	ErrIndexOutOfRange = errors.New("buffer index out of range")
)
