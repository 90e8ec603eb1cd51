// Package errs contains sentinel errors shared by clients, services and
// handlers so failures can be mapped to HTTP status codes and CLI messages.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested user, media or snapshot does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUpstream indicates a remote service answered with an unexpected status
	// or payload.
	ErrUpstream = errors.New("upstream error")

	// ErrInvalidInput indicates a malformed query parameter or flag.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDisabled indicates an optional backend (database, storage) is not
	// configured.
	ErrDisabled = errors.New("disabled")
)
