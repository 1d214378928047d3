package core

import "errors"

// Failure kinds services report to the transport layer. The HTTP layer
// branches on these with errors.Is and maps them to fixed user-facing
// messages; anything else is surfaced as a generic internal failure.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
)
