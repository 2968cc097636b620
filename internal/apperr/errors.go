// Package apperr defines sentinel errors shared between the service layer
// and the command layer.
package apperr

import "errors"

// ErrNotFound signals that an update or resolve targeted a nonexistent id.
// It is recoverable: the command layer reports it without a process error.
var ErrNotFound = errors.New("not found")
