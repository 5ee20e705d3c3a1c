// Package repository defines error types that are reused across the
// data access layer.  Handlers only need to recognise one failure mode:
// the store could not answer.  Driver details are wrapped underneath the
// sentinel so they can still be logged, but they never reach clients.
package repository

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable is returned when the store is unreachable, a query
// fails, or a result cannot be scanned.  Handlers should translate this
// into an HTTP 500 response (503 for the health check).
var ErrDataUnavailable = errors.New("data unavailable")

// unavailable wraps err with ErrDataUnavailable and the failing operation.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDataUnavailable, err)
}
