package domain

import "errors"

// ErrNotFound is returned when a mutation references an id that is absent
// from its collection. Callers treat it as a no-op signal, not a failure.
var ErrNotFound = errors.New("record not found")
