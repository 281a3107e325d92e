package repositories

import "errors"

// ErrNotFound is returned when a requested record does not exist (or is
// soft-deleted). Services translate it into their own domain errors.
var ErrNotFound = errors.New("record not found")
