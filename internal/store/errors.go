package store

import "errors"

// ErrNotFound reports that no record matched the requested id.
var ErrNotFound = errors.New("not found")
