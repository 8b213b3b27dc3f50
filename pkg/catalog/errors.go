package catalog

import "errors"

// ErrNotFound is returned for unknown category or item keys.
var ErrNotFound = errors.New("not found")
