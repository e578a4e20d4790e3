package internalerr

import "errors"

// Sentinel errors for the I/O edges. The normalization core itself never
// returns errors; it degrades to empty values instead.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicate        = errors.New("duplicate entry")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrMissingColumn    = errors.New("missing column")
)
