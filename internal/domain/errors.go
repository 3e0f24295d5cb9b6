package domain

import "errors"

var (
	// ErrNotFound is returned when a contributor or Town Hall lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrUnknownRole is returned when a role name is not in the fixed role set.
	ErrUnknownRole = errors.New("unknown role")
	// ErrInvalidDataset is returned when a loaded dataset violates its invariants.
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrEmbedUnavailable is returned when an embed could not be resolved within the retry budget.
	ErrEmbedUnavailable = errors.New("embed unavailable")
)
