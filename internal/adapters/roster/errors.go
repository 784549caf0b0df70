package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrFetch     = errors.New("roster fetch failed")
	ErrBadStatus = errors.New("roster feed returned non-OK status")
	ErrEmptyURL  = errors.New("roster feed URL must not be empty")
)
