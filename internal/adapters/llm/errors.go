package llm

import "errors"

// Sentinel kinds for gateway errors.
var (
	ErrModelCall  = errors.New("model call failed")
	ErrNoContent  = errors.New("model returned no text content")
	ErrMissingKey = errors.New("missing API key")
)
