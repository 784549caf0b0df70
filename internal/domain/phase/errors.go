package phase

import "errors"

// Sentinel kinds for phase result parsing.
var (
	ErrResponseParse = errors.New("model response was not valid JSON")
	ErrEmptyResponse = errors.New("model response was empty")
)
