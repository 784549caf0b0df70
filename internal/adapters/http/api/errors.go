package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrMissingField = errors.New("missing required field")
	ErrBadRequest   = errors.New("bad request")
)

// NewKind wraps a sentinel kind with the operation that raised it.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind wraps a sentinel kind plus the underlying cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
