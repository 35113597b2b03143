package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by every fail-fast validation
// error raised before placement begins (spec: InvalidInput taxonomy).
// Callers can test for it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
