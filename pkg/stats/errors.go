package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned (wrapped) whenever an input violates a
// precondition. Use errors.Is to detect it.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// inOpenUnit reports whether v lies strictly between 0 and 1.
func inOpenUnit(v float64) bool {
	return isFinite(v) && v > 0 && v < 1
}
