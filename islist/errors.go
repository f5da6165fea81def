package islist

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by Insert/Update when a precondition is
// violated: duplicate marker, reversed endpoints, or an endpoint outside
// (minIndex, maxIndex).
var ErrInvalidArgument = errors.New("islist: invalid argument")

// ErrInvariantViolation is returned only by VerifyMarkerInvariant; it
// signals a bug in marker maintenance, not caller misuse.
var ErrInvariantViolation = errors.New("islist: marker invariant violated")

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("islist: %s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func invariantf(format string, args ...any) error {
	return fmt.Errorf("islist: %s: %w", fmt.Sprintf(format, args...), ErrInvariantViolation)
}
