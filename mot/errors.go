package mot

import "github.com/pkg/errors"

var (
	// ErrMalformedInput is returned when frame does not follow expected detections encoding.
	// Registry is never mutated for such frame.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvariantViolation reports a corrupted class state. The state is reset when it is detected.
	ErrInvariantViolation = errors.New("internal invariant violation")
)
