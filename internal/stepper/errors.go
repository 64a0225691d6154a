package stepper

import (
	"errors"
	"fmt"
)

// ErrInvalidSequence is matched by every InvalidSequenceError.
var ErrInvalidSequence = errors.New("invalid step sequence")

// InvalidSequenceError is returned when a sequence cannot be built. It is the
// only condition in this package that is reported to callers.
type InvalidSequenceError struct {
	// Index is the offending step, or -1 when the sequence itself is at fault.
	Index  int
	Reason string
}

func (e *InvalidSequenceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Index >= 0 {
		return fmt.Sprintf("invalid step sequence: step %d: %s\nHint: every step needs a non-empty label", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid step sequence: %s\nHint: supply at least one step", e.Reason)
}

// Is lets errors.Is match ErrInvalidSequence.
func (e *InvalidSequenceError) Is(target error) bool {
	return target == ErrInvalidSequence
}
