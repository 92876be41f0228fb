package stego

import (
	"errors"
	"fmt"
)

var (
	// ErrHeaderMismatch means the marker bytes did not decode: either the
	// password is wrong or the file carries no hidden message.
	ErrHeaderMismatch = errors.New("no hidden message found: wrong password or nothing embedded")

	// ErrCorrupted means the decoded length points past the end of the
	// sample buffer.
	ErrCorrupted = errors.New("embedded message length out of range, file may be corrupted")

	// ErrNotFound is returned by ClearMessage when there is no valid
	// header to clear. It unwraps to ErrHeaderMismatch.
	ErrNotFound = fmt.Errorf("nothing to clear: %w", ErrHeaderMismatch)
)

// CapacityError reports a payload that cannot fit in the available samples
// at the configured LSB depth.
type CapacityError struct {
	RequiredSamples  int
	AvailableSamples int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message does not fit: need %d carrier samples, have %d", e.RequiredSamples, e.AvailableSamples)
}
