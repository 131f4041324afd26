package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrTooLarge is returned when a storage request cannot be sized on
	// this platform.
	ErrTooLarge = errors.New("storage request too large")
)

// SizeError indicates a capacity or length request that cannot be satisfied,
// either because it is negative or because sizing the block would overflow.
//
// errors.Is(err, ErrTooLarge) reports true for any SizeError.
type SizeError struct {
	Requested int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("vec: cannot size storage for %d elements", e.Requested)
}

func (e *SizeError) Unwrap() error { return ErrTooLarge }
