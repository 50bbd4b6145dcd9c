package rangelock

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a requested range exceeds the data
	// or an offset is not below the cycle length.
	ErrOutOfBounds = errors.New("rangelock: out of bounds")

	// ErrConflict is returned when the requested region overlaps a range
	// or repeats an offset that is currently held.
	ErrConflict = errors.New("rangelock: region is locked")

	// ErrPatternMismatch is returned by NewRep when slice and cycle
	// lengths do not evenly tile the data.
	ErrPatternMismatch = errors.New("rangelock: pattern does not tile data")

	// ErrStillInUse is returned by TryUnwrap while guards or other
	// holders of the lock exist.
	ErrStillInUse = errors.New("rangelock: data is still in use")

	// ErrUnwrapped is returned by any operation on a lock whose data has
	// already been handed back by TryUnwrap.
	ErrUnwrapped = errors.New("rangelock: data has been unwrapped")
)

// LockError records a failed acquisition and the region it was made for.
type LockError struct {
	Op     string
	Range  Range // zero for offset acquisitions
	Offset int   // -1 for range acquisitions
	Err    error
}

func (e *LockError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s offset %d: %v", e.Op, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s %v: %v", e.Op, e.Range, e.Err)
}

func (e *LockError) Unwrap() error { return e.Err }

func rangeError(r Range, err error) error {
	return &LockError{Op: "trylock", Range: r, Offset: -1, Err: err}
}

func offsetError(offset int, err error) error {
	return &LockError{Op: "trylock", Offset: offset, Err: err}
}
