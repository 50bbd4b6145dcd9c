package rangelock

import (
	"fmt"
	"math"
	"math/bits"
)

// RepRangeLock is an interleaved range lock for a slice.
//
// The data is viewed as NumCycles repetitions of a cycle made of CycleLen
// slices, each SliceLen elements long. Locking an offset grants the slice
// at that offset in every cycle:
//
//	data := []int{1, 2,  3, 4,   5,  6,   // <- cycle 0
//	              7, 8,  9, 10,  11, 12}  // <- cycle 1
//	//            ^--^   ^---^   ^----^
//	//        offset-0  offset-1  offset-2
//
//	lock, _ := rangelock.NewRep(data, 2, 3)
//	g, _ := lock.TryLock(1)
//	g.At(0, 0) // 3
//	g.At(1, 1) // 10
//	g.Unlock()
//
// Distinct offsets never conflict, so TryLock is O(1). Offsets are not
// bound to a goroutine.
type RepRangeLock[T any] struct {
	_          noCopy
	sliceLen   int
	cycleLen   int
	cycleElems int
	numCycles  int
	offsets    offsetRegistry
	refs       holders
	data       []T
}

// NewRep wraps data for interleaved locking.
//
// sliceLen and cycleLen must be positive and sliceLen*cycleLen must
// divide len(data); otherwise the returned error wraps
// ErrPatternMismatch.
func NewRep[T any](data []T, sliceLen, cycleLen int) (*RepRangeLock[T], error) {
	if sliceLen <= 0 {
		return nil, fmt.Errorf("%w: slice length %d is not positive",
			ErrPatternMismatch, sliceLen)
	}
	if cycleLen <= 0 {
		return nil, fmt.Errorf("%w: cycle length %d is not positive",
			ErrPatternMismatch, cycleLen)
	}
	hi, lo := bits.Mul(uint(sliceLen), uint(cycleLen))
	if hi != 0 || lo > math.MaxInt {
		return nil, fmt.Errorf("%w: %d*%d overflows",
			ErrPatternMismatch, sliceLen, cycleLen)
	}
	cycleElems := int(lo)
	if len(data)%cycleElems != 0 {
		return nil, fmt.Errorf("%w: %d elements are not a multiple of %d*%d",
			ErrPatternMismatch, len(data), sliceLen, cycleLen)
	}

	l := &RepRangeLock[T]{
		sliceLen:   sliceLen,
		cycleLen:   cycleLen,
		cycleElems: cycleElems,
		numCycles:  len(data) / cycleElems,
		data:       data,
	}
	l.offsets.init(cycleLen)
	l.refs.init()
	return l, nil
}

// Len returns the number of elements in the wrapped data.
func (l *RepRangeLock[T]) Len() int {
	return len(l.data)
}

// SliceLen returns the number of elements per slice.
func (l *RepRangeLock[T]) SliceLen() int {
	return l.sliceLen
}

// CycleLen returns the number of offsets per cycle.
func (l *RepRangeLock[T]) CycleLen() int {
	return l.cycleLen
}

// NumCycles returns how often the cycle repeats over the data.
func (l *RepRangeLock[T]) NumCycles() int {
	return l.numCycles
}

// TryLock tries to lock the slices at offset in every cycle.
//
// It fails with ErrOutOfBounds unless 0 <= offset < CycleLen(), and with
// ErrConflict if offset is already held. The returned errors are
// *LockError.
func (l *RepRangeLock[T]) TryLock(offset int) (*RepRangeGuard[T], error) {
	if offset < 0 || offset >= l.cycleLen {
		return nil, offsetError(offset, ErrOutOfBounds)
	}
	if err := l.offsets.tryHold(offset); err != nil {
		return nil, offsetError(offset, err)
	}
	return &RepRangeGuard[T]{
		lock:       l,
		offset:     offset,
		base:       offset * l.sliceLen,
		sliceLen:   l.sliceLen,
		cycleElems: l.cycleElems,
		numCycles:  l.numCycles,
		data:       l.data,
	}, nil
}

// IsLocked reports whether offset is currently held.
func (l *RepRangeLock[T]) IsLocked(offset int) bool {
	if offset < 0 || offset >= l.cycleLen {
		return false
	}
	return l.offsets.held(offset)
}

// Share registers another holder of l and returns l.
// Every Share must be paired with a Release.
func (l *RepRangeLock[T]) Share() *RepRangeLock[T] {
	l.refs.share()
	return l
}

// Release drops a holder registered by Share.
func (l *RepRangeLock[T]) Release() {
	l.refs.release()
}

// TryUnwrap hands the data back to the caller.
//
// It succeeds only when the caller is the last holder and no offset is
// held; otherwise it returns ErrStillInUse and changes nothing. After a
// successful call every further TryLock or TryUnwrap fails with
// ErrUnwrapped.
func (l *RepRangeLock[T]) TryUnwrap() ([]T, error) {
	if err := l.offsets.close(l.refs.unique); err != nil {
		return nil, err
	}
	return l.data, nil
}

// RepRangeGuard grants exclusive access to the slices of one offset.
//
// Elements are addressed by cycle and index within the slice. Cycles
// outside [0, Cycles()) and indices outside [0, SliceLen()) panic.
type RepRangeGuard[T any] struct {
	_          noCopy
	lock       *RepRangeLock[T]
	offset     int
	base       int
	sliceLen   int
	cycleElems int
	numCycles  int
	data       []T
}

// Offset returns the locked offset.
func (g *RepRangeGuard[T]) Offset() int {
	return g.offset
}

// Cycles returns the number of slices the guard covers.
func (g *RepRangeGuard[T]) Cycles() int {
	return g.numCycles
}

// SliceLen returns the number of elements per slice.
func (g *RepRangeGuard[T]) SliceLen() int {
	return g.sliceLen
}

// Cycle returns the locked slice of cycle c, capacity-clipped to its
// length. It must not be used after Unlock.
func (g *RepRangeGuard[T]) Cycle(c int) []T {
	if uint(c) >= uint(g.numCycles) {
		panic(fmt.Sprintf("rangelock: cycle index %d out of range [0:%d]", c, g.numCycles))
	}
	begin := c*g.cycleElems + g.base
	end := begin + g.sliceLen
	return g.data[begin:end:end]
}

// At returns element i of the slice in cycle c.
func (g *RepRangeGuard[T]) At(c, i int) T {
	return g.Cycle(c)[i]
}

// Set stores v at element i of the slice in cycle c.
func (g *RepRangeGuard[T]) Set(c, i int, v T) {
	g.Cycle(c)[i] = v
}

// Ptr returns a pointer to element i of the slice in cycle c.
func (g *RepRangeGuard[T]) Ptr(c, i int) *T {
	return &g.Cycle(c)[i]
}

// Unlock releases the offset. Calling it twice panics.
func (g *RepRangeGuard[T]) Unlock() {
	l := g.lock
	if l == nil {
		panic("rangelock: unlock of released guard")
	}
	g.lock, g.data, g.numCycles = nil, nil, 0
	l.offsets.release(g.offset)
}
