package rangelock

// RangeLock lets goroutines lock arbitrary, non-overlapping index ranges
// of one slice and mutate them in parallel without copying.
//
// Features:
//   - Non-blocking: TryLock returns a guard or an error at once.
//   - No element-level locking: disjoint guards never touch the same index.
//   - Shared ownership: Share/Release track holders so TryUnwrap can tell
//     when the data may be handed back.
//
// Usage:
//
//	lock := rangelock.New([]int{10, 11, 12, 13})
//
//	g, err := lock.TryLock(0, 2)
//	if err != nil {
//		return err // ErrConflict: retry or back off
//	}
//	g.Set(0, 100)
//	g.Unlock()
//
//	data, err := lock.TryUnwrap()
//
// Acquisition cost is linear in the number of held ranges.
type RangeLock[T any] struct {
	_    noCopy
	reg  rangeRegistry
	refs holders
	data []T
}

// New wraps data. The caller gives up direct access to data until it is
// returned by TryUnwrap.
func New[T any](data []T) *RangeLock[T] {
	l := &RangeLock[T]{data: data}
	l.refs.init()
	return l
}

// Len returns the number of elements in the wrapped data.
func (l *RangeLock[T]) Len() int {
	return len(l.data)
}

// TryLock tries to lock the elements [start, end).
//
// It fails with ErrOutOfBounds if the range is malformed or exceeds the
// data, with ErrConflict if it overlaps a held range. Failures leave the
// lock unchanged. The returned errors are *LockError.
func (l *RangeLock[T]) TryLock(start, end int) (*RangeGuard[T], error) {
	return l.TryLockRange(Range{Start: start, End: end})
}

// TryLockRange is TryLock for a Range value.
func (l *RangeLock[T]) TryLockRange(r Range) (*RangeGuard[T], error) {
	if !r.within(len(l.data)) {
		return nil, rangeError(r, ErrOutOfBounds)
	}
	ticket, err := l.reg.tryInsert(r)
	if err != nil {
		return nil, rangeError(r, err)
	}
	return &RangeGuard[T]{
		lock:   l,
		ticket: ticket,
		r:      r,
		data:   l.data[r.Start:r.End:r.End],
	}, nil
}

// Locked returns the currently held ranges ordered by start.
func (l *RangeLock[T]) Locked() []Range {
	return l.reg.snapshot()
}

// Share registers another holder of l and returns l.
// Every Share must be paired with a Release.
func (l *RangeLock[T]) Share() *RangeLock[T] {
	l.refs.share()
	return l
}

// Release drops a holder registered by Share.
func (l *RangeLock[T]) Release() {
	l.refs.release()
}

// TryUnwrap hands the data back to the caller.
//
// It succeeds only when the caller is the last holder and no guard is
// alive; otherwise it returns ErrStillInUse and changes nothing. After a
// successful call every further TryLock or TryUnwrap fails with
// ErrUnwrapped.
func (l *RangeLock[T]) TryUnwrap() ([]T, error) {
	if err := l.reg.close(l.refs.unique); err != nil {
		return nil, err
	}
	return l.data, nil
}

// RangeGuard grants exclusive access to one locked range.
//
// Index i of the guard is element Range().Start+i of the data. Indices
// outside [0, Len()) panic. A guard must be unlocked exactly once,
// usually with defer; it may be handed to another goroutine but not
// shared.
type RangeGuard[T any] struct {
	_      noCopy
	lock   *RangeLock[T]
	ticket uint64
	r      Range
	data   []T
}

// Range returns the locked range in data coordinates.
func (g *RangeGuard[T]) Range() Range {
	return g.r
}

// Len returns the number of locked elements.
func (g *RangeGuard[T]) Len() int {
	return len(g.data)
}

// At returns element i of the locked range.
func (g *RangeGuard[T]) At(i int) T {
	return g.data[i]
}

// Set stores v at element i of the locked range.
func (g *RangeGuard[T]) Set(i int, v T) {
	g.data[i] = v
}

// Ptr returns a pointer to element i of the locked range.
// The pointer must not be used after Unlock.
func (g *RangeGuard[T]) Ptr(i int) *T {
	return &g.data[i]
}

// Slice returns the locked elements. Its capacity ends at the range end
// so append cannot spill into a neighbour. It must not be used after
// Unlock.
func (g *RangeGuard[T]) Slice() []T {
	return g.data
}

// Unlock releases the range. Calling it twice panics.
func (g *RangeGuard[T]) Unlock() {
	l := g.lock
	if l == nil {
		panic("rangelock: unlock of released guard")
	}
	g.lock, g.data = nil, nil
	l.reg.remove(g.ticket, g.r)
}
