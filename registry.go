package rangelock

import (
	"cmp"
	"slices"

	"github.com/llxisdsh/pb"
)

// rangeRegistry is the set of currently held ranges of a RangeLock.
//
// Entries are keyed by a ticket handed to the guard, so releasing removes
// exactly the guard's own entry even when equal ranges (empty ones) are
// held twice. Acquire and release are separate critical sections.
// Every map access already runs under mu; the map is kept for its
// ticket-keyed deletes, a plain map[uint64]Range would serve as well.
type rangeRegistry struct {
	_      noCopy
	mu     ticketLock
	seq    uint64 // guarded by mu
	closed bool   // guarded by mu
	ranges pb.MapOf[uint64, Range]
}

// tryInsert records r and returns its ticket, or the reason it cannot.
//
// TODO: keep held ranges ordered by start so the conflict check can
// binary search instead of scanning every entry.
func (g *rangeRegistry) tryInsert(r Range) (uint64, error) {
	g.mu.lock()
	defer g.mu.unlock()
	if g.closed {
		return 0, ErrUnwrapped
	}
	conflict := false
	g.ranges.Range(func(_ uint64, held Range) bool {
		conflict = held.Overlaps(r)
		return !conflict
	})
	if conflict {
		return 0, ErrConflict
	}
	g.seq++
	g.ranges.Store(g.seq, r)
	return g.seq, nil
}

func (g *rangeRegistry) remove(ticket uint64, r Range) {
	g.mu.lock()
	held, ok := g.ranges.LoadAndDelete(ticket)
	g.mu.unlock()
	if !ok || held != r {
		panic("rangelock: released range " + r.String() + " was not registered")
	}
}

// close marks the registry unusable if nothing is held and idle reports
// no other holder. Later inserts fail with ErrUnwrapped.
func (g *rangeRegistry) close(idle func() bool) error {
	g.mu.lock()
	defer g.mu.unlock()
	if g.closed {
		return ErrUnwrapped
	}
	if g.ranges.Size() != 0 || !idle() {
		return ErrStillInUse
	}
	g.closed = true
	return nil
}

func (g *rangeRegistry) snapshot() []Range {
	g.mu.lock()
	out := make([]Range, 0, g.ranges.Size())
	g.ranges.Range(func(_ uint64, r Range) bool {
		out = append(out, r)
		return true
	})
	g.mu.unlock()
	slices.SortFunc(out, func(a, b Range) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
	return out
}
