package rangelock

import (
	"sync/atomic"
	"time"
	_ "unsafe" // for linkname
)

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ticketLock serializes registry updates in FIFO order.
//
// The critical sections it protects are a scan plus one insert or one
// delete, so spinning is cheaper than parking. It is never held while a
// guard is alive.
type ticketLock struct {
	_       noCopy
	next    atomic.Uint32
	serving atomic.Uint32
}

func (m *ticketLock) lock() {
	my := m.next.Add(1) - 1
	var spins int
	for m.serving.Load() != my {
		delay(&spins)
	}
}

func (m *ticketLock) unlock() {
	m.serving.Add(1)
}

// holders counts the shared references to a lock.
// The creator owns the first one.
type holders struct {
	n atomic.Int32
}

func (h *holders) init() {
	h.n.Store(1)
}

func (h *holders) share() {
	h.n.Add(1)
}

// release panics rather than drop the last holder, which would leave
// the lock impossible to unwrap.
func (h *holders) release() {
	for {
		n := h.n.Load()
		if n <= 1 {
			panic("rangelock: Release without matching Share")
		}
		if h.n.CompareAndSwap(n, n-1) {
			return
		}
	}
}

func (h *holders) unique() bool {
	return h.n.Load() == 1
}

func trySpin(spins *int) bool {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return true
	}
	return false
}

func delay(spins *int) {
	if trySpin(spins) {
		return
	}
	*spins = 0
	// The 500µs duration is derived from Facebook/folly's implementation:
	// https://github.com/facebook/folly/blob/main/folly/synchronization/detail/Sleeper.h
	time.Sleep(500 * time.Microsecond)
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//goland:noinspection ALL
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()
