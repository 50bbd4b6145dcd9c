package rangelock

import (
	"sync/atomic"

	"github.com/llxisdsh/rangelock/internal/opt"
)

const (
	offsetOpen int32 = iota
	offsetClosing
	offsetClosed
)

// offsetRegistry records held offsets of a RepRangeLock, one bit per
// offset packed into 32-bit words.
//
// Offsets never overlap each other, so holding one is a single atomic OR
// and releasing it a single atomic AND; no registry lock is involved.
type offsetRegistry struct {
	_     noCopy
	state atomic.Int32
	words []opt.OffsetWord_
}

func (r *offsetRegistry) init(n int) {
	r.words = make([]opt.OffsetWord_, (n-1)/32+1)
}

func offsetBit(offset int) (int, uint32) {
	return offset >> 5, 1 << (offset & 31)
}

// tryHold sets the bit of offset. The caller has range checked offset.
func (r *offsetRegistry) tryHold(offset int) error {
	if r.state.Load() == offsetClosed {
		return ErrUnwrapped
	}
	idx, mask := offsetBit(offset)
	w := &r.words[idx].V
	if w.Or(mask)&mask != 0 {
		return ErrConflict
	}
	// Pairs with close: either close sees our bit, or we see its state.
	var spins int
	for {
		switch r.state.Load() {
		case offsetOpen:
			return nil
		case offsetClosed:
			w.And(^mask)
			return ErrUnwrapped
		}
		delay(&spins)
	}
}

func (r *offsetRegistry) release(offset int) {
	idx, mask := offsetBit(offset)
	if r.words[idx].V.And(^mask)&mask == 0 {
		panic("rangelock: released offset was not held")
	}
}

func (r *offsetRegistry) held(offset int) bool {
	idx, mask := offsetBit(offset)
	return r.words[idx].V.Load()&mask != 0
}

func (r *offsetRegistry) idle() bool {
	for i := range r.words {
		if r.words[i].V.Load() != 0 {
			return false
		}
	}
	return true
}

// close marks the registry unusable if no offset is held and idle
// reports no other holder.
func (r *offsetRegistry) close(idle func() bool) error {
	if !r.state.CompareAndSwap(offsetOpen, offsetClosing) {
		if r.state.Load() == offsetClosed {
			return ErrUnwrapped
		}
		// A concurrent TryUnwrap means another holder exists.
		return ErrStillInUse
	}
	if !idle() || !r.idle() {
		r.state.Store(offsetOpen)
		return ErrStillInUse
	}
	r.state.Store(offsetClosed)
	return nil
}
