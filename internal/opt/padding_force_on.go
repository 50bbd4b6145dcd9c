//go:build rangelock_enable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// OffsetWord_ holds 32 offset bits of a repeating range lock.
// Padding is force-enabled via the rangelock_enable_padding build tag.
// Use: go build -tags=rangelock_enable_padding
type OffsetWord_ struct {
	V atomic.Uint32
	_ [(CacheLineSize_ - unsafe.Sizeof(atomic.Uint32{})%CacheLineSize_) % CacheLineSize_]byte
}

const Padded_ = true
