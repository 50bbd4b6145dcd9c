//go:build rangelock_disable_padding && !rangelock_enable_padding

package opt

import "sync/atomic"

// OffsetWord_ holds 32 offset bits of a repeating range lock.
// Padding is force-disabled via the rangelock_disable_padding build tag.
// Use: go build -tags=rangelock_disable_padding
type OffsetWord_ struct {
	V atomic.Uint32
}

const Padded_ = false
