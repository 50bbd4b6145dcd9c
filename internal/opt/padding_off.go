//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !rangelock_disable_padding && !rangelock_enable_padding

package opt

import "sync/atomic"

// OffsetWord_ holds 32 offset bits of a repeating range lock.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
type OffsetWord_ struct {
	V atomic.Uint32
}

const Padded_ = false
