//go:build !(amd64 || 386 || arm || mips || mipsle || wasm) && !rangelock_disable_padding && !rangelock_enable_padding

package opt

import (
	"sync/atomic"
	"unsafe"
)

// OffsetWord_ holds 32 offset bits of a repeating range lock.
// Padding is automatically enabled for architectures that are NOT:
// - amd64 (x86_64): Hardware optimizations often make padding less critical
// - 32-bit architectures (386, arm, mips, mipsle, wasm): Smaller cache lines/memory constraints
//
// Enabled for: arm64, s390x, ppc64, ppc64le, riscv64, loong64, mips64, mips64le, etc.
type OffsetWord_ struct {
	V atomic.Uint32
	_ [(CacheLineSize_ - unsafe.Sizeof(atomic.Uint32{})%CacheLineSize_) % CacheLineSize_]byte
}

const Padded_ = true
