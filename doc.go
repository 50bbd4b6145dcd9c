// Package rangelock provides locks over regions of one shared slice.
//
// RangeLock hands out guards for arbitrary non-overlapping index ranges;
// RepRangeLock hands out guards for the offsets of a fixed interleaved
// pattern. Guards of the same lock can be used from different goroutines
// in parallel without further synchronization because their regions never
// share an element.
//
// Acquisition never blocks: TryLock either returns a guard or an error
// wrapping ErrOutOfBounds or ErrConflict. Retrying is up to the caller.
package rangelock
