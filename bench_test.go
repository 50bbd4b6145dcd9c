package rangelock

import (
	"sync"
	"sync/atomic"
	"testing"
)

const benchLen = 1 << 12

func BenchmarkRangeLock_Disjoint(b *testing.B) {
	lock := New(make([]uint64, benchLen))
	var next atomic.Int64
	b.RunParallel(func(pb *testing.PB) {
		start := int(next.Add(64)-64) % benchLen
		for pb.Next() {
			g, err := lock.TryLock(start, start+64)
			if err != nil {
				continue
			}
			g.Set(0, g.At(0)+1)
			g.Unlock()
		}
	})
}

func BenchmarkRepRangeLock_Disjoint(b *testing.B) {
	lock, _ := NewRep(make([]uint64, benchLen), 16, 64)
	var next atomic.Int64
	b.RunParallel(func(pb *testing.PB) {
		off := int(next.Add(1)-1) % 64
		for pb.Next() {
			g, err := lock.TryLock(off)
			if err != nil {
				continue
			}
			g.Set(0, 0, g.At(0, 0)+1)
			g.Unlock()
		}
	})
}

// Baseline: one mutex over the whole slice.
func BenchmarkMutex_Whole(b *testing.B) {
	data := make([]uint64, benchLen)
	var mu sync.Mutex
	var next atomic.Int64
	b.RunParallel(func(pb *testing.PB) {
		start := int(next.Add(64)-64) % benchLen
		for pb.Next() {
			mu.Lock()
			data[start]++
			mu.Unlock()
		}
	})
}
