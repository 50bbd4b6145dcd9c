package rangelock_test

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/rangelock"
)

func ExampleRangeLock() {
	lock := rangelock.New([]int{10, 11, 12, 13})

	var eg errgroup.Group
	for _, r := range []rangelock.Range{{Start: 0, End: 2}, {Start: 2, End: 4}} {
		h := lock.Share()
		eg.Go(func() error {
			defer h.Release()
			g, err := h.TryLockRange(r)
			if err != nil {
				return err
			}
			defer g.Unlock()
			g.Set(0, g.At(0)*10)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		panic(err)
	}

	data, _ := lock.TryUnwrap()
	fmt.Println(data)
	// Output: [100 11 120 13]
}

func ExampleRepRangeLock() {
	lock, err := rangelock.NewRep([]int{
		1, 2, 3, 4, 5, 6, // cycle 0
		7, 8, 9, 10, 11, 12, // cycle 1
	}, 2, 3)
	if err != nil {
		panic(err)
	}

	g, _ := lock.TryLock(1)
	fmt.Println(g.Cycle(0), g.Cycle(1))

	_, err = lock.TryLock(1)
	fmt.Println(errors.Is(err, rangelock.ErrConflict))

	g.Set(1, 1, 100)
	g.Unlock()

	data, _ := lock.TryUnwrap()
	fmt.Println(data)
	// Output:
	// [3 4] [9 10]
	// true
	// [1 2 3 4 5 6 7 8 9 100 11 12]
}
