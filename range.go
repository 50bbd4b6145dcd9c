package rangelock

import "strconv"

// Range is the half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether r covers no index.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether i lies in r.
func (r Range) Contains(i int) bool {
	return r.Start <= i && i < r.End
}

// Overlaps reports whether r and o conflict.
//
// An empty range strictly inside another one overlaps it, two empty
// ranges never overlap.
func (r Range) Overlaps(o Range) bool {
	return !(r.End <= o.Start || r.Start >= o.End)
}

// within reports whether r is well-formed and fits a sequence of n elements.
func (r Range) within(n int) bool {
	return 0 <= r.Start && r.Start <= r.End && r.End <= n
}

func (r Range) String() string {
	return "[" + strconv.Itoa(r.Start) + ", " + strconv.Itoa(r.End) + ")"
}
