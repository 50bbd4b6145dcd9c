package rangelock

import "testing"

func TestRangeOverlaps(t *testing.T) {
	cases := []struct {
		a, b Range
		want bool
	}{
		{Range{0, 1}, Range{0, 1}, true},
		{Range{0, 1}, Range{1, 2}, false},
		{Range{0, 1}, Range{1, 3}, false},
		{Range{0, 1}, Range{2, 4}, false},
		{Range{0, 1}, Range{7, 9}, false},
		{Range{4, 6}, Range{0, 1}, false},
		{Range{4, 6}, Range{2, 4}, false},
		{Range{4, 6}, Range{3, 5}, true},
		{Range{4, 6}, Range{4, 6}, true},
		{Range{4, 6}, Range{5, 7}, true},
		{Range{4, 6}, Range{6, 8}, false},
		{Range{4, 6}, Range{7, 9}, false},
		// empty ranges
		{Range{5, 5}, Range{4, 6}, true},
		{Range{4, 6}, Range{5, 5}, true},
		{Range{4, 4}, Range{4, 6}, false},
		{Range{6, 6}, Range{4, 6}, false},
		{Range{5, 5}, Range{5, 5}, false},
	}
	for _, c := range cases {
		if got := c.a.Overlaps(c.b); got != c.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestRangeWithin(t *testing.T) {
	cases := []struct {
		r    Range
		n    int
		want bool
	}{
		{Range{0, 4}, 4, true},
		{Range{4, 4}, 4, true},
		{Range{0, 0}, 0, true},
		{Range{0, 5}, 4, false},
		{Range{3, 2}, 4, false},
		{Range{-1, 2}, 4, false},
	}
	for _, c := range cases {
		if got := c.r.within(c.n); got != c.want {
			t.Errorf("%v.within(%d) = %v, want %v", c.r, c.n, got, c.want)
		}
	}
}

func TestRangeAccessors(t *testing.T) {
	r := Range{2, 5}
	if r.Len() != 3 || r.Empty() {
		t.Fatalf("len=%d empty=%v", r.Len(), r.Empty())
	}
	if !r.Contains(2) || !r.Contains(4) || r.Contains(5) || r.Contains(1) {
		t.Fatal("Contains")
	}
	if !(Range{3, 3}).Empty() {
		t.Fatal("empty range")
	}
	if s := r.String(); s != "[2, 5)" {
		t.Fatalf("String() = %q", s)
	}
}
