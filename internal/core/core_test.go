package core

import (
	"image"
	"slices"
	"testing"
	"time"
)

func TestShuffleDeterministic(t *testing.T) {
	base := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	a := slices.Clone(base)
	b := slices.Clone(base)
	Shuffle(NewRNG(7), a)
	Shuffle(NewRNG(7), b)
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced different permutations: %v vs %v", a, b)
	}

	sorted := slices.Clone(a)
	slices.Sort(sorted)
	if !slices.Equal(sorted, base) {
		t.Fatalf("shuffle changed the multiset: %v", a)
	}
}

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(42); got != 42 {
		t.Fatalf("expected explicit seed to pass through, got %d", got)
	}
	if got := ResolveSeed(0); got == 0 {
		t.Fatal("expected zero seed to be replaced")
	}
}

func TestLayoutAutoColumns(t *testing.T) {
	cases := []struct {
		count      int
		cols, rows int
	}{
		{16, 4, 4},
		{10, 4, 3},
		{12, 4, 3},
		{20, 5, 4},
		{1, 1, 1},
	}
	for _, tc := range cases {
		l := NewLayout(tc.count, 0, Size{W: 10, H: 20}, 2, Size{W: 800, H: 600}, 0)
		if l.Cols != tc.cols || l.Rows != tc.rows {
			t.Fatalf("count %d: got %dx%d, expected %dx%d", tc.count, l.Cols, l.Rows, tc.cols, tc.rows)
		}
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(10, 4, Size{W: 100, H: 150}, 10, Size{W: 430, H: 600}, 100)
	if l.Origin != image.Pt(0, 100+(500-470)/2) {
		t.Fatalf("unexpected origin %v", l.Origin)
	}

	for i := 0; i < l.Count; i++ {
		r := l.Rect(i)
		idx, ok := l.CellAt(r.Min.X+5, r.Min.Y+5)
		if !ok || idx != i {
			t.Fatalf("click inside card %d resolved to %d (ok=%v)", i, idx, ok)
		}
	}

	r0 := l.Rect(0)
	if _, ok := l.CellAt(r0.Max.X+2, r0.Min.Y+2); ok {
		t.Fatal("click in horizontal padding should miss")
	}
	if _, ok := l.CellAt(r0.Min.X+2, r0.Max.Y+2); ok {
		t.Fatal("click in vertical padding should miss")
	}
	if _, ok := l.CellAt(-1, -1); ok {
		t.Fatal("click outside the grid should miss")
	}

	// Row 2 holds cards 8 and 9 only; column 2 of that row is empty.
	empty := l.Rect(0).Add(image.Pt(2*(100+10), 2*(150+10)))
	if _, ok := l.CellAt(empty.Min.X+1, empty.Min.Y+1); ok {
		t.Fatal("click on an unoccupied cell should miss")
	}
}

func TestCountdown(t *testing.T) {
	clock := NewManualClock(time.Unix(100, 0))
	cd := NewCountdown(clock, time.Second)

	if cd.Expired() {
		t.Fatal("disarmed countdown must not report expiry")
	}
	cd.Start()
	if cd.Expired() {
		t.Fatal("countdown expired immediately")
	}
	clock.Advance(250 * time.Millisecond)
	if got := cd.Remaining(); got < 0.74 || got > 0.76 {
		t.Fatalf("expected ~0.75 remaining, got %f", got)
	}
	clock.Advance(750 * time.Millisecond)
	if !cd.Expired() {
		t.Fatal("countdown should expire at its deadline")
	}
	if got := cd.Remaining(); got != 0 {
		t.Fatalf("expected nothing remaining, got %f", got)
	}
	cd.Stop()
	if cd.Armed() || cd.Expired() {
		t.Fatal("stopped countdown should be disarmed")
	}
}

func TestStopwatchFreezes(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	sw := NewStopwatch(clock)
	clock.Advance(3 * time.Second)
	sw.Stop()
	clock.Advance(10 * time.Second)
	if got := sw.Elapsed(); got != 3*time.Second {
		t.Fatalf("expected frozen 3s, got %v", got)
	}
	sw.Reset()
	if got := sw.Elapsed(); got != 0 {
		t.Fatalf("expected reset stopwatch at 0, got %v", got)
	}
}

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Key: "pairs", Type: ParamTypeInt, Min: 5, Max: 10, HasMin: true, HasMax: true}
	if got := ctrl.ClampInt(2); got != 5 {
		t.Fatalf("expected clamp to 5, got %d", got)
	}
	if got := ctrl.ClampInt(12); got != 10 {
		t.Fatalf("expected clamp to 10, got %d", got)
	}
	if got := ctrl.IntStep(); got != 1 {
		t.Fatalf("expected default step 1, got %d", got)
	}
}
