package render

import "testing"

func TestCardFace(t *testing.T) {
	cases := []struct {
		faceUp, matched bool
		front           bool
		alpha           float64
	}{
		{false, false, false, 1},
		{true, false, true, 1},
		{true, true, true, MatchedAlpha},
		{false, true, true, MatchedAlpha},
	}
	for _, tc := range cases {
		front, alpha := CardFace(tc.faceUp, tc.matched)
		if front != tc.front || alpha != tc.alpha {
			t.Fatalf("faceUp=%v matched=%v: got (%v, %v), expected (%v, %v)",
				tc.faceUp, tc.matched, front, alpha, tc.front, tc.alpha)
		}
	}
}
