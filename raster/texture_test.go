package raster

import "testing"

// TestGenCheckerboardScenario checks spec.md §8 scenario S6:
// GenCheckerboard(16,16,8) sampled at (0.1,0.1), (0.6,0.6), (0.6,0.1),
// (0.1,0.6).
func TestGenCheckerboardScenario(t *testing.T) {
	tex := GenCheckerboard(16, 16, 8)

	cases := []struct {
		u, v float64
		want Pixel
	}{
		{0.1, 0.1, Pixel{0, 0, 0}},
		{0.6, 0.6, Pixel{255, 255, 255}},
		{0.6, 0.1, Pixel{0, 0, 0}},
		{0.1, 0.6, Pixel{0, 0, 0}},
	}
	for _, c := range cases {
		if got := tex.Sample(c.u, c.v); got != c.want {
			t.Errorf("Sample(%v,%v) = %+v, want %+v", c.u, c.v, got, c.want)
		}
	}
}
