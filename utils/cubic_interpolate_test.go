// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x, want        float32
	}{
		{"start is y1", 0, 1, 2, 3, 0, 1},
		{"end is y2", 0, 1, 2, 3, 1, 2},
		{"linear midpoint", 0, 1, 2, 3, 0.5, 1.5},
		{"linear quarter", -2, 0, 2, 4, 0.25, 0.5},
		{"constant", 0.7, 0.7, 0.7, 0.7, 0.3, 0.7},
		{"bump overshoots", 0, 1, 1, 0, 0.5, 1.125},
		{"negative", 0, -1, -2, -3, 0.5, -1.5},
	}

	for _, tt := range tests {
		got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
		if math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("%s: CubicInterpolate(%v, %v, %v, %v, %v) = %v, want %v",
				tt.name, tt.y0, tt.y1, tt.y2, tt.y3, tt.x, got, tt.want)
		}
	}
}

func TestCubicInterpolate_FollowsSine(t *testing.T) {
	t.Parallel()

	// 32 samples per cycle, well inside the spline's accuracy
	const step = 2 * math.Pi / 32
	sample := func(i int) float32 { return float32(math.Sin(float64(i) * step)) }

	for i := 1; i < 30; i++ {
		for _, x := range []float32{0.25, 0.5, 0.75} {
			got := CubicInterpolate(sample(i-1), sample(i), sample(i+1), sample(i+2), x)
			want := math.Sin((float64(i) + float64(x)) * step)
			if math.Abs(float64(got)-want) > 1e-3 {
				t.Fatalf("at %v: got %v, want %v", float64(i)+float64(x), got, want)
			}
		}
	}
}

func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = CubicInterpolate(0.1, 0.2, 0.3, 0.4, 0.5)
	})
	if allocs != 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var sink float32
	for i := range b.N {
		sink += CubicInterpolate(0.1, 0.5, -0.2, 0.3, float32(i&1023)/1024)
	}
	_ = sink
}
