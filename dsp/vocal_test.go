// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"

	"github.com/ik5/concertfx/audio"
	"github.com/ik5/concertfx/internal/audiotest"
)

func TestIsolateVocals_Recurrence(t *testing.T) {
	t.Parallel()

	in, _ := audio.NewBufferFromChannels(8000, [][]float32{{0.5, -0.5, 1, 0}})
	out := IsolateVocals(in)

	// hand-rolled reference of the same recurrence
	x := []float64{0.5, -0.5, 1, 0}
	h, l := x[0], x[0]
	want := make([]float32, len(x))
	for i := range x {
		if i > 0 {
			h = 0.95*h + 0.05*x[i]
			l = 0.9*l + 0.1*h
		}
		e := l * 1.3
		c := math.Sqrt(math.Abs(e))
		if e < 0 {
			c = -c
		}
		want[i] = float32(math.Max(-1, math.Min(1, c)))
	}

	got := out.Channel(0)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIsolateVocals_Deterministic(t *testing.T) {
	t.Parallel()

	in := audiotest.Buffer(44100, 2, 4410, audiotest.Sine(44100, 440, 0.8))

	a := IsolateVocals(in)
	b := IsolateVocals(in)

	for c := range 2 {
		ac, bc := a.Channel(c), b.Channel(c)
		for i := range ac {
			if math.Float32bits(ac[i]) != math.Float32bits(bc[i]) {
				t.Fatalf("channel %d sample %d differs: %v vs %v", c, i, ac[i], bc[i])
			}
		}
	}
}

func TestIsolateVocals_KeepsShapeAndInput(t *testing.T) {
	t.Parallel()

	in := audiotest.Buffer(22050, 3, 100, func(i, c int) float32 { return float32(c+1) * 0.3 })
	before := append([]float32(nil), in.Channel(2)...)
	out := IsolateVocals(in)

	if out.Channels() != 3 || out.Len() != 100 || out.SampleRate() != 22050 {
		t.Fatalf("shape = %dch %d frames %d Hz, want 3ch 100 frames 22050 Hz",
			out.Channels(), out.Len(), out.SampleRate())
	}
	for i, v := range in.Channel(2) {
		if v != before[i] {
			t.Fatalf("input sample %d modified: %v, was %v", i, v, before[i])
		}
	}
	for c := range 3 {
		for _, v := range out.Channel(c) {
			if v < -1 || v > 1 {
				t.Fatalf("channel %d sample %v outside [-1, 1]", c, v)
			}
		}
	}
	// 0.9 * 1.3 = 1.17, sqrt > 1, so the loudest channel clamps
	if out.Channel(2)[99] != 1 {
		t.Errorf("clamped sample = %v, want 1", out.Channel(2)[99])
	}
}

func TestIsolateVocals_ShortChannels(t *testing.T) {
	t.Parallel()

	empty := audio.NewBuffer(8000, 2, 0)
	if out := IsolateVocals(empty); out.Len() != 0 || out.Channels() != 2 {
		t.Errorf("empty buffer gave %dch %d frames", out.Channels(), out.Len())
	}

	one, _ := audio.NewBufferFromChannels(8000, [][]float32{{-0.25}})
	out := IsolateVocals(one)
	want := -float32(math.Sqrt(0.25 * 1.3))
	if out.Channel(0)[0] != want {
		t.Errorf("single sample = %v, want %v", out.Channel(0)[0], want)
	}
}

func BenchmarkIsolateVocals(b *testing.B) {
	in := audiotest.Buffer(44100, 2, 44100*10, audiotest.Sine(44100, 220, 0.5))

	b.ReportAllocs()

	for b.Loop() {
		_ = IsolateVocals(in)
	}
}
