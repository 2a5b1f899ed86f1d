// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
)

func TestZeroGainIsIdentity(t *testing.T) {
	t.Parallel()

	if c := LowShelf(200, 0, ShelfQ, 44100); c != Identity {
		t.Errorf("LowShelf(0 dB) = %+v, want Identity", c)
	}
	if c := Peak(3000, 0, 1, 44100); c != Identity {
		t.Errorf("Peak(0 dB) = %+v, want Identity", c)
	}

	s := biquad.NewSection(Identity)
	buf := []float64{0.1, -0.7, 0.33333, 1, -1, 0, 0.25, -0.125}
	want := append([]float64(nil), buf...)
	s.ProcessBlock(buf)

	for i := range buf {
		if buf[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestLowShelf_Response(t *testing.T) {
	t.Parallel()

	for _, gain := range []float64{-12, -3, 6, 12} {
		c := LowShelf(200, gain, ShelfQ, 44100)

		if got := c.MagnitudeDB(10, 44100); math.Abs(got-gain) > 0.1 {
			t.Errorf("%v dB shelf at 10 Hz = %.3f dB", gain, got)
		}
		if got := c.MagnitudeDB(200, 44100); math.Abs(got-gain/2) > 0.1 {
			t.Errorf("%v dB shelf at corner = %.3f dB, want %.3f", gain, got, gain/2)
		}
		if got := c.MagnitudeDB(15000, 44100); math.Abs(got) > 0.1 {
			t.Errorf("%v dB shelf at 15 kHz = %.3f dB, want 0", gain, got)
		}
	}
}

func TestPeak_Response(t *testing.T) {
	t.Parallel()

	for _, gain := range []float64{-12, 2, 12} {
		c := Peak(3000, gain, 1, 48000)

		if got := c.MagnitudeDB(3000, 48000); math.Abs(got-gain) > 1e-6 {
			t.Errorf("%v dB peak at centre = %.6f dB", gain, got)
		}
		if got := c.MagnitudeDB(20, 48000); math.Abs(got) > 0.05 {
			t.Errorf("%v dB peak at 20 Hz = %.3f dB, want 0", gain, got)
		}
	}
}

func TestDesign_InvalidFrequency(t *testing.T) {
	t.Parallel()

	if c := Peak(30000, 6, 1, 44100); c != Identity {
		t.Errorf("Peak above Nyquist = %+v, want Identity", c)
	}
	if c := LowShelf(200, 6, 0, 0); c != Identity {
		t.Errorf("LowShelf at 0 Hz rate = %+v, want Identity", c)
	}
}
