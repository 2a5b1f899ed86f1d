// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"testing"
)

func TestVoices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		part              ChorusPart
		rate0, rateStep   float64
		delay0, delayStep float64
	}{
		{MaleChorus, 0.88, 0.023, 0.05, 0.05},
		{FemaleChorus, 1.19, 0.035, 0.06, 0.05},
	}

	for _, tt := range tests {
		voices := Voices(tt.part)
		if len(voices) != VoicesPerPart {
			t.Fatalf("%s: %d voices, want %d", tt.part, len(voices), VoicesPerPart)
		}
		for i, v := range voices {
			rate := tt.rate0 + float64(i)*tt.rateStep
			delay := tt.delay0 + float64(i)*tt.delayStep
			if math.Abs(v.Rate-rate) > 1e-12 || math.Abs(v.Delay-delay) > 1e-12 || v.Gain != 0.25 {
				t.Errorf("%s voice %d = %+v, want rate %v delay %v gain 0.25", tt.part, i, v, rate, delay)
			}
		}
	}

	// male voices sit below the original pitch, female voices above it
	for _, v := range Voices(MaleChorus) {
		if v.Rate >= 1 {
			t.Errorf("male rate %v >= 1", v.Rate)
		}
	}
	for _, v := range Voices(FemaleChorus) {
		if v.Rate <= 1 {
			t.Errorf("female rate %v <= 1", v.Rate)
		}
	}
}

func TestBusGain(t *testing.T) {
	t.Parallel()

	for amount, want := range map[float64]float64{0: 0, 0.5: 0.2, 1: 0.4} {
		if got := BusGain(amount); math.Abs(got-want) > 1e-15 {
			t.Errorf("BusGain(%v) = %v, want %v", amount, got, want)
		}
	}
}
