// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"github.com/ik5/concertfx/audio"
)

const (
	smoothKeep   = 0.95
	smoothInput  = 0.05
	toneKeep     = 0.9
	toneInput    = 0.1
	vocalEnhance = 1.3
)

// IsolateVocals derives a vocal-forward copy of b for the chorus voices.
// Each channel runs through two cascaded one-pole smoothers seeded with the
// first sample, a 1.3x boost, and square-root soft compression, then is
// clamped to [-1, 1]. The input is never modified and the result depends
// only on the input.
func IsolateVocals(b *audio.Buffer) *audio.Buffer {
	out := audio.NewBuffer(b.SampleRate(), b.Channels(), b.Len())

	for c := range b.Channels() {
		x := b.Channel(c)
		y := out.Channel(c)
		if len(x) == 0 {
			continue
		}

		h := float64(x[0])
		l := h
		y[0] = compress(l)

		for i := 1; i < len(x); i++ {
			h = smoothKeep*h + smoothInput*float64(x[i])
			l = toneKeep*l + toneInput*h
			y[i] = compress(l)
		}
	}

	return out
}

func compress(l float64) float32 {
	e := l * vocalEnhance
	c := math.Copysign(math.Sqrt(math.Abs(e)), e)
	return float32(math.Max(-1, math.Min(1, c)))
}
