// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/concertfx/audio"
)

const (
	// ImpulseSeconds is the length of a synthesized hall impulse.
	ImpulseSeconds = 3
	// ImpulseChannels is the channel count of a synthesized hall impulse.
	ImpulseChannels = 2
	// impulseDecay is the time constant of the exponential envelope in seconds.
	impulseDecay = 0.8

	minImpulsePower    = 0.000125
	impulseCalibration = 0.00125 // -58 dB
	calibrationRate    = 44100.0
)

// SynthesizeImpulse generates a stereo reverb impulse of exponentially
// decaying white noise. Every sample of every channel is a fresh draw from
// rng; a nil rng uses a randomly seeded generator.
func SynthesizeImpulse(sampleRate int, rng *rand.Rand) *audio.Buffer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	frames := ImpulseSeconds * sampleRate
	ir := audio.NewBuffer(sampleRate, ImpulseChannels, frames)
	tau := float64(sampleRate) * impulseDecay

	for c := range ImpulseChannels {
		data := ir.Channel(c)
		for i := range data {
			noise := rng.Float64()*2 - 1
			data[i] = float32(noise * math.Exp(-float64(i)/tau))
		}
	}

	return ir
}

// ImpulseScale is the gain applied to convolution output so that impulses
// of different energy produce comparable loudness: the inverse RMS of the
// impulse, calibrated to -58 dB and to a 44.1 kHz reference rate.
func ImpulseScale(ir *audio.Buffer) float64 {
	frames := ir.Len()
	channels := ir.Channels()
	if frames == 0 || channels == 0 {
		return 1
	}

	var power float64
	for c := range channels {
		for _, v := range ir.Channel(c) {
			power += float64(v) * float64(v)
		}
	}
	power = math.Sqrt(power / float64(channels*frames))

	if math.IsNaN(power) || math.IsInf(power, 0) || power < minImpulsePower {
		power = minImpulsePower
	}

	scale := impulseCalibration / power
	if ir.SampleRate() > 0 {
		scale *= calibrationRate / float64(ir.SampleRate())
	}

	return scale
}
