// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math"

	"github.com/ik5/concertfx/audio"
	"github.com/ik5/concertfx/dsp"
)

// ChorusPart selects one of the two backing choirs.
type ChorusPart int

const (
	MaleChorus ChorusPart = iota
	FemaleChorus
)

func (p ChorusPart) String() string {
	if p == MaleChorus {
		return "male"
	}
	return "female"
}

const (
	// VoicesPerPart is fixed so the choir timbre does not depend on the amount.
	VoicesPerPart = 6
	voiceGain     = 0.25
	busScale      = 0.4
)

// ChorusVoice is one detuned, delayed copy of the vocal signal.
type ChorusVoice struct {
	// Rate is the playback speed; pitch moves with it.
	Rate float64
	// Delay is how long after the session start the voice comes in, in seconds.
	Delay float64
	Gain  float64
}

// Voices lists the voices of a part. Male voices sit below the original
// pitch, female voices above it.
func Voices(part ChorusPart) []ChorusVoice {
	rate, rateStep, delay := 0.88, 0.023, 0.05
	if part == FemaleChorus {
		rate, rateStep, delay = 1.19, 0.035, 0.06
	}

	voices := make([]ChorusVoice, VoicesPerPart)
	for i := range voices {
		voices[i] = ChorusVoice{
			Rate:  rate + float64(i)*rateStep,
			Delay: delay + float64(i)*0.05,
			Gain:  voiceGain,
		}
	}
	return voices
}

// BusGain is the mix level of a part's bus for a chorus amount.
func BusGain(amount float64) float64 { return amount * busScale }

// chorusBus is the part of a graph built for one choir.
type chorusBus struct {
	part   ChorusPart
	voices []*sourceNode
	bus    *dsp.Param
}

// buildChorus adds the voices of part to g, each replaying vocal from
// startFrame at its own rate, and sums them into one bus. The caller wires
// the returned bus node into the mix.
func buildChorus(g *Graph, part ChorusPart, vocal *audio.Buffer, amount float64, startFrame int) (*chorusBus, NodeID, error) {
	cb := &chorusBus{part: part, bus: dsp.NewParam(BusGain(amount))}

	type wired struct{ voice, gain NodeID }
	nodes := make([]wired, 0, VoicesPerPart)

	for _, v := range Voices(part) {
		src := audio.NewPlaybackRate(audio.NewBufferReader(vocal, startFrame), v.Rate)
		delay := int64(math.Round(v.Delay * float64(vocal.SampleRate())))

		sn := newSourceNode(src, delay, g.BlockSize())
		cb.voices = append(cb.voices, sn)

		nodes = append(nodes, wired{
			voice: g.Add(sn),
			gain:  g.Add(newGainNode(dsp.NewParam(v.Gain))),
		})
	}

	bus := g.Add(newGainNode(cb.bus))

	for _, n := range nodes {
		if err := g.Connect(n.voice, n.gain); err != nil {
			return nil, -1, fmt.Errorf("%s chorus: %w", part, err)
		}
		if err := g.Connect(n.gain, bus); err != nil {
			return nil, -1, fmt.Errorf("%s chorus: %w", part, err)
		}
	}

	return cb, bus, nil
}
