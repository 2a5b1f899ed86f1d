// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"

	"github.com/ik5/concertfx/audio"
	"github.com/ik5/concertfx/dsp"
)

const (
	bassFreq     = 200.0
	presenceFreq = 3000.0
	presenceQ    = 1.0
)

// impulse is a reverb impulse ready for the convolver.
type impulse struct {
	kernels [][]float64
	scale   float64
}

func newImpulse(ir *audio.Buffer) impulse {
	kernels := make([][]float64, ir.Channels())
	for c := range kernels {
		src := ir.Channel(c)
		k := make([]float64, len(src))
		for i, v := range src {
			k[i] = float64(v)
		}
		kernels[c] = k
	}
	return impulse{kernels: kernels, scale: dsp.ImpulseScale(ir)}
}

// assembly is everything needed to build one graph.
type assembly struct {
	buffer *audio.Buffer
	// vocal returns the vocal-forward signal; it is only called when a
	// chorus part is built.
	vocal    func() *audio.Buffer
	impulse  impulse
	settings EffectSettings
	mutes    []bool
	// startFrame is where in buffer the main source and the chorus voices
	// begin.
	startFrame int
	blockSize  int
	// log receives render-time failures; nil means slog.Default().
	log *slog.Logger
}

// liveGraph is a built graph plus handles to every parameter that can be
// patched while it runs.
type liveGraph struct {
	graph *Graph
	main  *sourceNode
	mutes *muteMatrix

	dry, wet       *dsp.Param
	bass, presence *dsp.Param
	chorus         map[ChorusPart]*chorusBus
}

// assemble builds a fresh graph for a:
//
//	source -> [mutes] -> low shelf -> peak -> dry -----------------> destination
//	                                       -> convolver -> wet ---->
//	vocal -> 6 voices -> bus (per chorus part) --------------------->
//
// The mute matrix only exists for multi-channel buffers, the wet path only
// when the reverb amount is above zero and a chorus part only when its
// amount is above zero.
func assemble(a assembly) (lg *liveGraph, err error) {
	s := a.settings.Clamp()
	channels := a.buffer.Channels()
	rate := float64(a.buffer.SampleRate())
	log := a.log
	if log == nil {
		log = slog.Default()
	}

	g := NewGraph(channels, a.blockSize)
	defer func() {
		if err != nil {
			g.Teardown()
		}
	}()

	lg = &liveGraph{
		graph:    g,
		dry:      dsp.NewParam(1 - s.ReverbAmount),
		bass:     dsp.NewParam(s.BassBoost),
		presence: dsp.NewParam(s.Presence),
		chorus:   make(map[ChorusPart]*chorusBus, 2),
	}

	var edges [][2]NodeID
	link := func(from, to NodeID) { edges = append(edges, [2]NodeID{from, to}) }

	lg.main = newSourceNode(audio.NewBufferReader(a.buffer, a.startFrame), 0, a.blockSize)
	prev := g.Add(lg.main)

	if channels > 1 {
		lg.mutes = newMuteMatrix(a.mutes)
		id := g.Add(lg.mutes)
		link(prev, id)
		prev = id
	}

	bass := g.Add(newFilterNode(channels, lg.bass, func(gain float64) biquad.Coefficients {
		return dsp.LowShelf(bassFreq, gain, dsp.ShelfQ, rate)
	}))
	presence := g.Add(newFilterNode(channels, lg.presence, func(gain float64) biquad.Coefficients {
		return dsp.Peak(presenceFreq, gain, presenceQ, rate)
	}))
	dry := g.Add(newGainNode(lg.dry))
	link(prev, bass)
	link(bass, presence)
	link(presence, dry)

	mix := []NodeID{dry}

	if s.ReverbAmount > 0 {
		conv, cerr := newConvolverNode(log, channels, a.impulse.kernels, a.impulse.scale)
		if cerr != nil {
			return nil, fmt.Errorf("reverb: %w", cerr)
		}
		lg.wet = dsp.NewParam(s.ReverbAmount)

		convID := g.Add(conv)
		wet := g.Add(newGainNode(lg.wet))
		link(presence, convID)
		link(convID, wet)
		mix = append(mix, wet)
	}

	parts := []struct {
		part   ChorusPart
		amount float64
	}{
		{MaleChorus, s.MaleChorus},
		{FemaleChorus, s.FemaleChorus},
	}
	for _, p := range parts {
		if p.amount <= 0 {
			continue
		}
		cb, bus, berr := buildChorus(g, p.part, a.vocal(), p.amount, a.startFrame)
		if berr != nil {
			return nil, berr
		}
		lg.chorus[p.part] = cb
		mix = append(mix, bus)
	}

	dest := g.Add(destination{})
	for _, id := range mix {
		link(id, dest)
	}

	for _, e := range edges {
		if err = g.Connect(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	if err = g.SetOutput(dest); err != nil {
		return nil, err
	}

	return lg, nil
}

// update patches the live parameters in place. Nodes that were not built
// are left alone.
func (lg *liveGraph) update(settings EffectSettings) {
	s := settings.Clamp()

	lg.dry.Store(1 - s.ReverbAmount)
	if lg.wet != nil {
		lg.wet.Store(s.ReverbAmount)
	}
	lg.bass.Store(s.BassBoost)
	lg.presence.Store(s.Presence)

	if cb, ok := lg.chorus[MaleChorus]; ok {
		cb.bus.Store(BusGain(s.MaleChorus))
	}
	if cb, ok := lg.chorus[FemaleChorus]; ok {
		cb.bus.Store(BusGain(s.FemaleChorus))
	}
}

func (lg *liveGraph) setMute(channel int, enabled bool) {
	if lg.mutes != nil {
		lg.mutes.set(channel, enabled)
	}
}

// voices counts the chorus voices built for part.
func (lg *liveGraph) voices(part ChorusPart) int {
	cb, ok := lg.chorus[part]
	if !ok {
		return 0
	}
	return len(cb.voices)
}

func (lg *liveGraph) teardown() int { return lg.graph.Teardown() }
