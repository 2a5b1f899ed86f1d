// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"log/slog"
	"sync/atomic"

	"github.com/cwbudde/algo-dsp/dsp/effects/reverb"
	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"

	"github.com/ik5/concertfx/audio"
	"github.com/ik5/concertfx/dsp"
)

// sourceNode plays an audio.Source into the graph from graph frame start
// onwards. Before start, and after the source is exhausted, it renders
// silence.
type sourceNode struct {
	src     audio.Source
	start   int64
	scratch []float32
	ended   atomic.Bool
	stopped bool
}

func newSourceNode(src audio.Source, start int64, blockSize int) *sourceNode {
	return &sourceNode{
		src:     src,
		start:   start,
		scratch: make([]float32, blockSize*src.Channels()),
	}
}

// Ended reports whether the source has run out of samples.
func (s *sourceNode) Ended() bool { return s.ended.Load() }

func (s *sourceNode) Process(pos int64, _, out [][]float64) {
	for c := range out {
		clear(out[c])
	}
	if s.stopped || s.ended.Load() {
		return
	}

	frames := len(out[0])
	first := 0
	if s.start > pos {
		if s.start-pos >= int64(frames) {
			return
		}
		first = int(s.start - pos)
	}

	channels := len(out)
	want := (frames - first) * channels
	buf := s.scratch[:want]

	got := 0
	for got < want {
		n, err := s.src.ReadSamples(buf[got:])
		got += n
		if err != nil {
			// EOF or a broken source; either way nothing more will come
			s.ended.Store(true)
			break
		}
		if n == 0 {
			break
		}
	}

	for i := range got / channels {
		for c := range channels {
			out[c][first+i] = float64(buf[i*channels+c])
		}
	}
}

func (s *sourceNode) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	_ = s.src.Close()
}

// gainNode scales all channels by one live parameter.
type gainNode struct {
	param *dsp.Param
	gain  *dsp.Gain
}

func newGainNode(p *dsp.Param) *gainNode {
	return &gainNode{param: p, gain: dsp.NewGain(p.Load())}
}

func (g *gainNode) Process(_ int64, in, out [][]float64) {
	target := g.param.Load()
	if in == nil {
		for c := range out {
			clear(out[c])
		}
		g.gain.Commit(target)
		return
	}

	curve := g.gain.Plan(target, len(out[0]))
	for c := range out {
		dsp.Scale(out[c], in[c], curve)
	}
	g.gain.Commit(target)
}

func (g *gainNode) Stop() {}

// muteMatrix splits the signal per channel and applies an enabled (1) or
// muted (0) gain to each, ramping over one block when a channel flips.
type muteMatrix struct {
	params []*dsp.Param
	gains  []*dsp.Gain
}

func newMuteMatrix(enabled []bool) *muteMatrix {
	m := &muteMatrix{
		params: make([]*dsp.Param, len(enabled)),
		gains:  make([]*dsp.Gain, len(enabled)),
	}
	for c, on := range enabled {
		v := channelGain(on)
		m.params[c] = dsp.NewParam(v)
		m.gains[c] = dsp.NewGain(v)
	}
	return m
}

func channelGain(enabled bool) float64 {
	if enabled {
		return 1
	}
	return 0
}

func (m *muteMatrix) set(channel int, enabled bool) {
	if channel < 0 || channel >= len(m.params) {
		return
	}
	m.params[channel].Store(channelGain(enabled))
}

func (m *muteMatrix) Process(_ int64, in, out [][]float64) {
	for c := range out {
		target := m.params[c].Load()
		if in == nil {
			clear(out[c])
		} else {
			dsp.Scale(out[c], in[c], m.gains[c].Plan(target, len(out[c])))
		}
		m.gains[c].Commit(target)
	}
}

func (m *muteMatrix) Stop() {}

// filterNode runs one biquad per channel. The design is re-evaluated at a
// block boundary whenever the gain parameter has changed.
type filterNode struct {
	design   func(gainDB float64) biquad.Coefficients
	param    *dsp.Param
	last     float64
	sections []*biquad.Section
}

func newFilterNode(channels int, p *dsp.Param, design func(gainDB float64) biquad.Coefficients) *filterNode {
	f := &filterNode{
		design:   design,
		param:    p,
		last:     p.Load(),
		sections: make([]*biquad.Section, channels),
	}
	coeffs := design(f.last)
	for c := range f.sections {
		f.sections[c] = biquad.NewSection(coeffs)
	}
	return f
}

func (f *filterNode) Process(_ int64, in, out [][]float64) {
	if g := f.param.Load(); g != f.last {
		coeffs := f.design(g)
		// the delay state is kept so a change does not restart the filter
		for _, s := range f.sections {
			s.Coefficients = coeffs
		}
		f.last = g
	}

	for c, s := range f.sections {
		if in == nil {
			clear(out[c])
		} else {
			copy(out[c], in[c])
		}
		s.ProcessBlock(out[c])
	}
}

func (f *filterNode) Stop() {
	for _, s := range f.sections {
		s.Reset()
	}
}

// reverbOrder sets the partition size of the reverb convolution to
// 2^reverbOrder frames, which is also how far the wet signal trails the dry.
const reverbOrder = 6

// convolverNode is the reverb: every output channel convolves the matching
// input channel with one impulse channel and applies the loudness scale.
type convolverNode struct {
	log    *slog.Logger
	reverb []*reverb.ConvolutionReverb
	failed bool
}

// newConvolverNode maps a mono graph to impulse channel 0 and every other
// channel c to impulse channel c%len(kernels).
func newConvolverNode(log *slog.Logger, channels int, kernels [][]float64, scale float64) (*convolverNode, error) {
	n := &convolverNode{
		log:    log,
		reverb: make([]*reverb.ConvolutionReverb, channels),
	}

	for c := range channels {
		k := kernels[c%len(kernels)]
		if channels == 1 {
			k = kernels[0]
		}
		r, err := reverb.NewConvolutionReverb(k, reverbOrder)
		if err != nil {
			return nil, err
		}
		r.SetWetDry(scale, 0)
		n.reverb[c] = r
	}

	return n, nil
}

// latency is the delay of the wet signal in frames.
func (n *convolverNode) latency() int { return n.reverb[0].Latency() }

func (n *convolverNode) Process(_ int64, in, out [][]float64) {
	for c, r := range n.reverb {
		if in == nil || n.failed {
			clear(out[c])
			continue
		}
		copy(out[c], in[c])
		if err := r.ProcessInPlace(out[c]); err != nil {
			// a broken reverb goes quiet for the rest of the session
			n.failed = true
			n.log.Error("reverb: convolution", "channel", c, "error", err)
			clear(out[c])
		}
	}
}

func (n *convolverNode) Stop() {
	for _, r := range n.reverb {
		r.Reset()
	}
}

// destination sums everything connected to it.
type destination struct{}

func (destination) Process(_ int64, in, out [][]float64) {
	for c := range out {
		if in == nil {
			clear(out[c])
		} else {
			copy(out[c], in[c])
		}
	}
}

func (destination) Stop() {}
