// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/ik5/concertfx/audio"
	"github.com/ik5/concertfx/dsp"
)

// State is the lifecycle state of an Engine.
type State int

const (
	// StateEmpty: nothing loaded.
	StateEmpty State = iota
	// StateLoaded: a recording is decoded and no graph is live. A paused
	// engine is Loaded with a non-zero offset.
	StateLoaded
	// StateLive: a graph is attached to the context.
	StateLive
	// StateDisposed is terminal.
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateLive:
		return "live"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Engine owns one decoded recording and the live graph that plays it.
//
// Control methods may be called from any goroutine; they never wait for
// audio to be rendered. Calls that make no sense in the current state
// (playing with nothing loaded, pausing when not live, an out of range
// channel) are ignored.
type Engine struct {
	log        *slog.Logger
	blockSize  int
	sampleRate int
	rng        *rand.Rand
	registry   *audio.Registry

	mu     sync.Mutex
	state  State
	buffer *audio.Buffer
	vocal  *audio.Buffer
	ir     *impulse
	irRate int
	proc   *Context
	live   *liveGraph
	clock  PlaybackClock
	mutes  []bool
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:       slog.Default(),
		blockSize: DefaultBlockSize,
	}
	for _, o := range opts {
		o.apply(e)
	}
	if e.registry == nil {
		e.registry = DefaultRegistry()
	}
	return e
}

// LoadAudioFile decodes a complete file of any registered container and
// makes it the current recording. It returns the duration in seconds. On
// failure the engine keeps its previous recording and state.
func (e *Engine) LoadAudioFile(data []byte) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateDisposed {
		return 0, ErrDisposed
	}

	buf, err := e.registry.DecodeBytes(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return e.loadLocked(buf)
}

// LoadBuffer makes an already decoded recording current. The engine takes
// ownership; b must not be modified afterwards.
func (e *Engine) LoadBuffer(b *audio.Buffer) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateDisposed {
		return 0, ErrDisposed
	}
	if b == nil || b.Channels() == 0 {
		return 0, fmt.Errorf("%w: %w", ErrDecode, audio.ErrEmptyBuffer)
	}

	return e.loadLocked(b)
}

func (e *Engine) loadLocked(buf *audio.Buffer) (float64, error) {
	if e.sampleRate > 0 {
		converted, err := audio.ConvertRate(buf, e.sampleRate)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		buf = converted
	}

	e.teardownLocked()
	e.clock.Stop()

	e.buffer = buf
	e.vocal = nil
	e.mutes = make([]bool, buf.Channels())
	for i := range e.mutes {
		e.mutes[i] = true
	}

	if e.proc == nil || e.proc.SampleRate() != buf.SampleRate() || e.proc.Channels() != buf.Channels() {
		if e.proc != nil {
			_ = e.proc.Close()
		}
		e.proc = NewContext(buf.SampleRate(), buf.Channels(), e.blockSize)
	}

	e.state = StateLoaded
	e.log.Debug("load",
		"channels", buf.Channels(),
		"sample_rate", buf.SampleRate(),
		"duration", buf.Duration())

	return buf.Duration(), nil
}

// Play builds a fresh graph for settings and starts it from the current
// position: the paused offset, or where a live graph had got to. A live
// graph is torn down first.
func (e *Engine) Play(settings EffectSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateLoaded && e.state != StateLive {
		return
	}

	if e.state == StateLive {
		e.clock.Pause(e.proc.Now())
		e.teardownLocked()
	}

	offset := e.clock.Offset()
	rate := e.buffer.SampleRate()

	lg, err := assemble(assembly{
		buffer:     e.buffer,
		vocal:      e.vocalLocked,
		impulse:    e.impulseLocked(),
		settings:   settings,
		mutes:      e.mutes,
		startFrame: int(math.Round(offset * float64(rate))),
		blockSize:  e.blockSize,
		log:        e.log,
	})
	if err != nil {
		e.state = StateLoaded
		e.log.Error("play: build graph", "error", err)
		return
	}

	attached := e.proc.Attach(lg.graph)
	e.clock.Start(float64(attached) / float64(rate))
	e.live = lg
	e.state = StateLive

	e.log.Debug("play",
		"offset", offset,
		"nodes", lg.graph.Len(),
		"male_voices", lg.voices(MaleChorus),
		"female_voices", lg.voices(FemaleChorus))
}

// Pause records the current position and tears the graph down.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateLive {
		return
	}

	e.clock.Pause(e.proc.Now())
	e.teardownLocked()
	e.state = StateLoaded

	e.log.Debug("pause", "offset", e.clock.Offset())
}

// Stop tears down any live graph and rewinds to the start.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateDisposed {
		return
	}

	e.teardownLocked()
	e.clock.Stop()
	if e.state == StateLive {
		e.state = StateLoaded
	}

	e.log.Debug("stop")
}

// Dispose releases the graph, the context and the recording. Every later
// call is a no-op and loads fail with ErrDisposed.
func (e *Engine) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateDisposed {
		return
	}

	e.teardownLocked()
	if e.proc != nil {
		_ = e.proc.Close()
		e.proc = nil
	}
	e.clock.Stop()
	e.buffer = nil
	e.ir = nil
	e.mutes = nil
	e.state = StateDisposed

	e.log.Debug("dispose")
}

// UpdateEffects patches the live graph with settings without rebuilding
// it. Reverb and chorus parts that were off when the graph was built stay
// off until the next Play.
func (e *Engine) UpdateEffects(settings EffectSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateLive {
		return
	}
	e.live.update(settings)
}

// SetChannelState mutes or unmutes one channel of the recording. The state
// survives effect changes, pause and rebuilds until the next load.
func (e *Engine) SetChannelState(channel int, enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if channel < 0 || channel >= len(e.mutes) {
		return
	}

	e.mutes[channel] = enabled
	if e.live != nil {
		e.live.setMute(channel, enabled)
	}
}

// ChannelStates returns the enabled flag of every channel.
func (e *Engine) ChannelStates() []bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]bool(nil), e.mutes...)
}

// CurrentTime is the play position in seconds on the context's transport.
func (e *Engine) CurrentTime() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateLive {
		return e.clock.Offset()
	}
	return e.clock.Position(e.proc.Now())
}

// Duration of the loaded recording, 0 when nothing is loaded.
func (e *Engine) Duration() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.buffer == nil {
		return 0
	}
	return e.buffer.Duration()
}

// AudioBuffer returns the decoded recording, or nil.
func (e *Engine) AudioBuffer() *audio.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.buffer
}

// Context returns the processing context a host output should pull audio
// from. A load that changes the channel count or sample rate replaces it.
func (e *Engine) Context() *Context {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.proc
}

// State is the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Ended reports whether the live graph has played the recording to its end.
// The graph keeps rendering the reverb and chorus tails until stopped.
func (e *Engine) Ended() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.live != nil && e.live.main.Ended()
}

// teardownLocked detaches and dismantles the live graph, if any, and drops
// the vocal cache with it.
func (e *Engine) teardownLocked() {
	if e.live == nil {
		return
	}

	e.proc.Detach()
	stopped := e.live.teardown()
	e.live = nil
	e.vocal = nil

	e.log.Debug("teardown", "nodes", stopped)
}

func (e *Engine) vocalLocked() *audio.Buffer {
	if e.vocal == nil {
		e.vocal = dsp.IsolateVocals(e.buffer)
	}
	return e.vocal
}

// impulseLocked returns the session impulse, synthesizing it on first use
// or when the recording's sample rate changed.
func (e *Engine) impulseLocked() impulse {
	rate := e.buffer.SampleRate()
	if e.ir == nil || e.irRate != rate {
		ir := newImpulse(dsp.SynthesizeImpulse(rate, e.rng))
		e.ir = &ir
		e.irRate = rate
	}
	return *e.ir
}
