// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"log/slog"
	"math/rand/v2"

	"github.com/ik5/concertfx/audio"
)

// DefaultBlockSize is the number of frames rendered per block.
const DefaultBlockSize = 512

// Option configures an Engine.
type Option interface {
	apply(*Engine)
}

type loggerOption struct{ log *slog.Logger }

func (o loggerOption) apply(e *Engine) {
	if o.log != nil {
		e.log = o.log
	}
}

// WithLogger sets the logger lifecycle events are written to. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return loggerOption{log: l}
}

type blockSizeOption int

func (o blockSizeOption) apply(e *Engine) {
	if o > 0 {
		e.blockSize = int(o)
	}
}

// WithBlockSize sets the render block size in frames. Non-positive values
// keep DefaultBlockSize.
func WithBlockSize(frames int) Option {
	return blockSizeOption(frames)
}

type sampleRateOption int

func (o sampleRateOption) apply(e *Engine) {
	if o > 0 {
		e.sampleRate = int(o)
	}
}

// WithSampleRate makes the engine resample every loaded recording to rate,
// the rate of the host output it feeds. By default recordings keep their own
// rate.
func WithSampleRate(rate int) Option {
	return sampleRateOption(rate)
}

type randOption struct{ rng *rand.Rand }

func (o randOption) apply(e *Engine) {
	if o.rng != nil {
		e.rng = o.rng
	}
}

// WithRand sets the random source the reverb impulse is drawn from.
func WithRand(rng *rand.Rand) Option {
	return randOption{rng: rng}
}

type registryOption struct{ reg *audio.Registry }

func (o registryOption) apply(e *Engine) {
	if o.reg != nil {
		e.registry = o.reg
	}
}

// WithRegistry sets the decoders LoadAudioFile sniffs. Defaults to
// DefaultRegistry().
func WithRegistry(r *audio.Registry) Option {
	return registryOption{reg: r}
}
