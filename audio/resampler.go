// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/concertfx/utils"
)

// Resampler reads src at a fractional step using cubic interpolation.
// Works on interleaved samples; preserves channel count.
//
// Built with NewResampler it converts between sample rates and applies a
// basic anti-aliasing filter when downsampling. Built with NewPlaybackRate it
// behaves like a tape played faster or slower: the reported sample rate stays
// the source's, pitch and tempo change together.
type Resampler struct {
	src      Source
	outRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// Ring buffer holding 4 frames for cubic interpolation
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames [4][]float32
	valid  [4]bool
	primed bool

	// Fractional position between frames[1] and frames[2]
	pos float64

	srcBuf []float32
	eof    bool

	// One-pole low-pass state for anti-aliasing (rate conversion only)
	filterState []float32
	useFilter   bool
	filterAlpha float32
}

// NewResampler converts src to dstRate.
func NewResampler(src Source, dstRate int) *Resampler {
	ratio := float64(src.SampleRate()) / float64(dstRate)
	r := newResampler(src, ratio, dstRate)

	// Cutoff near the Nyquist frequency of the destination rate
	if ratio > 1.0 {
		r.useFilter = true
		r.filterAlpha = 0.5
	}

	return r
}

// NewPlaybackRate replays src rate times faster than normal (rate 0.5 is half
// speed an octave down). Non-positive rates are treated as 1.
func NewPlaybackRate(src Source, rate float64) *Resampler {
	if rate <= 0 {
		rate = 1
	}
	return newResampler(src, rate, src.SampleRate())
}

func newResampler(src Source, ratio float64, outRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:         src,
		outRate:     outRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.outRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

// Ratio is the number of source frames consumed per output frame.
func (r *Resampler) Ratio() float64 { return r.ratio }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads the next source frame into frames[slot].
func (r *Resampler) pull(slot int) error {
	r.valid[slot] = false
	if r.eof {
		return nil
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	if n == r.channels {
		copy(r.frames[slot], r.srcBuf)
		r.valid[slot] = true

		if r.useFilter {
			if !r.primed {
				// start from the first sample to avoid a warm-up transient
				copy(r.filterState, r.srcBuf)
			}
			for c := range r.channels {
				// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
				r.frames[slot][c] = r.filterAlpha*r.frames[slot][c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = r.frames[slot][c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime loads the first frame into frames[1] and duplicates it as t-1.
func (r *Resampler) prime() error {
	if err := r.pull(1); err != nil {
		return err
	}
	r.primed = true

	copy(r.frames[0], r.frames[1])
	r.valid[0] = r.valid[1]

	if err := r.pull(2); err != nil {
		return err
	}
	return r.pull(3)
}

// advance shifts the ring by one frame: [0,1,2,3] -> [1,2,3,next]
func (r *Resampler) advance() error {
	r.frames[0], r.frames[1], r.frames[2], r.frames[3] = r.frames[1], r.frames[2], r.frames[3], r.frames[0]
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]
	return r.pull(3)
}

// ReadSamples produces interleaved output samples.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] {
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]

		for c := range r.channels {
			y0 := r.frames[0][c]
			y1 := r.frames[1][c]
			y2 := y1
			if r.valid[2] {
				y2 = r.frames[2][c]
			}
			y3 := y2
			if r.valid[3] {
				y3 = r.frames[3][c]
			}

			out[c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
