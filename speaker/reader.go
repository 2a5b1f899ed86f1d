// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/concertfx/audio"
)

const bytesPerSample = 4

// Reader exposes an audio.Source as a stream of interleaved float32
// little-endian bytes, the layout oto.FormatFloat32LE expects.
type Reader struct {
	src     audio.Source
	samples []float32
	buf     []byte
	pending []byte
	err     error
}

func NewReader(src audio.Source) *Reader {
	return &Reader{src: src}
}

// Read fills p with as many whole frames as fit, keeping the bytes of a
// frame that does not fit for the next call.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(r.pending) > 0 {
		n := copy(p, r.pending)
		r.pending = r.pending[n:]
		return n, nil
	}
	if r.err != nil {
		return 0, r.err
	}

	channels := r.src.Channels()
	frames := max(1, len(p)/(bytesPerSample*channels))
	want := frames * channels
	if cap(r.samples) < want {
		r.samples = make([]float32, want)
		r.buf = make([]byte, want*bytesPerSample)
	}

	n, err := r.src.ReadSamples(r.samples[:want])
	if err != nil {
		r.err = err
	}

	out := r.buf[:n*bytesPerSample]
	for i, v := range r.samples[:n] {
		binary.LittleEndian.PutUint32(out[i*bytesPerSample:], math.Float32bits(v))
	}

	copied := copy(p, out)
	r.pending = out[copied:]

	if copied == 0 {
		if r.err == nil {
			return 0, io.ErrNoProgress
		}
		return 0, r.err
	}
	return copied, nil
}
