// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer is a fully decoded multi-channel recording held as planar float32
// samples. Once handed out by a decoder or an effect it is treated as
// read-only, so it can be shared between playback, offline rendering and
// display code without copying.
type Buffer struct {
	sampleRate int
	data       [][]float32
}

// NewBuffer allocates a silent buffer of the given shape.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{sampleRate: sampleRate, data: data}
}

// NewBufferFromChannels wraps planar channel data. The slices are not copied.
func NewBufferFromChannels(sampleRate int, channels [][]float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidRate
	}
	if len(channels) == 0 {
		return nil, ErrEmptyBuffer
	}
	for c := 1; c < len(channels); c++ {
		if len(channels[c]) != len(channels[0]) {
			return nil, fmt.Errorf("channel %d: %w", c, ErrChannelLength)
		}
	}

	return &Buffer{sampleRate: sampleRate, data: channels}, nil
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return len(b.data) }

// Len is the number of frames per channel.
func (b *Buffer) Len() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	if b.sampleRate == 0 {
		return 0
	}
	return float64(b.Len()) / float64(b.sampleRate)
}

// Channel returns the samples of channel c. Callers must not modify them
// unless they own a buffer they have just allocated.
func (b *Buffer) Channel(c int) []float32 { return b.data[c] }

// Drain reads src to the end and deinterleaves it into a Buffer.
func Drain(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrEmptyBuffer
	}
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	data := make([][]float32, channels)
	buf := make([]float32, size)
	ch := 0

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			data[ch] = append(data[ch], buf[i])
			ch++
			if ch == channels {
				ch = 0
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// guard against sources that never report EOF
			break
		}
	}

	// A trailing partial frame is dropped so every channel has equal length.
	frames := len(data[channels-1])
	for c := range data {
		data[c] = data[c][:frames]
	}

	return &Buffer{sampleRate: src.SampleRate(), data: data}, nil
}

// BufferReader streams a Buffer as interleaved samples, starting at a frame
// offset.
type BufferReader struct {
	buf *Buffer
	pos int
}

// NewBufferReader starts reading b at frame offset. Offsets past the end
// produce an immediately exhausted reader.
func NewBufferReader(b *Buffer, offset int) *BufferReader {
	if offset < 0 {
		offset = 0
	}
	return &BufferReader{buf: b, pos: offset}
}

func (r *BufferReader) SampleRate() int { return r.buf.SampleRate() }
func (r *BufferReader) Channels() int   { return r.buf.Channels() }
func (r *BufferReader) BufSize() int    { return 4096 }
func (r *BufferReader) Close() error    { return nil }

// Position is the next frame to be read.
func (r *BufferReader) Position() int { return r.pos }

func (r *BufferReader) ReadSamples(dst []float32) (int, error) {
	channels := r.buf.Channels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := r.buf.Len() - r.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = r.buf.data[c][r.pos+f]
		}
	}
	r.pos += frames

	if r.pos >= r.buf.Len() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}
