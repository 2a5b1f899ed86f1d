// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/ik5/concertfx/audio"
)

// Context is the processing context a graph renders in. Its transport clock
// is the number of frames it has rendered, so time only moves when a host
// pulls audio (real time) or an offline render runs.
//
// Context implements audio.Source: a host output binding reads interleaved
// float32 blocks through ReadSamples. With no graph attached it renders
// silence and the transport keeps running.
type Context struct {
	sampleRate int
	channels   int
	blockSize  int

	// mu is held for the whole of one block render and for attach/detach,
	// so a graph is never swapped out mid-block.
	mu    sync.Mutex
	graph *Graph
	block []float32
	// pending is the undelivered tail of block
	pending []float32
	closed  bool

	frames atomic.Int64
}

// NewContext creates a context rendering blockSize frames at a time.
func NewContext(sampleRate, channels, blockSize int) *Context {
	return &Context{
		sampleRate: sampleRate,
		channels:   channels,
		blockSize:  blockSize,
		block:      make([]float32, blockSize*channels),
	}
}

func (c *Context) SampleRate() int { return c.sampleRate }
func (c *Context) Channels() int   { return c.channels }
func (c *Context) BlockSize() int  { return c.blockSize }
func (c *Context) BufSize() int    { return c.blockSize * c.channels }

// Frames is the transport position in frames.
func (c *Context) Frames() int64 { return c.frames.Load() }

// Now is the transport position in seconds.
func (c *Context) Now() float64 {
	return float64(c.frames.Load()) / float64(c.sampleRate)
}

// Attach makes g the rendered graph, replacing any previous one, and returns
// the transport position at which g renders its first frame. Frames still
// pending from earlier blocks are dropped, so g is heard from the next read.
func (c *Context) Attach(g *Graph) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.graph = g
	c.pending = nil
	return c.frames.Load()
}

// Detach removes the current graph and returns it. Once Detach returns no
// block of that graph is being rendered, and the undelivered rest of its
// last block is dropped so nothing of it is heard afterwards.
func (c *Context) Detach() *Graph {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.graph
	c.graph = nil
	c.pending = nil
	return g
}

// renderLocked produces one block. c.mu must be held.
func (c *Context) renderLocked() [][]float64 {
	var out [][]float64
	if c.graph != nil {
		out = c.graph.Process()
	}
	c.frames.Add(int64(c.blockSize))
	return out
}

// ReadSamples renders as many blocks as needed to fill dst with interleaved
// frames. Samples left over from a block are kept for the next call.
func (c *Context) ReadSamples(dst []float32) (int, error) {
	if len(dst)%c.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, io.EOF
	}

	written := copy(dst, c.pending)
	c.pending = c.pending[written:]

	for written < len(dst) {
		out := c.renderLocked()

		for f := range c.blockSize {
			for ch := range c.channels {
				var v float64
				if out != nil {
					v = out[ch][f]
				}
				c.block[f*c.channels+ch] = float32(v)
			}
		}

		n := copy(dst[written:], c.block)
		written += n
		c.pending = c.block[n:]
	}

	return written, nil
}

// Render runs the attached graph for frames frames and collects the output
// as a planar buffer. It is the offline counterpart of ReadSamples and
// advances the same transport.
func (c *Context) Render(frames int) *audio.Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := audio.NewBuffer(c.sampleRate, c.channels, frames)
	for done := 0; done < frames; done += c.blockSize {
		out := c.renderLocked()
		if out == nil {
			continue
		}
		n := min(c.blockSize, frames-done)
		for ch := range c.channels {
			dst := result.Channel(ch)[done : done+n]
			for i := range dst {
				dst[i] = float32(out[ch][i])
			}
		}
	}

	return result
}

// Close detaches the graph and makes further reads return io.EOF.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.graph = nil
	c.closed = true
	c.pending = nil
	return nil
}
