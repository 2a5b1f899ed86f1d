// SPDX-License-Identifier: EPL-2.0

package engine

import "fmt"

// NodeID addresses a node inside one Graph.
type NodeID int

// Processor renders one block for a graph node. pos is the graph-local frame
// index of the first sample in the block. in holds the sum of every upstream
// node's output, or nil when nothing is connected. Every channel of out has
// the graph's block size and must be fully written.
type Processor interface {
	Process(pos int64, in, out [][]float64)
	// Stop releases the node. It is called exactly once, by Teardown.
	Stop()
}

type slot struct {
	proc    Processor
	inputs  []NodeID
	in      [][]float64
	out     [][]float64
	stopped bool
}

// Graph is an arena of processing nodes. Nodes are rendered in the order
// they were added and a connection may only run from an earlier node to a
// later one, so the insertion order is always a valid schedule and cycles
// cannot be built.
//
// A Graph is not safe for concurrent use; Context serialises rendering with
// attach and detach.
type Graph struct {
	channels  int
	blockSize int

	slots  []*slot
	output NodeID
	pos    int64
	torn   bool
	silent [][]float64
}

// NewGraph returns an empty graph rendering blocks of blockSize frames.
func NewGraph(channels, blockSize int) *Graph {
	return &Graph{
		channels:  channels,
		blockSize: blockSize,
		output:    -1,
		silent:    makePlanar(channels, blockSize),
	}
}

func makePlanar(channels, frames int) [][]float64 {
	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, frames)
	}
	return out
}

func (g *Graph) Channels() int  { return g.channels }
func (g *Graph) BlockSize() int { return g.blockSize }

// Len is the number of nodes ever added.
func (g *Graph) Len() int { return len(g.slots) }

// Position is the number of frames rendered so far.
func (g *Graph) Position() int64 { return g.pos }

// Add places p in the arena and returns its handle.
func (g *Graph) Add(p Processor) NodeID {
	g.slots = append(g.slots, &slot{
		proc: p,
		out:  makePlanar(g.channels, g.blockSize),
	})
	return NodeID(len(g.slots) - 1)
}

// Connect feeds the output of from into to.
func (g *Graph) Connect(from, to NodeID) error {
	if g.torn {
		return ErrGraphTorn
	}
	if !g.valid(from) || !g.valid(to) || from >= to {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidNode, from, to)
	}

	s := g.slots[to]
	if s.in == nil {
		s.in = makePlanar(g.channels, g.blockSize)
	}
	s.inputs = append(s.inputs, from)
	return nil
}

// SetOutput selects the node whose output Process returns.
func (g *Graph) SetOutput(id NodeID) error {
	if !g.valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	g.output = id
	return nil
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.slots)
}

// Process renders one block and returns the output node's channels. The
// returned slices are reused by the next call. A torn down graph, or one
// without an output, renders silence.
func (g *Graph) Process() [][]float64 {
	if g.torn || g.output < 0 {
		g.pos += int64(g.blockSize)
		return g.silent
	}

	for _, s := range g.slots {
		var in [][]float64
		if len(s.inputs) > 0 {
			in = s.in
			for c := range in {
				copy(in[c], g.slots[s.inputs[0]].out[c])
			}
			for _, id := range s.inputs[1:] {
				src := g.slots[id].out
				for c := range in {
					dst := in[c]
					for i, v := range src[c] {
						dst[i] += v
					}
				}
			}
		}
		s.proc.Process(g.pos, in, s.out)
	}

	g.pos += int64(g.blockSize)
	return g.slots[g.output].out
}

// Teardown disconnects and stops every node. It is safe to call more than
// once; it returns how many nodes were stopped by this call.
func (g *Graph) Teardown() int {
	g.torn = true

	stopped := 0
	for _, s := range g.slots {
		s.inputs = nil
		if s.stopped {
			continue
		}
		s.stopped = true
		s.proc.Stop()
		stopped++
	}

	return stopped
}

// Torn reports whether Teardown has run.
func (g *Graph) Torn() bool { return g.torn }
