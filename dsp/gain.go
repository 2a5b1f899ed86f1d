// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Gain scales blocks of samples. When the target changes it ramps linearly
// from the previous value across one block so the step is not audible.
type Gain struct {
	current float64
	ramp    []float64
	primed  bool
}

// NewGain starts at v with no initial ramp.
func NewGain(v float64) *Gain {
	return &Gain{current: v, primed: true}
}

// Value is the gain reached at the end of the last processed block.
func (g *Gain) Value() float64 { return g.current }

// Plan fills the per-sample gain curve for the next n samples heading to
// target and returns it. The same curve can be applied to several channels
// of one block; Commit must be called once afterwards.
func (g *Gain) Plan(target float64, n int) []float64 {
	if cap(g.ramp) < n {
		g.ramp = make([]float64, n)
	}
	g.ramp = g.ramp[:n]

	start := g.current
	if !g.primed {
		start = target
	}

	if start == target || n == 0 {
		for i := range g.ramp {
			g.ramp[i] = target
		}
	} else {
		step := (target - start) / float64(n)
		for i := range g.ramp {
			g.ramp[i] = start + step*float64(i+1)
		}
	}

	return g.ramp
}

// Commit records that the planned target has been reached.
func (g *Gain) Commit(target float64) {
	g.current = target
	g.primed = true
}

// Apply multiplies buf by a previously planned curve.
func Apply(buf, curve []float64) {
	vecmath.MulBlockInPlace(buf, curve)
}

// Scale writes src*curve into dst.
func Scale(dst, src, curve []float64) {
	vecmath.MulBlock(dst, src, curve)
}
