// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"
	"sync/atomic"
)

// Param is a float64 that one goroutine writes while the render goroutine
// reads it at block boundaries.
type Param struct {
	bits atomic.Uint64
}

// NewParam returns a Param holding v.
func NewParam(v float64) *Param {
	p := &Param{}
	p.Store(v)
	return p
}

func (p *Param) Load() float64 {
	return math.Float64frombits(p.bits.Load())
}

func (p *Param) Store(v float64) {
	p.bits.Store(math.Float64bits(v))
}
