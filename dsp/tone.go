// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
)

// ShelfQ gives a shelf slope of 1, the steepest slope without overshoot.
const ShelfQ = 1 / math.Sqrt2

// Identity passes the signal through unchanged.
var Identity = biquad.Coefficients{B0: 1}

// LowShelf designs an RBJ low shelf at freq Hz. A gain of exactly 0 dB, or
// a frequency the design rejects, yields Identity so a flat setting leaves
// samples bit for bit untouched.
func LowShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	if gainDB == 0 {
		return Identity
	}
	return orIdentity(design.LowShelf(freq, gainDB, q, sampleRate))
}

// Peak designs an RBJ peaking EQ centred on freq Hz, with the same Identity
// rules as LowShelf.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	if gainDB == 0 {
		return Identity
	}
	return orIdentity(design.Peak(freq, gainDB, q, sampleRate))
}

// design returns the zero value for out of range input
func orIdentity(c biquad.Coefficients) biquad.Coefficients {
	if c == (biquad.Coefficients{}) {
		return Identity
	}
	return c
}
