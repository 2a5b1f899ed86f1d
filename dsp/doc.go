// SPDX-License-Identifier: EPL-2.0

// Package dsp holds the signal processing building blocks of the concert
// effect chain.
//
// Buffer-level transforms work on whole recordings:
//   - SynthesizeImpulse builds a stereo hall impulse from decaying noise
//   - IsolateVocals derives the vocal-forward signal fed to chorus voices
//
// LowShelf and Peak design the tone stage on github.com/cwbudde/algo-dsp and
// return Identity for a flat setting. Gain ramps between values across one
// block using github.com/cwbudde/algo-vecmath.
//
// Param carries a live value from a control goroutine to the render
// goroutine without locks.
package dsp
