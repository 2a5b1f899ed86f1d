// SPDX-License-Identifier: EPL-2.0

// Package engine turns a decoded recording into a "live concert" rendition.
//
// An Engine owns one recording and drives a signal graph built from it:
// channel mutes, a low-shelf and a peaking filter, a convolution hall reverb
// mixed against the dry signal, and two optional backing choirs of six
// detuned, delayed voices each. Every Play builds a new graph and every
// Pause, Stop or rebuild tears the previous one down; effect changes while
// playing patch the running graph in place.
//
// Audio is pulled, never pushed. A host output reads interleaved blocks from
// Engine.Context(), and the context's rendered-frame count is the transport
// clock the play position is measured against:
//
//	e := engine.New()
//	if _, err := e.LoadAudioFile(data); err != nil {
//		return err
//	}
//	e.Play(engine.EffectSettings{ReverbAmount: 0.4, MaleChorus: 0.3})
//	player := speaker.NewPlayer(e.Context())
//
// ExportProcessedAudio renders the whole recording through an independent
// copy of the graph and returns a 16-bit PCM WAV file.
package engine
