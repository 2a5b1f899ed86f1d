// SPDX-License-Identifier: EPL-2.0

// Package speaker binds an audio.Source, usually an engine.Context, to the
// system's sound device through github.com/hajimehoshi/oto/v2. The device
// pulls blocks from the source in real time; nothing here keeps its own
// clock.
package speaker
