// SPDX-License-Identifier: EPL-2.0

// Package concertfx turns recordings into "live concert" renditions: a
// synthetic hall reverb, a bass and presence tone stage, and male and female
// backing choirs synthesized from the recording itself.
//
// # Supported Formats
//
// Input is sniffed from the first bytes of the file:
//   - WAV (PCM 16, 24 or 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// Output is always a 16-bit PCM WAV file.
//
// # Quick Start
//
// The simplest way to process a file is RenderLive:
//
//	in, _ := os.Open("song.wav")
//	wavData, err := concertfx.RenderLive(in, engine.EffectSettings{
//		ReverbAmount: 0.5,
//		BassBoost:    3,
//		FemaleChorus: 0.4,
//	})
//
// # Live Playback
//
// For playback with effects that can be changed while playing, use the
// engine subpackage and bind its context to a sound device:
//
//	e := engine.New()
//	e.LoadAudioFile(data)
//	out, _ := speaker.Open(e.Context(), 2, 0)
//	defer out.Close()
//
//	e.Play(engine.EffectSettings{ReverbAmount: 0.3})
//	e.UpdateEffects(engine.EffectSettings{ReverbAmount: 0.3, Presence: 4})
//	e.SetChannelState(1, false)
//
// # Building Blocks
//
//   - audio: Source and Buffer types, decoder registry, rate conversion
//   - dsp: impulse synthesis, vocal isolation, biquads, FFT convolution
//   - engine: signal graph, lifecycle, playback clock, offline export
//   - speaker: real-time output through oto
//
// See the individual subpackages for more detailed documentation.
package concertfx
