// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III files through
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo float32 samples in
// [-1.0, 1.0] at the stream's native sample rate. Mono files come out with
// both channels equal.
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.Drain(src)
//
// Decoder implements audio.Prober so an audio.Registry can sniff MP3 data
// that starts with an ID3v2 tag or a raw frame header.
//
// Encoding is not supported.
package mp3
