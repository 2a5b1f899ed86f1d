// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files through
// github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - Uncompressed AIFF
//   - Signed PCM at 8, 16, 24 or 32 bits
//   - Any channel count and sample rate
//
// # Decoding
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.Drain(src)
//
// Samples are scaled to float32 in [-1.0, 1.0) by the negative full scale
// of the file's bit depth. go-audio needs an io.ReadSeeker, so other
// readers are buffered in memory first.
//
// Decoder implements audio.Prober for "FORM" containers of type AIFF or
// AIFC. Compressed AIFC payloads are rejected by go-audio during decode.
package aiff
