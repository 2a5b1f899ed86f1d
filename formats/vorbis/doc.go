// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// Samples are delivered as interleaved float32 values at the stream's own
// sample rate and channel count. ReadSamples only ever returns whole frames,
// so a dst whose length is not a multiple of Channels has its tail left
// untouched.
//
// Decoder implements audio.Prober and recognises the "OggS" capture pattern.
// Encoding is not supported.
package vorbis
