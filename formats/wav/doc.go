// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files.
//
// Decoding goes through github.com/go-audio/wav and accepts integer PCM at
// 16, 24 or 32 bits (format tag 1 or WAVE_FORMAT_EXTENSIBLE) with any
// channel count. Chunks other than "fmt " and "data" are skipped. Samples
// are scaled to float32 in [-1.0, 1.0) by the negative full scale of the
// bit depth.
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.Drain(src)
//
// Encoding always produces the canonical 44-byte header followed by
// interleaved little-endian 16-bit PCM. WriteWAV16 takes ready-made int16
// samples; EncodeBuffer quantises an audio.Buffer by clamping each sample to
// [-1, 1], multiplying by 32767 and truncating toward zero.
//
//	var out bytes.Buffer
//	if err := wav.EncodeBuffer(&out, rendered); err != nil {
//	    return err
//	}
//
// Decoder implements audio.Prober so a Registry can sniff WAV data.
package wav
