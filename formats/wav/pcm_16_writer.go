// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/concertfx/audio"
	"github.com/ik5/concertfx/utils"
)

const headerSize = 44

// WriteWAV16 writes a 16-bit PCM WAV at sampleRate. samples are interleaved
// int16 frames of the given channel count.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrChannelCount
	}
	if len(samples)%channels != 0 {
		return ErrSampleCount
	}

	if _, err := w.Write(header(sampleRate, channels, len(samples))); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write in chunks so large files don't need a second full-size copy
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodeBuffer writes b as an interleaved 16-bit PCM WAV. Every sample is
// clamped to [-1, 1], scaled by 32767 and truncated.
func EncodeBuffer(w io.Writer, b *audio.Buffer) error {
	channels := b.Channels()
	if channels == 0 {
		return ErrChannelCount
	}

	samples := make([]int16, b.Len()*channels)
	for c := range channels {
		for f, v := range b.Channel(c) {
			samples[f*channels+c] = utils.Float32ToInt16(v)
		}
	}

	return WriteWAV16(w, b.SampleRate(), channels, samples)
}

// header builds the canonical 44-byte RIFF/WAVE header for PCM16.
func header(sampleRate, channels, totalSamples int) []byte {
	numChannels := uint16(channels)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(totalSamples * 2)
	riffSize := 36 + dataSize

	h := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], riffSize)
	copy(h[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(h[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(h[22:24], numChannels)
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], byteRate)
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}
