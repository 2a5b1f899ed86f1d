// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests: generated
// recordings, sources replaying them and tiny WAV files.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/ik5/concertfx/audio"
)

// Waveform yields the value of one sample of one channel.
type Waveform func(sample, channel int) float32

// Sine returns a waveform of the given frequency and amplitude, identical on
// every channel.
func Sine(sampleRate int, frequency, amplitude float64) Waveform {
	return func(sample, _ int) float32 {
		return float32(amplitude * math.Sin(2*math.Pi*frequency*float64(sample)/float64(sampleRate)))
	}
}

// Buffer renders frames of waveform into a planar recording.
func Buffer(sampleRate, channels, frames int, waveform Waveform) *audio.Buffer {
	b := audio.NewBuffer(sampleRate, channels, frames)
	for c := range channels {
		data := b.Channel(c)
		for i := range data {
			data[i] = waveform(i, c)
		}
	}
	return b
}

// MockSource streams a generated recording through audio.Source.
type MockSource struct {
	*audio.BufferReader
}

func NewMockSource(sampleRate, channels, frames int, waveform Waveform) *MockSource {
	return &MockSource{BufferReader: audio.NewBufferReader(Buffer(sampleRate, channels, frames, waveform), 0)}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, Sine(sampleRate, frequency, 1))
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

type wavHeader struct {
	RIFF          [4]byte
	RIFFSize      uint32
	WAVE          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

// WAV16 builds a canonical 44-byte-header PCM 16-bit WAV file from
// interleaved samples.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	dataSize := uint32(len(samples) * 2)
	hdr := wavHeader{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		RIFFSize:      36 + dataSize,
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		Format:        1,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * channels * 2),
		BlockAlign:    uint16(channels * 2),
		BitsPerSample: 16,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, hdr)
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}
