// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// mockSource replays a generated Buffer. internal/audiotest has the same
// helpers for other packages but imports this one.
type mockSource struct {
	*BufferReader
}

func newMockSource(sampleRate, channels, frames int, waveform func(sample, channel int) float32) *mockSource {
	b := NewBuffer(sampleRate, channels, frames)
	for c := range channels {
		data := b.Channel(c)
		for i := range data {
			data[i] = waveform(i, c)
		}
	}
	return &mockSource{BufferReader: NewBufferReader(b, 0)}
}

func newSilentSource(sampleRate, channels, frames int) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

func newSineSource(sampleRate, channels, frames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(sample, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(sample) / float64(sampleRate)))
	})
}

func newConstantSource(sampleRate, channels, frames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// Reset rewinds to the first frame so benchmarks can reuse a source.
func (m *mockSource) Reset() { m.pos = 0 }
