// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	err        error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, nil
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func newTestSource(m *mockAiffReader, bitDepth int) *source {
	scale, _ := fullScale(bitDepth)
	return &source{dec: m, sampleRate: m.sampleRate, channels: m.channels, scale: scale}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(nil)))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_Probe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   bool
	}{
		{"FORM\x00\x00\x10\x00AIFF", true},
		{"FORM\x00\x00\x10\x00AIFC", true},
		{"FORM\x00\x00\x10\x00ILBM", false},
		{"RIFF\x00\x00\x10\x00WAVE", false},
		{"FORM", false},
	}

	for _, tt := range tests {
		if got := (Decoder{}).Probe([]byte(tt.header)); got != tt.want {
			t.Errorf("Probe(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{
		sampleRate: 44100,
		channels:   2,
		samples:    []int{0, 16384, -16384, -32768, 32767, 0},
	}, 16)

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Errorf("second ReadSamples() = (%d, %v), want (2, io.EOF)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("third ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{sampleRate: 8000, channels: 1, samples: make([]int, 10)}, 16)

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{sampleRate: 8000, channels: 1, err: io.ErrUnexpectedEOF}, 16)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		sample   int
		want     float32
	}{
		{8, 64, 0.5},
		{16, -32768, -1},
		{24, 4194304, 0.5},
		{32, -1073741824, -0.5},
	}

	for _, tt := range tests {
		src := newTestSource(&mockAiffReader{sampleRate: 8000, channels: 1, samples: []int{tt.sample}}, tt.bitDepth)

		dst := make([]float32, 1)
		if _, err := src.ReadSamples(dst); err != nil {
			t.Fatalf("%d-bit ReadSamples() error = %v", tt.bitDepth, err)
		}
		if dst[0] != tt.want {
			t.Errorf("%d-bit sample %d = %v, want %v", tt.bitDepth, tt.sample, dst[0], tt.want)
		}
	}

	if _, ok := fullScale(12); ok {
		t.Error("fullScale(12) ok = true, want false")
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{sampleRate: 8000, channels: 1, samples: make([]int, 10000)}, 16)
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() before read = %d, want 4096", src.BufSize())
	}

	_, _ = src.ReadSamples(make([]float32, 8192))
	if src.BufSize() < 8192 {
		t.Errorf("BufSize() after read = %d, want >= 8192", src.BufSize())
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotAiffFile, ErrUnsupportedBitDepth, ErrUnsupportedAiffLayout}
	for i := range errs {
		for j := i + 1; j < len(errs); j++ {
			if errors.Is(errs[i], errs[j]) {
				t.Errorf("%v matches %v", errs[i], errs[j])
			}
		}
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	m := &mockAiffReader{sampleRate: 44100, channels: 2, samples: make([]int, 44100*2)}
	src := newTestSource(m, 16)
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		m.offset = 0
		src.eof = false
		_, _ = src.ReadSamples(dst)
	}
}
