// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/concertfx/audio"
)

func TestWriteWAV16_CorrectHeader(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 44100, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+8 {
		t.Fatalf("WAV file size = %d, want 52", len(data))
	}

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), 36 + 8},
		{"fmt size", binary.LittleEndian.Uint32(data[16:20]), 16},
		{"format", uint32(binary.LittleEndian.Uint16(data[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), 44100 * 4},
		{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), 4},
		{"bits", uint32(binary.LittleEndian.Uint16(data[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), 8},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	for _, marker := range []struct {
		at   int
		want string
	}{{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"}} {
		if got := string(data[marker.at : marker.at+4]); got != marker.want {
			t.Errorf("marker at %d = %q, want %q", marker.at, got, marker.want)
		}
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, 1, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}
	if buf.Len() != 44 {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_RejectsPartialFrame(t *testing.T) {
	t.Parallel()

	err := WriteWAV16(new(bytes.Buffer), 8000, 2, []int16{1, 2, 3})
	if !errors.Is(err, ErrSampleCount) {
		t.Errorf("WriteWAV16() error = %v, want ErrSampleCount", err)
	}
	err = WriteWAV16(new(bytes.Buffer), 8000, 0, nil)
	if !errors.Is(err, ErrChannelCount) {
		t.Errorf("WriteWAV16() error = %v, want ErrChannelCount", err)
	}
}

func TestWriteWAV16_LargeFile(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i)
	}
	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 8000, 1, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	for _, i := range []int{0, 8191, 8192, 19999} {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2:]))
		if got != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, got, samples[i])
		}
	}
}

func TestEncodeBuffer_InterleavesAndQuantises(t *testing.T) {
	t.Parallel()

	b, _ := audio.NewBufferFromChannels(22050, [][]float32{
		{0, 0.5, 1.5},
		{-1, -0.25, -2},
	})

	buf := new(bytes.Buffer)
	if err := EncodeBuffer(buf, b); err != nil {
		t.Fatalf("EncodeBuffer() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+12 {
		t.Fatalf("size = %d, want 56", len(data))
	}

	// frame-major, clamped, x*32767 truncated
	want := []int16{0, -32767, 16383, -8191, 32767, -32767}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2:]))
		if got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}
}

func TestEncodeBuffer_RoundTrip(t *testing.T) {
	t.Parallel()

	b := audio.NewBuffer(8000, 2, 1000)
	for i := range 1000 {
		b.Channel(0)[i] = float32(i%200)/200 - 0.5
		b.Channel(1)[i] = 0.25
	}

	buf := new(bytes.Buffer)
	if err := EncodeBuffer(buf, b); err != nil {
		t.Fatalf("EncodeBuffer() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := audio.Drain(src)
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	if got.Len() != 1000 || got.Channels() != 2 {
		t.Fatalf("round trip shape = %dch %d frames", got.Channels(), got.Len())
	}
	for c := range 2 {
		for i := range 1000 {
			diff := got.Channel(c)[i] - b.Channel(c)[i]
			if diff > 2.0/32768 || diff < -2.0/32768 {
				t.Fatalf("ch %d frame %d = %v, want ≈%v", c, i, got.Channel(c)[i], b.Channel(c)[i])
			}
		}
	}
}
