// SPDX-License-Identifier: EPL-2.0

package concertfx_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ik5/concertfx"
	"github.com/ik5/concertfx/engine"
	"github.com/ik5/concertfx/formats/wav"
)

// Example_basicUsage renders a small WAV file with every effect switched on.
func Example_basicUsage() {
	samples := make([]int16, 2*8000) // 1 second of stereo silence
	in := new(bytes.Buffer)
	wav.WriteWAV16(in, 8000, 2, samples)

	out, err := concertfx.RenderLive(in, engine.EffectSettings{
		ReverbAmount: 0.5,
		BassBoost:    3,
		Presence:     2,
		MaleChorus:   0.5,
		FemaleChorus: 0.5,
	}, engine.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("%s, %d bytes\n", out[:4], len(out))
	// Output: RIFF, 32044 bytes
}

// Example_decode shows the container sniffing shared by every entry point.
func Example_decode() {
	in := new(bytes.Buffer)
	wav.WriteWAV16(in, 16000, 1, []int16{100, 200, 300, 400, 500})

	buf, err := concertfx.Decode(in)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Printf("%d channel, %d Hz, %d frames\n", buf.Channels(), buf.SampleRate(), buf.Len())
	// Output: 1 channel, 16000 Hz, 5 frames
}

// Example_errorHandling shows the error returned for data that is not audio.
func Example_errorHandling() {
	_, err := concertfx.RenderLive(bytes.NewReader([]byte("not audio at all")), engine.EffectSettings{})

	fmt.Println(errors.Is(err, engine.ErrDecode))
	// Output: true
}
