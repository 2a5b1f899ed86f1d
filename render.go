// SPDX-License-Identifier: EPL-2.0

package concertfx

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/concertfx/audio"
	"github.com/ik5/concertfx/engine"
)

// Decode reads a complete file of any bundled container into memory.
func Decode(r io.Reader) (*audio.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	buf, err := engine.DefaultRegistry().DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", engine.ErrDecode, err)
	}
	return buf, nil
}

// RenderLive is a one-shot export: it decodes the file in r, renders it
// through the concert effect chain with settings and returns a 16-bit PCM
// WAV file.
//
// Example:
//
//	in, _ := os.Open("song.mp3")
//	wavData, err := concertfx.RenderLive(in, engine.EffectSettings{
//		ReverbAmount: 0.4,
//		MaleChorus:   0.3,
//	})
func RenderLive(r io.Reader, settings engine.EffectSettings, opts ...engine.Option) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	e := engine.New(opts...)
	defer e.Dispose()

	if _, err := e.LoadAudioFile(data); err != nil {
		return nil, err
	}
	return e.ExportProcessedAudio(context.Background(), settings)
}
