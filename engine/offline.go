// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/ik5/concertfx/audio"
	"github.com/ik5/concertfx/dsp"
	"github.com/ik5/concertfx/formats/wav"
)

// ExportProcessedAudio renders the whole recording through a private copy
// of the effect graph and returns it as a 16-bit PCM WAV file. The export
// graph shares nothing with a live graph: it has its own impulse, filters,
// vocal signal and context. Current channel mutes are applied.
//
// ctx is only consulted before rendering starts; a render that has begun
// runs to completion.
func (e *Engine) ExportProcessedAudio(ctx context.Context, settings EffectSettings) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}

	e.mu.Lock()
	buffer := e.buffer
	if buffer == nil {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", ErrExport, ErrNoBuffer)
	}
	mutes := append([]bool(nil), e.mutes...)
	ir := newImpulse(dsp.SynthesizeImpulse(buffer.SampleRate(), e.rng))
	blockSize := e.blockSize
	e.mu.Unlock()

	out, err := renderOffline(e.log, buffer, settings, mutes, ir, blockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}

	var file bytes.Buffer
	if err := wav.EncodeBuffer(&file, out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}

	e.log.Debug("export",
		"frames", out.Len(),
		"channels", out.Channels(),
		"bytes", file.Len())

	return file.Bytes(), nil
}

// renderOffline plays buffer from the start through a new graph on a new
// context and collects exactly buffer.Len() frames.
func renderOffline(log *slog.Logger, buffer *audio.Buffer, settings EffectSettings, mutes []bool, ir impulse, blockSize int) (*audio.Buffer, error) {
	var vocal *audio.Buffer
	lg, err := assemble(assembly{
		buffer: buffer,
		vocal: func() *audio.Buffer {
			if vocal == nil {
				vocal = dsp.IsolateVocals(buffer)
			}
			return vocal
		},
		impulse:   ir,
		settings:  settings,
		mutes:     mutes,
		blockSize: blockSize,
		log:       log,
	})
	if err != nil {
		return nil, err
	}
	defer lg.teardown()

	proc := NewContext(buffer.SampleRate(), buffer.Channels(), blockSize)
	defer proc.Close()

	proc.Attach(lg.graph)
	return proc.Render(buffer.Len()), nil
}
