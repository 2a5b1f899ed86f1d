// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"fmt"

	"github.com/hajimehoshi/oto/v2"

	"github.com/ik5/concertfx/audio"
)

// Output plays one audio.Source on the default sound device.
type Output struct {
	ctx    *oto.Context
	player oto.Player
}

// Open starts pulling src as soon as the device is ready, mixed down or up
// to channels output channels. A rate above zero that differs from the
// source's opens the device at that rate and resamples on the fly; 0 keeps
// the source rate. oto allows one device context per process, so a program
// opens one Output and keeps it.
func Open(src audio.Source, channels, rate int) (*Output, error) {
	dev := deviceSource(src, channels, rate)

	ctx, ready, err := oto.NewContext(dev.SampleRate(), channels, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(NewReader(dev))
	player.Play()

	return &Output{ctx: ctx, player: player}, nil
}

// deviceSource fits src to the device layout.
func deviceSource(src audio.Source, channels, rate int) audio.Source {
	if rate > 0 && rate != src.SampleRate() {
		src = audio.NewResampler(src, rate)
	}
	if channels == 1 {
		return audio.NewMonoMixer(src)
	}
	return audio.NewChannelMixer(src, channels)
}

// SetVolume sets the device volume, 0 to 1.
func (o *Output) SetVolume(v float64) { o.player.SetVolume(v) }

// IsPlaying is false once the source has ended or failed.
func (o *Output) IsPlaying() bool { return o.player.IsPlaying() }

// Err is the error the source failed with, if any.
func (o *Output) Err() error { return o.player.Err() }

// Close stops playback and suspends the device.
func (o *Output) Close() error {
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("close player: %w", err)
	}
	if err := o.ctx.Suspend(); err != nil {
		return fmt.Errorf("suspend audio device: %w", err)
	}
	return nil
}
