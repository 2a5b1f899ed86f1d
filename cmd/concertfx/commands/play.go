// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/concertfx/speaker"
	"github.com/ik5/concertfx/utils"
)

// pollInterval is how often the play loop checks the position.
const pollInterval = 50 * time.Millisecond

var (
	playVolume   float64
	playChannels int
	playRate     int
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play the processed recording on the sound device",
	Long: `Play the recording through the effect chain in real time. Playback stops
at the end of the recording or on Ctrl-C.
`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Float64Var(&playVolume, "volume", 0, "output volume in dB, 0 is full scale")
	playCmd.Flags().IntVar(&playChannels, "channels", 2, "device channel count")
	playCmd.Flags().IntVar(&playRate, "device-rate", envInt("CONCERTFX_DEVICE_RATE", 0), "device sample rate, 0 uses the recording's (env CONCERTFX_DEVICE_RATE)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd.Flags())
	if err != nil {
		return err
	}

	e, err := loadFile(args[0])
	if err != nil {
		return err
	}
	defer e.Dispose()

	if playChannels < 1 {
		return fmt.Errorf("--channels must be at least 1, got %d", playChannels)
	}

	out, err := speaker.Open(e.Context(), playChannels, playRate)
	if err != nil {
		return err
	}
	defer out.Close()
	out.SetVolume(utils.Clamp(utils.DBToGain(playVolume), 0, 1))

	e.Play(settings)
	slog.Info("playing", "file", args[0], "duration", e.Duration())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-interrupt:
			e.Stop()
			return nil
		case <-cmd.Context().Done():
			e.Stop()
			return cmd.Context().Err()
		case <-ticker.C:
			if err := out.Err(); err != nil {
				return fmt.Errorf("audio output: %w", err)
			}
			// the position is not clamped; stopping at the end is up to us
			if e.CurrentTime() >= e.Duration() {
				e.Stop()
				return nil
			}
		}
	}
}
