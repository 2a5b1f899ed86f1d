// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	presetFile string
	verbose    bool
	blockSize  int
	sampleRate int
	seed       uint64

	// effect flags; only the ones set on the command line override the preset
	reverb, bass, presence, male, female float64
)

var rootCmd = &cobra.Command{
	Use:   "concertfx",
	Short: "Turn a recording into a live concert rendition",
	Long: `concertfx runs a recording through a hall reverb, a two band tone
stage and synthesized male and female backing choirs.

Examples:
  # Show what a file contains
  concertfx info song.wav

  # Export with a preset, overriding the reverb
  concertfx render song.mp3 -o live.wav --preset arena.yaml --reverb 0.6

  # Listen to it
  concertfx play song.ogg --male 0.4 --female 0.3
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command returns the root cobra command for mounting into a parent CLI.
func Command() *cobra.Command {
	return rootCmd
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&presetFile, "preset", "p", "", "effect settings file (YAML or JSON)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.IntVar(&blockSize, "block-size", envInt("CONCERTFX_BLOCK_SIZE", 512), "render block size in frames")
	flags.IntVar(&sampleRate, "sample-rate", envInt("CONCERTFX_SAMPLE_RATE", 0), "resample to this rate before processing (0 keeps the file rate)")
	flags.Uint64Var(&seed, "seed", 0, "seed for the reverb impulse (0 picks a random one)")

	flags.Float64Var(&reverb, "reverb", 0, "reverb amount, 0 to 1")
	flags.Float64Var(&bass, "bass", 0, "bass boost in dB, -12 to 12")
	flags.Float64Var(&presence, "presence", 0, "presence boost in dB, -12 to 12")
	flags.Float64Var(&male, "male", 0, "male chorus amount, 0 to 1")
	flags.Float64Var(&female, "female", 0, "female chorus amount, 0 to 1")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(playCmd)
}

func initLogging() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))
}
