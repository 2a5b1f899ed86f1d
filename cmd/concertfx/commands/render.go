// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Export the processed recording to a 16-bit WAV file",
	Long: `Render the whole recording offline through the effect chain and write
the result as a 16-bit PCM WAV file.

Examples:
  concertfx render song.wav -o song-live.wav --reverb 0.5 --bass 3
`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output WAV file (default: <input>-live.wav)")
}

func runRender(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd.Flags())
	if err != nil {
		return err
	}

	e, err := loadFile(args[0])
	if err != nil {
		return err
	}
	defer e.Dispose()

	data, err := e.ExportProcessedAudio(cmd.Context(), settings)
	if err != nil {
		return err
	}

	out := renderOutput
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "-live.wav"
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	slog.Info("rendered", "input", args[0], "output", out, "bytes", len(data))
	return nil
}
