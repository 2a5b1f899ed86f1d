// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/concertfx/engine"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show the container and shape of a recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	format, _, err := engine.DefaultRegistry().Detect(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	e := newEngine()
	defer e.Dispose()

	if _, err := e.LoadAudioFile(data); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	buf := e.AudioBuffer()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", args[0])
	fmt.Fprintf(out, "Format:      %s\n", format)
	fmt.Fprintf(out, "Channels:    %d\n", buf.Channels())
	fmt.Fprintf(out, "Sample rate: %d Hz\n", buf.SampleRate())
	fmt.Fprintf(out, "Frames:      %d\n", buf.Len())
	fmt.Fprintf(out, "Duration:    %.3f s\n", buf.Duration())

	return nil
}
