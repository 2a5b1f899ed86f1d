// SPDX-License-Identifier: EPL-2.0

// Command concertfx renders recordings as a "live concert".
//
// Usage:
//
//	concertfx [flags] <command> <file>
//
// Commands:
//
//	info    - show the container and shape of a recording
//	render  - export the processed recording to a WAV file
//	play    - play the processed recording on the sound device
//
// Effect settings come from a YAML or JSON preset (--preset) and the effect
// flags, which override the preset field by field.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/concertfx/cmd/concertfx/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
