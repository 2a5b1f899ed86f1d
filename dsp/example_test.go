// SPDX-License-Identifier: EPL-2.0

package dsp_test

import (
	"fmt"
	"math"

	"github.com/ik5/concertfx/dsp"
)

func ExampleLowShelf() {
	c := dsp.LowShelf(200, 6, dsp.ShelfQ, 44100)
	fmt.Printf("%.1f dB at 20 Hz\n", c.MagnitudeDB(20, 44100))
	fmt.Println("flat at 10 kHz:", math.Abs(c.MagnitudeDB(10000, 44100)) < 0.05)
	// Output:
	// 6.0 dB at 20 Hz
	// flat at 10 kHz: true
}
