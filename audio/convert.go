// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	resampling "github.com/tphakala/go-audio-resampling"
)

// ConvertRate returns b resampled to rate with a polyphase (soxr style)
// filter, channel by channel. The result has round(Len*rate/SampleRate)
// frames. When the rates already match b itself is returned.
func ConvertRate(b *Buffer, rate int) (*Buffer, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if rate == b.SampleRate() {
		return b, nil
	}

	frames := int(math.Round(float64(b.Len()) * float64(rate) / float64(b.SampleRate())))
	out := NewBuffer(rate, b.Channels(), frames)

	for c := range b.Channels() {
		rs, err := resampling.New(&resampling.Config{
			InputRate:  float64(b.SampleRate()),
			OutputRate: float64(rate),
			Channels:   1,
			Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create resampler: %w", err)
		}

		in := make([]float64, b.Len())
		for i, v := range b.Channel(c) {
			in[i] = float64(v)
		}

		res, err := rs.Process(in)
		if err != nil {
			return nil, fmt.Errorf("resample error: %w", err)
		}
		tail, err := rs.Flush()
		if err != nil {
			return nil, fmt.Errorf("resample flush: %w", err)
		}
		res = append(res, tail...)

		dst := out.Channel(c)
		for i := range min(len(dst), len(res)) {
			dst[i] = float32(res[i])
		}
	}

	return out, nil
}
