// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("unsupported PCM bit depth")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrChannelCount         = errors.New("channel count must be positive")
	ErrSampleCount          = errors.New("sample count must be a multiple of channels")
)
