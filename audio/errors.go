// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat  = errors.New("unrecognised audio container")
	ErrEmptyBuffer    = errors.New("audio buffer has no channels")
	ErrChannelLength  = errors.New("channels differ in length")
	ErrInvalidRate    = errors.New("sample rate must be positive")
)
