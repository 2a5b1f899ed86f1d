// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"github.com/ik5/concertfx/audio"
	"github.com/ik5/concertfx/formats/aiff"
	"github.com/ik5/concertfx/formats/mp3"
	"github.com/ik5/concertfx/formats/vorbis"
	"github.com/ik5/concertfx/formats/wav"
)

// DefaultRegistry returns a registry with every bundled container decoder.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("ogg vorbis", vorbis.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	return r
}
