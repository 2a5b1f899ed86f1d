// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer maps the channels of src onto a fixed output layout, e.g. to
// feed a stereo device from a mono or 5.1 recording.
//
// Mono input is copied to every output channel. Otherwise output channel o is
// the average of input channels o, o+out, o+2*out, ... so a mono output
// averages everything and an N->N mapping passes through.
type ChannelMixer struct {
	src Source
	out int
	tmp []float32
}

func NewChannelMixer(src Source, outChannels int) *ChannelMixer {
	if outChannels <= 0 {
		outChannels = src.Channels()
	}
	return &ChannelMixer{
		src: src,
		out: outChannels,
		tmp: make([]float32, 4096),
	}
}

// NewMonoMixer averages all channels of src into one.
func NewMonoMixer(src Source) *ChannelMixer { return NewChannelMixer(src, 1) }

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.out }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }
func (m *ChannelMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%m.out != 0 {
		return 0, ErrInvalidDstSize
	}

	in := m.src.Channels()
	if in == m.out {
		return m.src.ReadSamples(dst)
	}

	maxFrames := len(dst) / m.out
	samplesNeeded := maxFrames * in

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / in

	switch {
	case in == 1:
		for f := range frames {
			v := m.tmp[f]
			for o := range m.out {
				dst[f*m.out+o] = v
			}
		}
	case in == 2 && m.out == 1:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			base := f * in
			for o := range m.out {
				var sum float32
				count := 0
				for c := o; c < in; c += m.out {
					sum += m.tmp[base+c]
					count++
				}
				if count > 0 {
					sum /= float32(count)
				}
				dst[f*m.out+o] = sum
			}
		}
	}

	return frames * m.out, err
}
