// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio primitives shared by the decoders
// and the effect engine.
//
// This package contains:
//   - Source interface for streamed, interleaved audio
//   - Registry for decoders, with container sniffing
//   - Buffer, a fully decoded planar recording, plus Drain and BufferReader
//   - Resampler for sample-rate conversion and playback-rate changes
//   - ChannelMixer for fitting a recording onto a device channel layout
//   - ConvertRate for high quality whole-buffer sample-rate conversion
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders return a Source; processors wrap one, so they chain:
//
//	voice := audio.NewPlaybackRate(audio.NewBufferReader(buf, offset), 1.19)
//	stereo := audio.NewChannelMixer(voice, 2)
//
// # Buffers
//
// The engine works on whole recordings. Drain reads a Source to the end:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.Drain(src)
//
// A Buffer is read-only once built and may be shared freely.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("mp3", mp3.Decoder{})
//	buf, err := registry.DecodeBytes(data) // container detected from magic bytes
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0], 0.0 being silence.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
