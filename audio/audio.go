// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"io"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Prober is implemented by decoders that can recognise their container from
// the first bytes of a file.
type Prober interface {
	Probe(header []byte) bool
}

// ProbeSize is the number of leading bytes handed to Prober.Probe.
const ProbeSize = 64

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]Decoder
	order  []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[format]; !ok {
		r.order = append(r.order, format)
	}
	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered format keys in registration order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return append([]string(nil), r.order...)
}

// Detect picks the decoder whose Probe accepts the leading bytes of data.
// Decoders are asked in registration order; decoders without Probe are skipped.
func (r *Registry) Detect(data []byte) (string, Decoder, error) {
	header := data
	if len(header) > ProbeSize {
		header = header[:ProbeSize]
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, format := range r.order {
		p, ok := r.codecs[format].(Prober)
		if ok && p.Probe(header) {
			return format, r.codecs[format], nil
		}
	}

	return "", nil, ErrUnknownFormat
}

// DecodeBytes sniffs the container of data and decodes it fully into memory.
func (r *Registry) DecodeBytes(data []byte) (*Buffer, error) {
	_, dec, err := r.Detect(data)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return Drain(src)
}
