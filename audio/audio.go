// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// Frames is the declared number of frames in the stream, 0 when unknown.
	Frames() int64
	// Encoding is the sub-format the stream was stored with.
	Encoding() Encoding
	// ReadSamples fills dst with interleaved float64 samples, nominally in [-1,1].
	// Returns number of float64 values written (not frames). When n == 0 the stream is finished.
	ReadSamples(dst []float64) (n int, err error)

	// Close releases any resources. It does not close the reader handed to the Decoder.
	Close() error
}

// Sink consumes interleaved float64 samples.
type Sink interface {
	SampleRate() int
	Channels() int
	WriteSamples(src []float64) error
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Matcher is implemented by decoders that can recognise their format from
// the first bytes of a file.
type Matcher interface {
	Match(header []byte) bool
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
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

	format = strings.ToLower(format)
	if _, ok := r.codecs[format]; !ok {
		r.order = append(r.order, format)
	}
	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Detect returns the first registered decoder, in registration order, whose
// Match accepts header.
func (r *Registry) Detect(header []byte) (string, Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, format := range r.order {
		d := r.codecs[format]
		m, ok := d.(Matcher)
		if ok && m.Match(header) {
			return format, d, true
		}
	}

	return "", nil, false
}

// Lookup picks a decoder for a file by sniffing header, falling back to the
// extension of path.
func (r *Registry) Lookup(path string, header []byte) (Decoder, error) {
	if _, d, ok := r.Detect(header); ok {
		return d, nil
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if d, ok := r.Get(ext); ok {
		return d, nil
	}

	return nil, ErrUnknownFormat
}
