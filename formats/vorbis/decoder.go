package vorbis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/stereofy/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frames     int64
	buf        []float32 // decoder output before widening to float64
}

func (s *source) SampleRate() int          { return s.sampleRate }
func (s *source) Channels() int            { return s.channels }
func (s *source) Frames() int64            { return s.frames }
func (s *source) Encoding() audio.Encoding { return audio.EncodingVorbis }
func (s *source) Close() error             { return nil }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if s.channels <= 0 {
		return 0, io.EOF
	}

	// oggvorbis returns interleaved values, always whole frames
	want := len(dst) / s.channels * s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	s.buf = s.buf[:want]

	n, err := s.dec.Read(s.buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	for i := range n {
		dst[i] = float64(s.buf[i])
	}

	if n == 0 {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

// Match reports whether header starts an Ogg page.
func (Decoder) Match(header []byte) bool {
	return bytes.HasPrefix(header, []byte("OggS"))
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}

func newSource(dec oggReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		// 0 when the input cannot seek
		frames: dec.Length(),
		buf:    make([]float32, 4096),
	}
}
