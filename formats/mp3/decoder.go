// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/stereofy/audio"
)

// go-mp3 always decodes to interleaved stereo 16-bit little-endian PCM
const (
	outputChannels = 2
	bytesPerFrame  = outputChannels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	frames     int64
	buf        []byte
}

func (s *source) SampleRate() int          { return s.sampleRate }
func (s *source) Channels() int            { return outputChannels }
func (s *source) Frames() int64            { return s.frames }
func (s *source) Encoding() audio.Encoding { return audio.EncodingMP3 }
func (s *source) Close() error             { return nil }

func (s *source) ReadSamples(dst []float64) (int, error) {
	bytesNeeded := len(dst) / outputChannels * bytesPerFrame
	if bytesNeeded == 0 {
		return 0, nil
	}

	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / 2
	for i := range samples {
		low := uint16(s.buf[2*i])
		high := uint16(s.buf[2*i+1])
		dst[i] = float64(int16(low|high<<8)) / 32768.0
	}

	if samples == 0 {
		return 0, io.EOF
	}

	return samples, err
}

type Decoder struct{}

// Match reports whether header starts with an ID3v2 tag or an MPEG audio
// frame sync.
func (Decoder) Match(header []byte) bool {
	if bytes.HasPrefix(header, []byte("ID3")) {
		return true
	}

	return len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	src := &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}

	// Length is -1 when the input cannot seek
	if length := dec.Length(); length > 0 {
		src.frames = length / bytesPerFrame
	}

	return src
}
