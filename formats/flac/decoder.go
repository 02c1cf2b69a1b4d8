// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/stereofy/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	scale      float64
	buf        []float64 // interleaved samples of the last decoded frame
	pending    []float64 // unread tail of buf
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Frames() int64   { return s.frames }

// Close does not close the underlying reader.
func (s *source) Close() error { return nil }

func (s *source) Encoding() audio.Encoding {
	return audio.PCMEncoding(s.bitDepth)
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	if s.channels <= 0 {
		return 0, io.EOF
	}

	want := len(dst) / s.channels * s.channels
	if want == 0 {
		return 0, nil
	}

	n := 0
	for n < want {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.decodeFrame(); err != nil {
				return n, err
			}
			continue
		}

		c := copy(dst[n:want], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 {
		return 0, io.EOF
	}
	if s.done && len(s.pending) == 0 {
		return n, io.EOF
	}

	return n, nil
}

// decodeFrame parses the next audio frame and interleaves its subframes
// into pending.
func (s *source) decodeFrame() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: %d subframes, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	blockSize := len(f.Subframes[0].Samples)
	size := blockSize * s.channels
	if cap(s.buf) < size {
		s.buf = make([]float64, size)
	}
	s.buf = s.buf[:size]

	for ch, sub := range f.Subframes {
		for i := range min(blockSize, len(sub.Samples)) {
			s.buf[i*s.channels+ch] = float64(sub.Samples[i]) / s.scale
		}
	}

	s.pending = s.buf
	return nil
}

type Decoder struct{}

// Match reports whether header starts with the FLAC stream marker.
func (Decoder) Match(header []byte) bool {
	return bytes.HasPrefix(header, []byte("fLaC"))
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	src, err := newSource(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample), int64(info.NSamples))
	if err != nil {
		return nil, err
	}

	return src, nil
}

func newSource(stream frameParser, sampleRate, channels, bitDepth int, frames int64) (*source, error) {
	if bitDepth < 1 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		frames:     frames,
		scale:      float64(uint64(1) << (bitDepth - 1)),
	}, nil
}
