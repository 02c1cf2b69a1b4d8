// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/stereofy/audio"
)

const (
	formatPCM        = 0x0001
	formatIEEEFloat  = 0x0003
	formatExtensible = 0xFFFE

	// streamingDataSize marks a data chunk written without a known length.
	streamingDataSize = 0xFFFFFFFF
)

type sampleFormat struct {
	encoding       audio.Encoding
	bytesPerSample int
	decode         func(b []byte) float64
}

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	frames     int64
	format     sampleFormat
	buf        []byte
}

func (s *wavSource) SampleRate() int          { return s.sampleRate }
func (s *wavSource) Channels() int            { return s.channels }
func (s *wavSource) Frames() int64            { return s.frames }
func (s *wavSource) Encoding() audio.Encoding { return s.format.encoding }
func (s *wavSource) Close() error             { return nil }

func (s *wavSource) ReadSamples(dst []float64) (int, error) {
	if s.channels <= 0 {
		return 0, io.EOF
	}

	blockAlign := s.channels * s.format.bytesPerSample
	framesRequested := len(dst) / s.channels
	if framesRequested == 0 {
		return 0, nil
	}

	bytesNeeded := framesRequested * blockAlign
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	// Drop a trailing partial frame
	samples := n / blockAlign * s.channels
	width := s.format.bytesPerSample

	for i := range samples {
		dst[i] = s.format.decode(s.buf[i*width : (i+1)*width])
	}

	if samples == 0 {
		return 0, io.EOF
	}
	if err != nil {
		return samples, io.EOF
	}
	return samples, nil
}

type Decoder struct{}

// Match reports whether header starts a RIFF/WAVE file.
func (Decoder) Match(header []byte) bool {
	return len(header) >= 12 &&
		bytes.HasPrefix(header[:4], []byte("RIFF")) &&
		bytes.HasPrefix(header[8:12], []byte("WAVE"))
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	header := make([]byte, 12)

	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if !(Decoder{}).Match(header) {
		return nil, ErrNotWavFile
	}

	var (
		fmtChunk []byte
		chunk    = make([]byte, 8)
	)

	// Walk chunks until "data"; everything but "fmt " is skipped
	for {
		if _, err := io.ReadFull(r, chunk); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ErrUnsupportedWavChunks
			}
			return nil, fmt.Errorf("%w", err)
		}

		id := string(chunk[:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrUnsupportedWavLayout
			}
			fmtChunk = make([]byte, size)
			if _, err := io.ReadFull(r, fmtChunk); err != nil {
				return nil, ErrUnsupportedWavLayout
			}
			if size%2 == 1 {
				if err := skip(r, 1); err != nil {
					return nil, err
				}
			}

		case "data":
			if fmtChunk == nil {
				return nil, ErrUnsupportedWavLayout
			}
			return newSource(r, fmtChunk, size)

		default:
			// Chunks are word aligned
			if err := skip(r, int64(size)+int64(size%2)); err != nil {
				return nil, err
			}
		}
	}
}

func newSource(r io.Reader, fmtChunk []byte, dataSize uint32) (*wavSource, error) {
	audioFormat := binary.LittleEndian.Uint16(fmtChunk[0:2])
	channels := int(binary.LittleEndian.Uint16(fmtChunk[2:4]))
	sampleRate := int(binary.LittleEndian.Uint32(fmtChunk[4:8]))
	bitsPerSample := int(binary.LittleEndian.Uint16(fmtChunk[14:16]))

	// WAVE_FORMAT_EXTENSIBLE keeps the real tag in the first two bytes of
	// the sub-format GUID
	if audioFormat == formatExtensible {
		if len(fmtChunk) < 40 {
			return nil, ErrUnsupportedWavLayout
		}
		audioFormat = binary.LittleEndian.Uint16(fmtChunk[24:26])
	}

	format, err := lookupSampleFormat(audioFormat, bitsPerSample)
	if err != nil {
		return nil, err
	}

	src := &wavSource{
		sampleRate: sampleRate,
		channels:   channels,
		format:     format,
	}

	if channels <= 0 {
		// Nothing can be read; report an empty stream and let the caller decide
		src.channels = 0
		src.r = bytes.NewReader(nil)
		return src, nil
	}

	blockAlign := int64(channels * format.bytesPerSample)
	if dataSize == streamingDataSize {
		src.r = r
	} else {
		src.r = io.LimitReader(r, int64(dataSize))
		src.frames = int64(dataSize) / blockAlign
	}

	return src, nil
}

func lookupSampleFormat(audioFormat uint16, bits int) (sampleFormat, error) {
	switch {
	case audioFormat == formatPCM && bits == 8:
		return sampleFormat{audio.EncodingPCMU8, 1, decodeU8}, nil
	case audioFormat == formatPCM && bits == 16:
		return sampleFormat{audio.EncodingPCM16, 2, decodeS16}, nil
	case audioFormat == formatPCM && bits == 24:
		return sampleFormat{audio.EncodingPCM24, 3, decodeS24}, nil
	case audioFormat == formatPCM && bits == 32:
		return sampleFormat{audio.EncodingPCM32, 4, decodeS32}, nil
	case audioFormat == formatIEEEFloat && bits == 32:
		return sampleFormat{audio.EncodingFloat, 4, decodeF32}, nil
	case audioFormat == formatIEEEFloat && bits == 64:
		return sampleFormat{audio.EncodingDouble, 8, decodeF64}, nil
	default:
		return sampleFormat{}, ErrUnsupportedSampleFormat
	}
}

func decodeU8(b []byte) float64 {
	return (float64(b[0]) - 128.0) / 128.0
}

func decodeS16(b []byte) float64 {
	return float64(int16(binary.LittleEndian.Uint16(b))) / 32768.0
}

func decodeS24(b []byte) float64 {
	v := int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8
	return float64(v) / 8388608.0
}

func decodeS32(b []byte) float64 {
	return float64(int32(binary.LittleEndian.Uint32(b))) / 2147483648.0
}

func decodeF32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}

func decodeF64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func skip(r io.Reader, n int64) error {
	if n == 0 {
		return nil
	}

	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrUnsupportedWavChunks
		}
		return fmt.Errorf("%w", err)
	}

	return nil
}
