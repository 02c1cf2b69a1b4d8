// SPDX-License-Identifier: EPL-2.0

package stereofy

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/stereofy/audio"
	"github.com/ik5/stereofy/formats/aiff"
	"github.com/ik5/stereofy/formats/flac"
	"github.com/ik5/stereofy/formats/mp3"
	"github.com/ik5/stereofy/formats/vorbis"
	"github.com/ik5/stereofy/formats/wav"
)

// sniffSize covers the longest magic sequence (RIFF/FORM headers).
const sniffSize = 12

// DefaultRegistry returns a registry holding every bundled decoder. MP3 is
// registered last because its frame-sync check is the loosest.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aifc", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("mp3", mp3.Decoder{})

	return reg
}

// OpenSource opens path and decodes it with the decoder picked by reg. On
// success the caller owns both the file and the source.
func OpenSource(path string, reg *audio.Registry) (*os.File, audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpenSource, err)
	}

	src, err := decodeFile(f, path, reg)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %w", ErrOpenSource, err)
	}

	return f, src, nil
}

func decodeFile(f *os.File, path string, reg *audio.Registry) (audio.Source, error) {
	header := make([]byte, sniffSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w", err)
	}

	dec, err := reg.Lookup(path, header[:n])
	if err != nil {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return nil, err
	}

	return src, nil
}
