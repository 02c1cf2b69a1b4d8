// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/stereofy/utils"
)

const (
	pcmBitDepth    = 16
	pcmAudioFormat = 1
)

// PCM16Writer streams interleaved float64 samples into a 16-bit PCM WAV file.
// Header sizes are patched when the writer is closed, which is why the
// destination must be seekable.
type PCM16Writer struct {
	enc        *gowav.Encoder
	sampleRate int
	channels   int
	buf        *goaudio.IntBuffer
	written    int64
}

// NewPCM16Writer prepares w for a 16-bit PCM WAV stream. channels must be 1 or 2.
func NewPCM16Writer(w io.WriteSeeker, sampleRate, channels int) (*PCM16Writer, error) {
	if sampleRate <= 0 || channels < 1 || channels > 2 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidWriterFormat, sampleRate, channels)
	}

	return &PCM16Writer{
		enc:        gowav.NewEncoder(w, sampleRate, pcmBitDepth, channels, pcmAudioFormat),
		sampleRate: sampleRate,
		channels:   channels,
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: pcmBitDepth,
		},
	}, nil
}

func (w *PCM16Writer) SampleRate() int { return w.sampleRate }
func (w *PCM16Writer) Channels() int   { return w.channels }

// WriteSamples quantises src to 16-bit PCM and appends it to the data chunk.
// Values outside [-1, 1] are clamped.
func (w *PCM16Writer) WriteSamples(src []float64) error {
	if len(src) == 0 {
		return nil
	}

	// Reuse the int buffer between blocks
	if cap(w.buf.Data) < len(src) {
		w.buf.Data = make([]int, len(src))
	}
	w.buf.Data = w.buf.Data[:len(src)]

	for i, v := range src {
		w.buf.Data[i] = int(utils.Float64ToInt16(v))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	w.written += int64(len(src))
	return nil
}

// Close finalises the RIFF and data chunk sizes. It does not close the
// underlying writer.
func (w *PCM16Writer) Close() error {
	// The encoder only emits its header on the first Write
	if w.written == 0 {
		w.buf.Data = w.buf.Data[:0]
		if err := w.enc.Write(w.buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
