// SPDX-License-Identifier: EPL-2.0

package stereofy

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/stereofy/audio"
)

// BlockFrames is the number of frames moved per read/write iteration.
const BlockFrames = 2048

// Stats summarises a finished conversion.
type Stats struct {
	// Frames written to the sink.
	Frames int64
	// Samples written to the sink, across all output channels.
	Samples int64
	// Clipped is the number of samples clamped to [-1, 1].
	Clipped int64
	// Encoding the source stream was stored with.
	Encoding audio.Encoding
}

// Convert streams src into dst one block at a time, keeping the first two
// channels and clamping every sample. The loop ends on the first empty read.
// Neither src nor dst is closed.
func Convert(src audio.Source, dst audio.Sink) (Stats, error) {
	stats := Stats{Encoding: src.Encoding()}

	stereo := audio.NewChannelTruncator(src)
	outCh := stereo.Channels()
	if outCh <= 0 {
		return stats, fmt.Errorf("%w: %w", ErrEmptyStream, audio.ErrInvalidChannels)
	}
	if dst.Channels() != outCh {
		return stats, fmt.Errorf("%w: sink has %d channels, want %d", ErrOpenDestination, dst.Channels(), outCh)
	}

	buf := make([]float64, BlockFrames*outCh)

	for {
		n, err := stereo.ReadSamples(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			stats.Clipped = stereo.Clipped()
			return stats, fmt.Errorf("%w: %w", ErrRead, err)
		}

		if n > 0 {
			if werr := dst.WriteSamples(buf[:n]); werr != nil {
				stats.Clipped = stereo.Clipped()
				return stats, fmt.Errorf("%w: %w", ErrWrite, werr)
			}

			stats.Samples += int64(n)
			stats.Frames += int64(n / outCh)
		}

		if n == 0 || err != nil {
			break
		}
	}

	stats.Clipped = stereo.Clipped()
	return stats, nil
}
