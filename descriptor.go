// SPDX-License-Identifier: EPL-2.0

package stereofy

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ik5/stereofy/audio"
)

// Descriptor is the format metadata of an opened input stream.
type Descriptor struct {
	Channels   int
	SampleRate int
	Frames     int64
	Encoding   audio.Encoding
	// BitDepth is 0 when the encoding has no fixed sample width.
	BitDepth int
}

// Describe captures the metadata of src.
func Describe(src audio.Source) Descriptor {
	enc := src.Encoding()

	return Descriptor{
		Channels:   src.Channels(),
		SampleRate: src.SampleRate(),
		Frames:     src.Frames(),
		Encoding:   enc,
		BitDepth:   enc.BitDepth(),
	}
}

// Duration is Frames / SampleRate in seconds, 0 when the rate is unknown.
func (d Descriptor) Duration() float64 {
	if d.SampleRate <= 0 {
		return 0
	}

	return float64(d.Frames) / float64(d.SampleRate)
}

// OutputChannels is the channel count of the converted stream.
func (d Descriptor) OutputChannels() int {
	return audio.OutputChannels(d.Channels)
}

// Validate returns ErrEmptyStream when there is nothing to convert.
func (d Descriptor) Validate() error {
	if d.Frames <= 0 || d.Channels <= 0 {
		return fmt.Errorf("%w: %d frames, %d channels", ErrEmptyStream, d.Frames, d.Channels)
	}

	return nil
}

// Report writes the "#tag value" lines describing the stream. The duration
// is printed with six significant digits. The bitdepth line is left out for
// encodings without a fixed sample width.
func (d Descriptor) Report(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "#channels %d\n", d.Channels)
	fmt.Fprintf(&b, "#samplerate %d\n", d.SampleRate)
	fmt.Fprintf(&b, "#duration %s\n", strconv.FormatFloat(d.Duration(), 'g', 6, 64))
	if d.BitDepth != 0 {
		fmt.Fprintf(&b, "#bitdepth %d\n", d.BitDepth)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
