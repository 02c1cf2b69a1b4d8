// SPDX-License-Identifier: EPL-2.0

package stereofy

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/stereofy/formats/wav"
)

// ConvertFile converts the audio file at inPath into a 16-bit PCM WAV file at
// outPath with the same sample rate and at most two channels. The stream
// report is written to report.
//
// The output file is created only once the input is known to hold audio.
// Every handle opened is closed before ConvertFile returns.
func ConvertFile(inPath, outPath string, report io.Writer) (stats Stats, err error) {
	in, src, err := OpenSource(inPath, DefaultRegistry())
	if err != nil {
		return stats, err
	}
	defer in.Close()
	defer src.Close()

	fmt.Fprintln(report, "stereofy: file opened")

	desc := Describe(src)
	if err := desc.Validate(); err != nil {
		return stats, err
	}

	if err := desc.Report(report); err != nil {
		return stats, err
	}

	if desc.SampleRate <= 0 {
		return stats, fmt.Errorf("%w: %w: %d Hz", ErrOpenDestination, wav.ErrInvalidWriterFormat, desc.SampleRate)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return stats, fmt.Errorf("%w: %w", ErrOpenDestination, err)
	}
	defer closeInto(&err, out)

	w, err := wav.NewPCM16Writer(out, desc.SampleRate, desc.OutputChannels())
	if err != nil {
		return stats, fmt.Errorf("%w: %w", ErrOpenDestination, err)
	}
	defer closeInto(&err, w)

	return Convert(src, w)
}

// closeInto closes c and reports its error through err unless an earlier
// error is already set.
func closeInto(err *error, c io.Closer) {
	cerr := c.Close()
	if cerr != nil && *err == nil {
		*err = fmt.Errorf("%w: %w", ErrWrite, cerr)
	}
}
