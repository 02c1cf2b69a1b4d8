// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
//   - PCM 8, 16, 24 and 32-bit, big-endian
//   - Any number of channels
//   - Any sample rate
//
// Other sample sizes fail with ErrUnsupportedBitDepth.
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples are scaled by 2^(bits-1) into [-1.0, 1.0). The declared frame
// count comes from the COMM chunk.
//
// go-audio needs an io.ReadSeeker; any other reader is buffered in memory
// first.
package aiff
