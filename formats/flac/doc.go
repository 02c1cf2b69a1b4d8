// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to parse the stream. Each audio
// frame is decoded on demand and its subframes are interleaved into a single
// float64 buffer scaled by 2^(bits-1).
//
//	f, _ := os.Open("audio.flac")
//	src, err := flac.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Frames and bit depth come from STREAMINFO. Bit depths without a matching
// audio.Encoding (12 or 20 bits, for example) are decoded but reported as
// EncodingUnknown.
package flac
