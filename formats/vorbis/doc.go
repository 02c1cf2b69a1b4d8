// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float64, nominally [-1.0, 1.0] but not clamped
//   - Channels: as stored in the stream, interleaved [L0, R0, L1, R1, ...]
//   - Frames: known when the input is an io.Seeker, 0 otherwise
//
// Vorbis is lossy and has no bit depth; Encoding reports EncodingVorbis.
package vorbis
