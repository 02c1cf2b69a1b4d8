// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	f, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float64 in range [-1.0, 1.0)
//   - Channels: always 2; go-mp3 duplicates mono streams
//   - Sample rate: taken from the first frame
//   - Frames: known only when the input is an io.Seeker, 0 otherwise
//
// MP3 has no fixed bit depth, so Encoding reports EncodingMP3 and a bit
// depth of 0.
//
// Match recognises an ID3v2 tag or a bare MPEG frame sync.
package mp3
