// SPDX-License-Identifier: EPL-2.0

// Package wav reads RIFF/WAVE files of any common sample format and writes
// 16-bit PCM WAV files.
//
// # Decoding
//
// Decoder walks the RIFF chunk list itself so that every sample layout the
// converter accepts is exposed with an exact frame count:
//   - PCM unsigned 8-bit, signed 16, 24 and 32-bit
//   - IEEE float 32 and 64-bit
//   - WAVE_FORMAT_EXTENSIBLE wrapping any of the above
//
// Unknown chunks (LIST, fact, cue, ...) are skipped. A data chunk that
// appears before fmt is rejected with ErrUnsupportedWavLayout.
//
//	f, _ := os.Open("input.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotWavFile, ErrUnsupportedSampleFormat, ...
//	}
//
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples are normalised to [-1.0, 1.0); float files are passed through
// unchanged and may exceed that range.
//
// # Encoding
//
// PCM16Writer streams float64 samples into a 16-bit PCM file through
// github.com/go-audio/wav. Samples are clamped to [-1, 1] and scaled by
// 32767 with round-half-to-even. The destination must be seekable because
// the RIFF and data sizes are patched on Close.
//
//	out, _ := os.Create("output.wav")
//	w, _ := wav.NewPCM16Writer(out, 44100, 2)
//	_ = w.WriteSamples(samples)
//	_ = w.Close()
//	_ = out.Close()
package wav
