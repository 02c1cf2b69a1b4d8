// SPDX-License-Identifier: EPL-2.0

// Package stereofy converts audio files of any supported format into 16-bit
// PCM WAV files with at most two channels.
//
// Channels beyond the first two are dropped, not mixed, and every sample is
// clamped to [-1.0, 1.0] before it is quantised. The sample rate is kept.
//
// # Supported Formats
//
// Input is decoded by the formats subpackages and picked by content, with
// the file extension as a fallback:
//   - WAV (PCM 8/16/24/32-bit, float 32/64-bit) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - FLAC via formats/flac
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//
// # Quick Start
//
//	stats, err := stereofy.ConvertFile("surround.wav", "stereo.wav", os.Stdout)
//	if err != nil {
//	    // errors.Is(err, stereofy.ErrEmptyStream), ...
//	}
//	fmt.Println(stats.Frames, stats.Clipped)
//
// ConvertFile prints a short report of the input stream:
//
//	stereofy: file opened
//	#channels 6
//	#samplerate 48000
//	#duration 2.5
//	#bitdepth 24
//
// # Pipeline
//
// For other sources and sinks, Convert drives the same loop:
//
//	src, _ := wav.Decoder{}.Decode(r)
//	w, _ := wav.NewPCM16Writer(out, src.SampleRate(), audio.OutputChannels(src.Channels()))
//	stats, err := stereofy.Convert(src, w)
//	_ = w.Close()
//
// Convert reads BlockFrames frames at a time through an
// audio.ChannelTruncator and writes each block before the next read. The
// stream ends on the first empty read.
package stereofy
