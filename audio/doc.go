// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks of the conversion pipeline:
//   - Source interface for decoded audio input
//   - Sink interface for encoded audio output
//   - ChannelTruncator for reducing audio to at most two channels
//   - Encoding for classifying the stored sample format
//   - Format registry for decoder registration and detection
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Frames() int64
//	    Encoding() Encoding
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// All audio decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Channel Truncation
//
// The ChannelTruncator keeps the first two channels of every frame and
// drops the rest. Nothing is mixed: a 5.1 source keeps front left and
// front right, a mono source passes through unchanged.
//
//	stereo := audio.NewChannelTruncator(source)
//	buf := make([]float64, 2048*stereo.Channels())
//	n, err := stereo.ReadSamples(buf)
//
// Samples are clamped to [-1.0, 1.0] on the way through, so a later
// conversion to 16-bit PCM cannot wrap around. Clipped reports how many
// samples were clamped.
//
// The same transform is available on plain slices through Truncate.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// Decoders that implement Matcher can also be found from the first bytes
// of a file with Detect, and Lookup combines detection with an extension
// fallback.
//
// # Sample Format
//
// Audio samples are represented as float64, nominally in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Floating point sources may exceed that range. Decoders pass such values
// through untouched and leave clamping to the ChannelTruncator.
//
// # Error Handling
//
// A read of zero samples ends the stream. Sources usually pair it with
// io.EOF, which may also arrive together with the last non-empty read:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if n == 0 || err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	}
package audio
