// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"

	"github.com/ik5/stereofy/audio"
)

var (
	// ErrMockRead is returned by a MockSource configured to fail.
	ErrMockRead = errors.New("mock read failed")

	// ErrMockWrite is returned by a MockSink configured to fail.
	ErrMockWrite = errors.New("mock write failed")
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface.
type MockSource struct {
	sampleRate     int
	channels       int
	totalSamples   int // Total samples to generate (per channel)
	generated      int // Samples generated so far (per channel)
	declaredFrames int64
	encoding       audio.Encoding
	waveform       func(sample int, channel int) float64

	// Closed reports whether Close was called.
	Closed bool
	// Reads counts ReadSamples calls.
	Reads int
	// FailAfter makes ReadSamples return ErrMockRead once Reads exceeds it.
	// Zero disables the failure.
	FailAfter int
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float64) *MockSource {
	return &MockSource{
		sampleRate:     sampleRate,
		channels:       channels,
		totalSamples:   totalSamples,
		declaredFrames: int64(totalSamples),
		encoding:       audio.EncodingDouble,
		waveform:       waveform,
	}
}

// NewSliceSource creates a mock source that replays interleaved samples.
func NewSliceSource(sampleRate, channels int, samples []float64) *MockSource {
	frames := 0
	if channels > 0 {
		frames = len(samples) / channels
	}

	return NewMockSource(sampleRate, channels, frames, func(sample int, channel int) float64 {
		return samples[sample*channels+channel]
	})
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float64 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float64 {
		t := float64(sample) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float64 {
		return value
	})
}

// WithDeclaredFrames overrides the frame count reported by Frames, leaving
// the amount of generated data untouched.
func (m *MockSource) WithDeclaredFrames(frames int64) *MockSource {
	m.declaredFrames = frames
	return m
}

// WithEncoding overrides the reported encoding.
func (m *MockSource) WithEncoding(e audio.Encoding) *MockSource {
	m.encoding = e
	return m
}

func (m *MockSource) SampleRate() int          { return m.sampleRate }
func (m *MockSource) Channels() int            { return m.channels }
func (m *MockSource) Frames() int64            { return m.declaredFrames }
func (m *MockSource) Encoding() audio.Encoding { return m.encoding }
func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float64) (int, error) {
	m.Reads++
	if m.FailAfter > 0 && m.Reads > m.FailAfter {
		return 0, ErrMockRead
	}

	if m.generated >= m.totalSamples || m.channels <= 0 {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalSamples - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	// Generate samples
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// MockSink records every block written to it.
type MockSink struct {
	sampleRate int
	channels   int

	// Samples holds everything written so far.
	Samples []float64
	// Writes counts WriteSamples calls.
	Writes int
	// Closed reports whether Close was called.
	Closed bool
	// FailAfter makes WriteSamples return ErrMockWrite once Writes exceeds it.
	// Zero disables the failure.
	FailAfter int
}

func NewMockSink(sampleRate, channels int) *MockSink {
	return &MockSink{
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (m *MockSink) SampleRate() int { return m.sampleRate }
func (m *MockSink) Channels() int   { return m.channels }
func (m *MockSink) Close() error {
	m.Closed = true
	return nil
}

func (m *MockSink) WriteSamples(src []float64) error {
	m.Writes++
	if m.FailAfter > 0 && m.Writes > m.FailAfter {
		return ErrMockWrite
	}

	m.Samples = append(m.Samples, src...)
	return nil
}
