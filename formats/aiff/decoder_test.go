// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/stereofy/audio"
	"github.com/ik5/stereofy/internal/audiotest"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	samples      []int
	offset       int
	returnErrors bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := min(len(buf.Data), len(m.samples)-m.offset)

	copy(buf.Data, m.samples[m.offset:m.offset+samplesToRead])
	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead, io.EOF
	}

	return samplesToRead, nil
}

func newMockSource(channels, bitDepth int, samples []int) *source {
	return &source{
		dec: &mockAiffReader{
			sampleRate: 44100,
			channels:   channels,
			samples:    samples,
		},
		sampleRate: 44100,
		channels:   channels,
		bitDepth:   bitDepth,
		frames:     int64(len(samples) / channels),
	}
}

// encodeAIFF builds a real AIFF file with the go-audio encoder.
func encodeAIFF(t *testing.T, sampleRate, bitDepth, channels int, samples []int) []byte {
	t.Helper()

	out := new(audiotest.SeekBuffer)
	enc := goaiff.NewEncoder(out, sampleRate, bitDepth, channels)

	buf := &goaudio.IntBuffer{
		Data: samples,
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatalf("aiff Encoder.Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("aiff Encoder.Close() error = %v", err)
	}

	return out.Bytes()
}

// buildAIFF lays out a FORM/AIFF file by hand: a COMM chunk followed by an
// SSND chunk holding pcm as is.
func buildAIFF(sampleRate, channels, bitDepth int, pcm []byte) []byte {
	frames := len(pcm) / (channels * bitDepth / 8)

	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, int16(channels))
	binary.Write(comm, binary.BigEndian, uint32(frames))
	binary.Write(comm, binary.BigEndian, int16(bitDepth))
	rate := goaudio.IntToIEEEFloat(sampleRate)
	comm.Write(rate[:])

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	ssnd.Write(pcm)

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	writeChunk(body, "COMM", comm.Bytes())
	writeChunk(body, "SSND", ssnd.Bytes())

	out := new(bytes.Buffer)
	writeChunk(out, "FORM", body.Bytes())

	return out.Bytes()
}

func writeChunk(w *bytes.Buffer, id string, data []byte) {
	w.WriteString(id)
	binary.Write(w, binary.BigEndian, uint32(len(data)))
	w.Write(data)
	if len(data)%2 == 1 {
		w.WriteByte(0)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))

	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecoder_EncodedFile(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, -16384, 32767, -32768, 8192}
	data := encodeAIFF(t, 22050, 16, 2, samples)

	// Hide the Seek method to exercise the buffering path
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", src.Frames())
	}
	if src.Encoding() != audio.EncodingPCM16 {
		t.Errorf("Encoding() = %v, want %v", src.Encoding(), audio.EncodingPCM16)
	}

	dst := make([]float64, 16)
	total := 0
	for {
		n, err := src.ReadSamples(dst[total:])
		total += n
		if err == io.EOF || n == 0 {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != len(samples) {
		t.Fatalf("read %d samples, want %d", total, len(samples))
	}
	for i, s := range samples {
		if want := float64(s) / 32768.0; dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}
}

func TestDecoder_EightBitFile(t *testing.T) {
	t.Parallel()

	data := buildAIFF(8000, 1, 8, []byte{0x00, 0x40, 0xC0, 0xFF, 0x80, 0x7F})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.Encoding() != audio.EncodingPCMS8 {
		t.Errorf("Encoding() = %v, want %v", src.Encoding(), audio.EncodingPCMS8)
	}
	if src.Frames() != 6 {
		t.Errorf("Frames() = %d, want 6", src.Frames())
	}

	dst := make([]float64, 16)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float64{0, 0.5, -0.5, -1.0 / 128.0, -1, 127.0 / 128.0}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestDecoder_EightBitEncodedFile(t *testing.T) {
	t.Parallel()

	samples := []int{0, 64, -64, -1, -128, 127}
	data := encodeAIFF(t, 11025, 8, 2, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	dst := make([]float64, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, s := range samples {
		if want := float64(s) / 128.0; dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}
}

func TestDecoder_TruncatedCommChunk(t *testing.T) {
	t.Parallel()

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(body, binary.BigEndian, uint32(18))
	body.Write([]byte{0x00, 0x02, 0x00, 0x00}) // channels, then half of the frame count

	data := new(bytes.Buffer)
	writeChunk(data, "FORM", body.Bytes())

	_, err := Decoder{}.Decode(bytes.NewReader(data.Bytes()))

	if !errors.Is(err, ErrNotAiffFile) {
		t.Fatalf("Decode() error = %v, want ErrNotAiffFile", err)
	}
	if !strings.Contains(err.Error(), "sample frames") {
		t.Errorf("Decode() error = %q, want the COMM parse failure", err)
	}
}

func TestDecoder_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   bool
	}{
		{"aiff", []byte("FORM\x00\x00\x00\x00AIFF"), true},
		{"aifc", []byte("FORM\x00\x00\x00\x00AIFC"), true},
		{"wav", []byte("RIFF\x00\x00\x00\x00WAVE"), false},
		{"other form", []byte("FORM\x00\x00\x00\x008SVX"), false},
		{"short", []byte("FORM"), false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := (Decoder{}).Match(tt.header); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newMockSource(2, 24, make([]int, 100))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.Frames() != 50 {
		t.Errorf("Frames() = %d, want 50", src.Frames())
	}
	if src.Encoding() != audio.EncodingPCM24 {
		t.Errorf("Encoding() = %v, want %v", src.Encoding(), audio.EncodingPCM24)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_Encoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		want     audio.Encoding
	}{
		{8, audio.EncodingPCMS8},
		{16, audio.EncodingPCM16},
		{24, audio.EncodingPCM24},
		{32, audio.EncodingPCM32},
	}

	for _, tt := range tests {
		src := newMockSource(1, tt.bitDepth, nil)
		if got := src.Encoding(); got != tt.want {
			t.Errorf("Encoding() for %d bits = %v, want %v", tt.bitDepth, got, tt.want)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	testSamples := []int{0, 16384, -16384, 32767, -32768}
	src := newMockSource(1, 16, testSamples)

	dst := make([]float64, len(testSamples))
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v, want nil or EOF", err)
	}
	if n != len(testSamples) {
		t.Errorf("ReadSamples() n = %d, want %d", n, len(testSamples))
	}

	expected := []float64{0.0, 0.5, -0.5, 32767.0 / 32768.0, -1.0}
	for i := range n {
		if dst[i] != expected[i] {
			t.Errorf("ReadSamples() dst[%d] = %v, want %v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newMockSource(2, 16, make([]int, 100))

	n, err := src.ReadSamples(nil)

	if err != nil {
		t.Errorf("ReadSamples() error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newMockSource(1, 16, []int{100, 200})
	dst := make([]float64, 2)

	n1, err1 := src.ReadSamples(dst)
	if err1 != io.EOF {
		t.Errorf("First ReadSamples() error = %v, want io.EOF", err1)
	}
	if n1 != 2 {
		t.Errorf("First ReadSamples() n = %d, want 2", n1)
	}

	n2, err2 := src.ReadSamples(dst)
	if err2 != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err2)
	}
	if n2 != 0 {
		t.Errorf("Second ReadSamples() n = %d, want 0", n2)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	src := newMockSource(1, 16, []int{100, 200, 300, 400, 500})
	dst := make([]float64, 2)

	reads := []struct {
		n   int
		err error
	}{
		{2, nil},
		{2, nil},
		{1, io.EOF},
	}

	for i, want := range reads {
		n, err := src.ReadSamples(dst)
		if err != want.err {
			t.Errorf("read %d: error = %v, want %v", i, err, want.err)
		}
		if n != want.n {
			t.Errorf("read %d: n = %d, want %d", i, n, want.n)
		}
	}
}

func TestSource_ReadSamples_MultipleReads(t *testing.T) {
	t.Parallel()

	totalSamples := 1000
	samples := make([]int, totalSamples)
	for i := range samples {
		samples[i] = i * 10
	}

	src := newMockSource(2, 16, samples)
	dst := make([]float64, 256)
	totalRead := 0

	for {
		n, err := src.ReadSamples(dst)
		totalRead += n

		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() unexpected error: %v", err)
		}
		if n == 0 {
			t.Fatal("ReadSamples() returned 0 samples without EOF")
		}
	}

	if totalRead != totalSamples {
		t.Errorf("Total samples read = %d, want %d", totalRead, totalSamples)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newMockSource(1, 16, []int{100, 200})
	src.dec.(*mockAiffReader).returnErrors = true

	_, err := src.ReadSamples(make([]float64, 10))

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		input    int
		expected float64
	}{
		{"16-bit max", 16, 32767, 32767.0 / 32768.0},
		{"16-bit min", 16, -32768, -1.0},
		{"24-bit", 24, 8388607, 8388607.0 / 8388608.0},
		{"24-bit half", 24, -4194304, -0.5},
		{"32-bit", 32, 2147483647, 2147483647.0 / 2147483648.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newMockSource(1, tt.bitDepth, []int{tt.input})

			dst := make([]float64, 1)
			n, _ := src.ReadSamples(dst)

			if n != 1 {
				t.Fatalf("ReadSamples() n = %d, want 1", n)
			}
			if dst[0] != tt.expected {
				t.Errorf("ReadSamples() dst[0] = %v, want %v", dst[0], tt.expected)
			}
		})
	}
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotAiffFile, "not an AIFF file"},
		{ErrUnsupportedBitDepth, "unsupported AIFF bit depth"},
		{ErrUnsupportedAiffLayout, "unsupported AIFF layout"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

// Benchmarks

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 4096)
	for i := range samples {
		samples[i] = i * 100
	}

	src := newMockSource(2, 16, samples)
	dst := make([]float64, 1024)

	b.ResetTimer()
	for b.Loop() {
		src.dec.(*mockAiffReader).offset = 0

		for {
			n, err := src.ReadSamples(dst)
			if err == io.EOF || n == 0 {
				break
			}
		}
	}
}

func BenchmarkSource_ReadSamples_LargeBuffer(b *testing.B) {
	samples := make([]int, 65536)
	for i := range samples {
		samples[i] = i
	}

	src := newMockSource(2, 16, samples)
	dst := make([]float64, 8192)

	b.ResetTimer()
	for b.Loop() {
		src.dec.(*mockAiffReader).offset = 0

		for {
			n, err := src.ReadSamples(dst)
			if err == io.EOF || n == 0 {
				break
			}
		}
	}
}
