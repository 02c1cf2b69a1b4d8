// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// PCM16WAV builds a canonical 44-byte-header 16-bit PCM WAV file.
func PCM16WAV(sampleRate, channels int, samples []int16) []byte {
	data := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(data, binary.LittleEndian, s)
	}

	return buildWAV(wavFormatPCM, sampleRate, channels, 16, data.Bytes())
}

// FloatWAV builds an IEEE float WAV file, 64-bit when bits is 64 and 32-bit
// otherwise.
func FloatWAV(sampleRate, channels, bits int, samples []float64) []byte {
	data := new(bytes.Buffer)
	for _, s := range samples {
		if bits == 64 {
			binary.Write(data, binary.LittleEndian, math.Float64bits(s))
		} else {
			binary.Write(data, binary.LittleEndian, math.Float32bits(float32(s)))
		}
	}

	if bits != 64 {
		bits = 32
	}

	return buildWAV(wavFormatFloat, sampleRate, channels, bits, data.Bytes())
}

func buildWAV(format, sampleRate, channels, bits int, data []byte) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bitsPerSample := uint16(bits)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(len(data))

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(format))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bitsPerSample)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(data)

	return buf.Bytes()
}
