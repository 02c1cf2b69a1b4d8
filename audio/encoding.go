// SPDX-License-Identifier: EPL-2.0

package audio

// Encoding identifies how samples were stored in the source container.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingPCMU8
	EncodingPCMS8
	EncodingPCM16
	EncodingPCM24
	EncodingPCM32
	EncodingFloat
	EncodingDouble
	EncodingMP3
	EncodingVorbis
)

// BitDepth classifies e by bits per sample. Compressed and unrecognised
// encodings report 0.
func (e Encoding) BitDepth() int {
	switch e {
	case EncodingPCMU8, EncodingPCMS8:
		return 8
	case EncodingPCM16:
		return 16
	case EncodingPCM24:
		return 24
	case EncodingPCM32, EncodingFloat:
		return 32
	case EncodingDouble:
		return 64
	default:
		return 0
	}
}

// BitDepth is a function form of Encoding.BitDepth.
func BitDepth(e Encoding) int { return e.BitDepth() }

func (e Encoding) String() string {
	switch e {
	case EncodingPCMU8:
		return "pcm_u8"
	case EncodingPCMS8:
		return "pcm_s8"
	case EncodingPCM16:
		return "pcm_16"
	case EncodingPCM24:
		return "pcm_24"
	case EncodingPCM32:
		return "pcm_32"
	case EncodingFloat:
		return "float"
	case EncodingDouble:
		return "double"
	case EncodingMP3:
		return "mp3"
	case EncodingVorbis:
		return "vorbis"
	default:
		return "unknown"
	}
}

// PCMEncoding maps a signed integer bit depth to its PCM encoding.
func PCMEncoding(bits int) Encoding {
	switch bits {
	case 8:
		return EncodingPCMS8
	case 16:
		return EncodingPCM16
	case 24:
		return EncodingPCM24
	case 32:
		return EncodingPCM32
	default:
		return EncodingUnknown
	}
}
