package flac

import "errors"

var (
	// ErrUnsupportedBitDepth indicates a sample size outside 1..32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrChannelMismatch indicates a frame whose subframe count differs from STREAMINFO
	ErrChannelMismatch = errors.New("FLAC frame channel count differs from stream")
)
