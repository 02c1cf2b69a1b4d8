package wav

import "errors"

var (
	ErrNotWavFile              = errors.New("not a WAV file")
	ErrUnsupportedWavLayout    = errors.New("unsupported WAV layout")
	ErrUnsupportedSampleFormat = errors.New("unsupported WAV sample format")
	ErrUnsupportedWavChunks    = errors.New("unsupported WAV chunks")
	ErrInvalidWriterFormat     = errors.New("writer needs a positive sample rate and 1 or 2 channels")
)
