// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

var errNegativeOffset = errors.New("negative seek offset")

// SeekBuffer is an in-memory io.WriteSeeker, for writers that patch headers
// after the payload is written.
type SeekBuffer struct {
	data []byte
	pos  int
}

func (b *SeekBuffer) Write(p []byte) (int, error) {
	end := b.pos + len(p)
	if end > len(b.data) {
		if end > cap(b.data) {
			grown := make([]byte, end, 2*end)
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}

	copy(b.data[b.pos:end], p)
	b.pos = end

	return len(p), nil
}

func (b *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.pos) + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}

	if abs < 0 {
		return 0, errNegativeOffset
	}

	b.pos = int(abs)
	return abs, nil
}

// Bytes returns everything written so far.
func (b *SeekBuffer) Bytes() []byte { return b.data }

func (b *SeekBuffer) Len() int { return len(b.data) }
