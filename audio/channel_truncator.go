// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MaxOutputChannels is the widest layout the truncator emits.
const MaxOutputChannels = 2

// OutputChannels returns min(channels, MaxOutputChannels).
func OutputChannels(channels int) int {
	return min(channels, MaxOutputChannels)
}

// Truncate copies the first outChannels channels of every frame in src to dst,
// clamping each sample to [-1, 1]. dst must hold at least
// len(src)/srcChannels*outChannels values. It returns the number of values
// written and how many of them were clamped.
func Truncate(dst, src []float64, srcChannels, outChannels int) (n, clipped int) {
	for i, v := range src {
		if i%srcChannels >= outChannels {
			continue
		}

		if v > 1.0 {
			v = 1.0
			clipped++
		} else if v < -1.0 {
			v = -1.0
			clipped++
		}

		dst[n] = v
		n++
	}

	return n, clipped
}

// ChannelTruncator keeps channel 0, and channel 1 when present, of every frame
// read from src, clamping samples on the way through. Extra channels are
// dropped, not mixed.
type ChannelTruncator struct {
	src     Source
	outCh   int
	tmp     []float64
	clipped int64
}

func NewChannelTruncator(src Source) *ChannelTruncator {
	return &ChannelTruncator{
		src:   src,
		outCh: OutputChannels(src.Channels()),
	}
}

func (t *ChannelTruncator) SampleRate() int    { return t.src.SampleRate() }
func (t *ChannelTruncator) Channels() int      { return t.outCh }
func (t *ChannelTruncator) Frames() int64      { return t.src.Frames() }
func (t *ChannelTruncator) Encoding() Encoding { return t.src.Encoding() }

// Clipped is the running count of samples clamped to [-1, 1].
func (t *ChannelTruncator) Clipped() int64 { return t.clipped }

func (t *ChannelTruncator) Close() error {
	err := t.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples reads up to len(dst)/Channels() frames from the source.
// dst length should be a multiple of Channels().
func (t *ChannelTruncator) ReadSamples(dst []float64) (int, error) {
	srcCh := t.src.Channels()
	if srcCh <= 0 {
		return 0, ErrInvalidChannels
	}
	if len(dst)%t.outCh != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	samplesNeeded := len(dst) / t.outCh * srcCh

	// Sized once on the first read, then only resliced
	if cap(t.tmp) < samplesNeeded {
		t.tmp = make([]float64, samplesNeeded)
	}
	t.tmp = t.tmp[:samplesNeeded]

	n, err := t.src.ReadSamples(t.tmp)
	if n == 0 {
		return 0, err
	}

	written, clipped := Truncate(dst, t.tmp[:n], srcCh, t.outCh)
	t.clipped += int64(clipped)

	return written, err
}
