// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer adapts a source of any channel count to the two interleaved
// channels the I2S transmitter wants. Mono input is duplicated into both
// channels; sources with more than two channels contribute their first
// two and the rest are dropped.
type StereoMixer struct {
	src Source
	tmp []float32
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }

func (m *StereoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with interleaved stereo samples. dst length must
// be even, one left/right pair per frame.
func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if m.src.Channels() == 2 {
		// Pass-through: already stereo
		return m.src.ReadSamples(dst)
	}

	channels := m.src.Channels()
	maxFrames := len(dst) / 2
	samplesNeeded := maxFrames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(m.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		m.tmp = make([]float32, newCap)
	} else if len(m.tmp) < samplesNeeded {
		m.tmp = m.tmp[:samplesNeeded]
	}

	n, err := m.src.ReadSamples(m.tmp[:samplesNeeded])
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	switch channels {
	case 1: // Mono: duplicate into both channels
		for f := 0; f < frames; f++ {
			s := m.tmp[f]
			dst[f*2] = s
			dst[f*2+1] = s
		}
	default: // More than two channels: keep the front pair
		for f := 0; f < frames; f++ {
			baseIdx := f * channels
			dst[f*2] = m.tmp[baseIdx]
			dst[f*2+1] = m.tmp[baseIdx+1]
		}
	}

	return frames * 2, err
}
