package i2sout

import (
	"fmt"
	"io"

	"github.com/ik5/i2sout/audio"
	"github.com/ik5/i2sout/i2s"
	"github.com/ik5/i2sout/utils"
)

// Play streams an audio source through a started output until the
// source is exhausted.
//
// It builds the standard playback pipeline:
//  1. Resamples the source to the rate the clock dividers actually
//     achieve, so pitch stays correct on fractional rates
//  2. Forces an interleaved stereo layout
//  3. Converts float32 samples to 16-bit PCM frames
//
// Play blocks while the transfer queue is full, pacing the caller to
// the hardware. It returns the number of stereo frames written. The
// source is not closed.
//
// Example:
//
//	out, _ := i2s.New(hw, i2s.Config{})
//	out.Begin()
//	defer out.End()
//
//	src, _ := decoder.Decode(file)
//	frames, err := i2sout.Play(out, src, 4096)
func Play(out *i2s.Output, src audio.Source, bufSize int) (int, error) {
	rate := out.RealRate()
	if rate == 0 {
		return 0, i2s.ErrNotStarted
	}

	// Whole stereo frames only. An odd value rounds down, so anything
	// below one frame falls back to the default.
	bufSize &^= 1
	if bufSize < 2 {
		bufSize = 4096
	}

	stereo := audio.NewStereoMixer(audio.NewResampler(src, rate))
	buf := make([]float32, bufSize)

	frames := 0
	for {
		n, err := stereo.ReadSamples(buf)
		for i := 0; i+1 < n; i += 2 {
			left := utils.Float32ToInt16(buf[i])
			right := utils.Float32ToInt16(buf[i+1])
			out.WriteStereo(left, right)
			frames++
		}

		if err == io.EOF {
			return frames, nil
		}

		if err != nil {
			return frames, fmt.Errorf("%w", err)
		}
	}
}
