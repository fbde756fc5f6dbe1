// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pipeline primitives that feed the I2S engine.
//
// The I2S transmitter consumes interleaved stereo frames at whatever rate
// its integer clock dividers actually achieve. Decoded audio rarely arrives
// in that shape, so this package supplies the adapters between the two:
//   - Source interface for decoded audio input
//   - Resampler for conversion to the achieved (fractional) hardware rate
//   - StereoMixer for pinning the channel count to the two the transmitter
//     always wants
//   - Registry for looking decoders up by file extension
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement it, so any decoded stream can be chained
// through the resampler and mixer straight into the engine.
//
// # Resampling to the Hardware Rate
//
// Because the transmitter's sample clock is derived from a base frequency
// through two six-bit dividers, the achieved rate is usually fractional
// (44100 Hz requested, 43859.65 Hz achieved). The Resampler therefore
// takes a float64 target rate; pass it the Output's RealRate:
//
//	resampler := audio.NewResampler(source, out.RealRate())
//
// Conversion uses cubic interpolation with basic anti-aliasing filtering
// when downsampling.
//
// # Channel Layout
//
// The StereoMixer emits exactly two channels regardless of the input:
// mono input is duplicated into both channels, and sources with more than
// two channels contribute their first two.
//
//	stereo := audio.NewStereoMixer(resampler)
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0] throughout the pipeline; the final
// conversion to the engine's packed 16-bit frames happens at the write
// boundary (see the root package's Play).
//
// # Error Handling
//
// Pipeline reads return io.EOF when the stream ends; any other error
// indicates a problem with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
