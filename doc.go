// SPDX-License-Identifier: EPL-2.0

// Package i2sout provides a buffered I2S audio output engine with a
// decoding and resampling pipeline in front of it.
//
// The core lives in the i2s subpackage: an Output engine that owns a
// ring of DMA style transfer buffers, refills them from a free queue,
// and blocks writers while the hardware drains. Hardware access goes
// through the i2s.Hardware interface; i2s/loopback provides a software
// implementation that delivers transmitted frames to an io.Writer,
// useful for tests and capture.
//
// # Quick Start
//
// The simplest way to play a file is Play:
//
//	hw := loopback.New(os.Stdout, loopback.Config{})
//	out, _ := i2s.New(hw, i2s.Config{})
//	out.Begin()
//	defer out.End()
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//	defer src.Close()
//
//	frames, err := i2sout.Play(out, src, 4096)
//
// Play resamples the source to out.RealRate(), the rate the integer
// clock dividers actually achieve, and writes interleaved stereo
// frames until the source ends.
//
// # Audio Processing Pipeline
//
// For more control, build the pipeline from the audio subpackage:
//
//	resampled := audio.NewResampler(source, out.RealRate())
//	stereo := audio.NewStereoMixer(resampled)
//
//	buf := make([]float32, 4096)
//	n, err := stereo.ReadSamples(buf)
//
// # Format Decoders
//
// Each format has its own decoder returning an audio.Source:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Decoders can be looked up by file extension through audio.Registry.
//
// # Writing Samples Directly
//
// Skip the pipeline and write frames yourself:
//
//	out.WriteStereo(left, right) // blocks while the queue is full
//	out.TryWriteSample(frame)    // never blocks
//
// See the i2s package documentation for queue semantics, underrun
// behavior and the exact frame layout.
package i2sout
