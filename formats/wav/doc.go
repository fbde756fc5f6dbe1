// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding builds on github.com/go-audio/wav and is limited to PCM
// 16-bit files, mono or stereo, at any sample rate. Encoding writes
// PCM 16-bit files directly with a fixed 44 byte header.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing samples as float32
// values in the range [-1.0, 1.0]. When the input is not an
// io.ReadSeeker the whole stream is buffered in memory first.
//
// # Writing WAV Files
//
// WritePCM16 writes interleaved samples with any channel count:
//
//	frames := []int16{left0, right0, left1, right1}
//	file, _ := os.Create("capture.wav")
//	err := wav.WritePCM16(file, 44100, 2, frames)
//
// WriteWAV16 is the mono shorthand. Written data is chunked, so large
// captures do not need a second in-memory copy.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: the file has no usable format chunk
//   - ErrInvalidChannelCount: WritePCM16 given fewer than one channel
package wav
