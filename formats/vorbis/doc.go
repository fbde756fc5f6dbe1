// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go Vorbis
// decoder. Vorbis already produces float samples in [-1.0, 1.0], so
// decoded data passes through to the audio.Source interface without
// conversion.
//
// # Decoding Ogg Vorbis Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: taken from the stream (commonly 1 or 2)
//   - Sample rate: taken from the stream
//
// ReadSamples only fills whole frames: with a stereo stream and an odd
// sized destination the last slot stays untouched.
//
// # Limitations
//
// Note:
//   - Vorbis writing is not supported (decoding only)
//   - Chained Ogg streams play as a single stream
package vorbis
