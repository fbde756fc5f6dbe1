// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff and is limited to PCM
// 16-bit files. The decoder returns an audio.Source producing float32
// samples in the range [-1.0, 1.0].
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// When the input is not an io.ReadSeeker the whole stream is buffered
// in memory first.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedAiffLayout: the file has no usable format chunk
//
// # Limitations
//
// Note:
//   - AIFF writing is not supported (decoding only)
//   - AIFC compressed variants are not supported
package aiff
