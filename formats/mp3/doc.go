// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding for playback pipelines.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams.
// The decoder returns an audio.Source producing float32 samples in the
// range [-1.0, 1.0], ready for resampling and output.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
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
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: always 2 (go-mp3 upmixes mono streams)
//   - Sample rate: taken from the MP3 file, typically 44.1kHz or 48kHz
//
// # Playback
//
// For playback through an I2S output, feed the source through the
// audio package so its rate matches the achieved hardware rate:
//
//	src, _ := decoder.Decode(file)
//	stereo := audio.NewStereoMixer(audio.NewResampler(src, out.RealRate()))
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Seeking is not exposed through the audio.Source interface
package mp3
