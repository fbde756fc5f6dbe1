// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ik5/i2sout/audio"
	"github.com/ik5/i2sout/formats/mp3"
)

// ExampleDecoder_Decode shows how to decode an MP3 file.
func ExampleDecoder_Decode() {
	decoder := mp3.Decoder{}

	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decoded MP3: %d Hz, %d channels\n",
		src.SampleRate(), src.Channels())
}

// ExampleDecoder_Decode_playback prepares an MP3 stream for an output
// running at a fractional hardware rate.
func ExampleDecoder_Decode_playback() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	decoder := mp3.Decoder{}
	src, err := decoder.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	// Match the rate the clock dividers actually achieve.
	stereo := audio.NewStereoMixer(audio.NewResampler(src, 43859.65))

	buf := make([]float32, 1024)
	for {
		n, err := stereo.ReadSamples(buf)
		if n > 0 {
			// Pack buf[:n] into frames and write them out.
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("stream drained")
}

// ExampleDecoder_Decode_errorHandling shows error handling for invalid
// MP3 data.
func ExampleDecoder_Decode_errorHandling() {
	decoder := mp3.Decoder{}

	_, err := decoder.Decode(bytes.NewReader([]byte("not an mp3 file")))
	if err != nil {
		fmt.Println("not a playable MP3 stream")
		return
	}

	fmt.Println("decoded")

	// Output:
	// not a playable MP3 stream
}
