// SPDX-License-Identifier: EPL-2.0

package i2sout_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/ik5/i2sout"
	"github.com/ik5/i2sout/formats/wav"
	"github.com/ik5/i2sout/i2s"
	"github.com/ik5/i2sout/i2s/loopback"
)

// Example decodes a WAV file and plays it through a loopback output.
func Example() {
	// A short mono file, built in memory for the example.
	var file bytes.Buffer
	samples := make([]int16, 800)
	for i := range samples {
		samples[i] = int16(i % 100)
	}
	if err := wav.WriteWAV16(&file, 8000, samples); err != nil {
		log.Fatal(err)
	}

	// Loopback hardware delivers transmitted frames to a writer.
	var captured bytes.Buffer
	hw := loopback.New(&captured, loopback.Config{Speed: 100})

	out, err := i2s.New(hw, i2s.Config{BufferCount: 4, BufferLength: 16})
	if err != nil {
		log.Fatal(err)
	}

	if err := out.Begin(); err != nil {
		log.Fatal(err)
	}
	defer out.End()

	decoder := wav.Decoder{}
	src, err := decoder.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	fmt.Printf("source: %d Hz, %d channel(s)\n", src.SampleRate(), src.Channels())
	fmt.Printf("output rate: %.2f Hz\n", out.RealRate())

	frames, err := i2sout.Play(out, src, 4096)
	if err != nil {
		log.Fatal(err)
	}

	if frames > 0 {
		fmt.Println("playback finished")
	}

	// Output:
	// source: 8000 Hz, 1 channel(s)
	// output rate: 43859.65 Hz
	// playback finished
}
