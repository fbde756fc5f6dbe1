// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/i2sout/audio"
)

// pcmReader is the slice of gomp3.Decoder the source needs, kept as an
// interface so tests can feed synthetic PCM without a real MP3 stream.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec  pcmReader
	rate int
	raw  []byte
}

func (s *source) SampleRate() int { return s.rate }

// Channels is always 2: go-mp3 upmixes mono streams to interleaved stereo.
func (s *source) Channels() int { return 2 }

func (s *source) Close() error { return nil }

func (s *source) BufSize() int { return cap(s.raw) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) * 2
	if cap(s.raw) < want {
		s.raw = make([]byte, want)
	}
	s.raw = s.raw[:want]

	n, err := s.dec.Read(s.raw)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.raw[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:  dec,
		rate: dec.SampleRate(),
		raw:  make([]byte, 8192),
	}, nil
}
