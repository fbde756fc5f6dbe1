// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/i2sout/audio"
)

// oggReader is the slice of oggvorbis.Reader the source needs, kept as
// an interface so tests can feed synthetic samples.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	rate     int
	channels int
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// Read fills whole frames only, so trim dst to a multiple of the
	// channel count.
	usable := (len(dst) / s.channels) * s.channels
	if usable == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:usable])
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:      dec,
		rate:     dec.SampleRate(),
		channels: dec.Channels(),
	}, nil
}
