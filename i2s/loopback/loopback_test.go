// SPDX-License-Identifier: EPL-2.0

package loopback

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/ik5/i2sout/i2s"
)

func TestLoopback_EndToEnd(t *testing.T) {
	t.Parallel()

	var captured bytes.Buffer
	hw := New(&captured, Config{Speed: 20})

	out, err := i2s.New(hw, i2s.Config{BufferCount: 4, BufferLength: 16})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := out.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	// Stream a recognizable ramp. The DMA side may interleave silent
	// buffers while the writer is still catching up, but every written
	// frame must appear exactly once and in order.
	const total = 128
	for i := 0; i < total; i++ {
		out.WriteSample(uint32(i) + 1)
	}

	// Let the DMA engine drain what the writer queued before stopping:
	// once the eviction counter has gone a full ring rotation past
	// saturation, every written buffer has been transmitted.
	deadline := time.Now().Add(5 * time.Second)
	for out.Underruns() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if err := out.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	if err := hw.Err(); err != nil {
		t.Fatalf("capture error = %v", err)
	}
	if hw.Frames() == 0 {
		t.Fatal("Frames() = 0, nothing was transmitted")
	}

	data := captured.Bytes()
	if len(data)%4 != 0 {
		t.Fatalf("captured %d bytes, want a multiple of 4", len(data))
	}

	var ramp []uint32
	for i := 0; i+4 <= len(data); i += 4 {
		frame := binary.LittleEndian.Uint32(data[i:])
		if frame != 0 {
			ramp = append(ramp, frame)
		}
	}

	if len(ramp) != total {
		t.Fatalf("captured %d written frames, want %d", len(ramp), total)
	}
	for i, frame := range ramp {
		if frame != uint32(i)+1 {
			t.Fatalf("frame %d = %d, want %d (stream out of order)", i, frame, i+1)
		}
	}
}

func TestLoopback_StereoByteOrder(t *testing.T) {
	t.Parallel()

	var captured bytes.Buffer
	hw := New(&captured, Config{Speed: 20})

	out, err := i2s.New(hw, i2s.Config{BufferCount: 3, BufferLength: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := out.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	out.WriteStereo(100, -50)
	for i := 0; i < 3; i++ {
		out.WriteStereo(0, 0) // pad the buffer so it gets transmitted
	}

	deadline := time.Now().Add(5 * time.Second)
	for out.Underruns() < 4 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if err := out.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	// Find the written frame in the capture: left sample first, both
	// little-endian.
	data := captured.Bytes()
	idx := -1
	for i := 0; i+4 <= len(data); i += 4 {
		if binary.LittleEndian.Uint32(data[i:]) != 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("written frame not found in capture")
	}

	left := int16(binary.LittleEndian.Uint16(data[idx:]))
	right := int16(binary.LittleEndian.Uint16(data[idx+2:]))
	if left != 100 || right != -50 {
		t.Errorf("captured (left, right) = (%d, %d), want (100, -50)", left, right)
	}
}

func TestLoopback_StopDeliversNoMoreCompletions(t *testing.T) {
	t.Parallel()

	hw := New(&bytes.Buffer{}, Config{Speed: 100})
	out, err := i2s.New(hw, i2s.Config{BufferCount: 3, BufferLength: 8})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := out.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := out.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	frames := hw.Frames()
	time.Sleep(20 * time.Millisecond)
	if hw.Frames() != frames {
		t.Error("frames still being transmitted after End()")
	}
}
