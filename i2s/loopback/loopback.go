// SPDX-License-Identifier: EPL-2.0

package loopback

import (
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/ik5/i2sout/i2s"
)

// Config tunes the simulated hardware. Zero values select the defaults.
type Config struct {
	// BaseClock is the simulated base frequency in Hz dividers divide down
	// from; it should match the i2s.Config handed to the engine. Defaults
	// to i2s.DefaultBaseClock.
	BaseClock uint32

	// Speed scales the simulated clock: 1 paces buffer completions in real
	// time, larger values render faster than real time. Defaults to 1.
	Speed float64
}

// Hardware emulates an I2S transmitter and its DMA engine in software,
// capturing everything it "transmits" to an io.Writer.
type Hardware struct {
	w   io.Writer
	cfg Config

	mu      sync.Mutex
	head    *i2s.Descriptor
	onFrame func(*i2s.Descriptor)
	clock   i2s.ClockConfig
	running bool
	stop    chan struct{}
	wg      sync.WaitGroup

	frames  uint64
	err     error
	scratch []byte
}

// New creates a loopback Hardware writing the transmitted PCM stream to w.
// Each 32-bit frame is written as two little-endian int16 samples, left
// channel first.
func New(w io.Writer, cfg Config) *Hardware {
	if cfg.BaseClock == 0 {
		cfg.BaseClock = i2s.DefaultBaseClock
	}
	if cfg.Speed == 0 {
		cfg.Speed = 1
	}
	return &Hardware{w: w, cfg: cfg}
}

// ConfigurePins is a no-op: there are no pins to mux in software.
func (h *Hardware) ConfigurePins() {}

// ReleasePins is a no-op.
func (h *Hardware) ReleasePins() {}

// EnableClock is a no-op.
func (h *Hardware) EnableClock() {}

// Reset is a no-op.
func (h *Hardware) Reset() {}

// SetFrameFormat is a no-op: the capture format is fixed at 16-bit dual
// channel, which is the only format the engine requests.
func (h *Hardware) SetFrameFormat(bits, channels int) {}

// ArmTransfer stores the ring head and the completion handler.
func (h *Hardware) ArmTransfer(first *i2s.Descriptor, onFrame func(*i2s.Descriptor)) {
	h.mu.Lock()
	h.head = first
	h.onFrame = onFrame
	h.mu.Unlock()
}

// DisarmTransfer stops the DMA goroutine if it is still running and
// detaches the ring. No completion is delivered after it returns.
func (h *Hardware) DisarmTransfer() {
	h.StopTransmission()
	h.mu.Lock()
	h.head = nil
	h.onFrame = nil
	h.mu.Unlock()
}

// ProgramDividers records the divider pair; the DMA goroutine derives its
// pacing from it on every buffer.
func (h *Hardware) ProgramDividers(div1, div2 uint8) {
	h.mu.Lock()
	h.clock = i2s.ClockConfig{Div1: div1, Div2: div2}
	h.mu.Unlock()
}

// StartTransmission launches the DMA goroutine at the armed ring head.
func (h *Hardware) StartTransmission() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.running || h.head == nil {
		return
	}
	h.running = true
	h.stop = make(chan struct{})
	h.wg.Add(1)
	go h.run(h.head, h.onFrame, h.stop)
}

// StopTransmission stops the DMA goroutine and waits for it to finish the
// buffer in flight.
func (h *Hardware) StopTransmission() {
	h.mu.Lock()
	if !h.running {
		h.mu.Unlock()
		return
	}
	h.running = false
	close(h.stop)
	h.mu.Unlock()
	h.wg.Wait()
}

// Frames reports how many frames have been transmitted so far.
func (h *Hardware) Frames() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Err returns the first write error the capture hit, if any.
func (h *Hardware) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Hardware) rate() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clock.Div1 == 0 || h.clock.Div2 == 0 {
		return 0
	}
	return float64(h.cfg.BaseClock) / 32 / float64(h.clock.Div1) / float64(h.clock.Div2)
}

func (h *Hardware) run(cur *i2s.Descriptor, onFrame func(*i2s.Descriptor), stop chan struct{}) {
	defer h.wg.Done()

	for {
		rate := h.rate()
		if rate <= 0 {
			// Clock not programmed yet; idle briefly rather than spin.
			rate = float64(i2s.DefaultRate)
		}
		period := time.Duration(float64(cur.Length) / rate / h.cfg.Speed * float64(time.Second))

		select {
		case <-stop:
			return
		case <-time.After(period):
		}

		h.transmit(cur)
		onFrame(cur)
		cur = cur.Next
	}
}

// transmit copies one buffer to the capture writer as little-endian PCM.
func (h *Hardware) transmit(d *i2s.Descriptor) {
	if len(h.scratch) < d.Length*4 {
		h.scratch = make([]byte, d.Length*4)
	}
	// A little-endian uint32 frame is exactly the left int16 followed by
	// the right int16, each little-endian.
	for i, frame := range d.Buf {
		binary.LittleEndian.PutUint32(h.scratch[i*4:], frame)
	}

	_, err := h.w.Write(h.scratch[:d.Length*4])

	h.mu.Lock()
	h.frames += uint64(d.Length)
	if err != nil && h.err == nil {
		h.err = err
	}
	h.mu.Unlock()
}
