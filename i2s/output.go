// SPDX-License-Identifier: EPL-2.0

package i2s

import "sync"

// Defaults mirror the classic configuration: eight buffers of 64 frames
// against a 160 MHz base clock, streaming at 44.1 kHz until told otherwise.
const (
	DefaultBufferCount  = 8
	DefaultBufferLength = 64
	DefaultBaseClock    = 160_000_000
	DefaultRate         = 44100
)

// Config sizes the engine. Zero values select the defaults.
type Config struct {
	// BufferCount is the number of DMA buffers in the ring. Minimum 2: the
	// free queue holds BufferCount-1 entries, and a queue of zero entries
	// could never hand the writer a buffer.
	BufferCount int

	// BufferLength is the size of each buffer in 32-bit frames.
	BufferLength int

	// BaseClock is the frequency, in Hz, the divider pair divides down
	// from. The sample rate is BaseClock/32/(Div1*Div2).
	BaseClock uint32
}

func (c *Config) applyDefaults() {
	if c.BufferCount == 0 {
		c.BufferCount = DefaultBufferCount
	}
	if c.BufferLength == 0 {
		c.BufferLength = DefaultBufferLength
	}
	if c.BaseClock == 0 {
		c.BaseClock = DefaultBaseClock
	}
}

// Output is a single streaming session: the buffer ring, the free queue,
// the write cursor and the clock state, tied to one Hardware. One Output
// owns the transmitter between Begin and End.
type Output struct {
	hw  Hardware
	cfg Config

	// mu stands in for masking the completion interrupt: every touch of
	// the queue, cursor or callback from either context holds it. cond is
	// signaled by the completion handler whenever a buffer lands on the
	// free queue, waking a blocked writer.
	mu   sync.Mutex
	cond *sync.Cond

	ring *ring
	free *freeQueue

	// Write cursor: cur is nil before the first write of a session.
	cur []uint32
	pos int

	callback  func()
	underruns uint32

	rate    uint32 // last requested rate; 0 means unset
	clock   ClockConfig
	running bool
}

// New validates cfg, fills in defaults and binds the engine to hw. The
// returned Output is idle; call Begin to allocate buffers and start the
// hardware.
func New(hw Hardware, cfg Config) (*Output, error) {
	if hw == nil {
		return nil, ErrNilHardware
	}
	cfg.applyDefaults()
	if cfg.BufferCount < 2 {
		return nil, ErrBufferCount
	}
	if cfg.BufferLength < 1 {
		return nil, ErrBufferLength
	}

	o := &Output{hw: hw, cfg: cfg}
	o.cond = sync.NewCond(&o.mu)
	return o, nil
}

// Begin allocates the buffer pool, links the descriptor ring, arms the DMA
// engine and starts transmission at DefaultRate. The free queue starts
// empty and fills as the DMA engine completes its first pass over the ring.
func (o *Output) Begin() error {
	if o.running {
		return ErrStarted
	}

	o.rate = 0
	o.clock = ClockConfig{}
	o.underruns = 0
	o.ring = newRing(o.cfg.BufferCount, o.cfg.BufferLength)
	o.free = newFreeQueue(o.cfg.BufferCount - 1)
	o.cur = nil
	o.pos = 0

	o.hw.ArmTransfer(o.ring.head(), o.onFrameSent)
	o.hw.ConfigurePins()
	o.hw.EnableClock()
	o.hw.Reset()
	o.hw.SetFrameFormat(16, 2)
	o.SetRate(DefaultRate)
	o.hw.StartTransmission()

	o.running = true
	return nil
}

// End stops transmission and releases the buffer pool. The hardware is
// quiesced before any buffer is dropped: once DisarmTransfer returns, no
// completion can touch the ring again. End must not be called while a
// write is in progress.
func (o *Output) End() error {
	if !o.running {
		return ErrNotStarted
	}

	o.hw.StopTransmission()
	o.hw.DisarmTransfer()
	o.hw.Reset()
	o.hw.ReleasePins()

	o.ring = nil
	o.free = nil
	o.cur = nil
	o.pos = 0
	o.running = false
	return nil
}

// SetRate requests a sample rate in Hz. Repeating the current rate is a
// no-op; otherwise the best divider pair is searched for and programmed.
// Integer dividers rarely hit the request exactly; see RealRate.
func (o *Output) SetRate(hz uint32) {
	if hz == o.rate {
		return
	}
	o.rate = hz
	o.clock = solveDividers(o.cfg.BaseClock, hz)
	o.hw.ProgramDividers(o.clock.Div1, o.clock.Div2)
}

// RealRate reports the rate the last programmed divider pair actually
// achieves, or 0 if no rate has been set.
func (o *Output) RealRate() float64 {
	return realRate(o.cfg.BaseClock, o.clock)
}

// Clock returns the last programmed divider pair.
func (o *Output) Clock() ClockConfig {
	return o.clock
}

// SetCallback registers fn to run on every buffer completion, from the
// completion context with the mask held. It must return quickly, never
// block, and never call back into the Output. A nil fn removes the hook.
func (o *Output) SetCallback(fn func()) {
	o.mu.Lock()
	o.callback = fn
	o.mu.Unlock()
}

// Underruns counts how many times the free queue overflowed: a completion
// arrived while the queue already held every refillable buffer, so the
// oldest entry was evicted. A steadily climbing count means the writer is
// not keeping up and silence is going out.
func (o *Output) Underruns() uint32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.underruns
}

// onFrameSent is the buffer-completion handler, invoked by the Hardware
// once per finished buffer. It zeroes the finished buffer so a revisit
// before refill transmits silence, then queues it for the writer. Runs
// entirely under the mask; no allocation, never blocks.
func (o *Output) onFrameSent(finished *Descriptor) {
	o.mu.Lock()

	clear(finished.Buf)
	if o.free.full() {
		// Full queue after a completion means a whole ring rotation passed
		// with no write: an underrun. Drop the least recently finished
		// buffer to keep the most recent completions available.
		o.free.pop()
		o.underruns++
	}
	o.free.push(finished.Buf)

	if o.callback != nil {
		o.callback()
	}
	o.cond.Signal()
	o.mu.Unlock()
}
