// SPDX-License-Identifier: EPL-2.0

// Package i2s implements a DMA-driven I2S audio output engine.
//
// The engine streams a continuous sequence of 32-bit frames (two packed
// 16-bit channel samples) out of an I2S transmitter. The transmitter's DMA
// engine autonomously drains a circular ring of fixed-size buffers at the
// configured sample clock, while application code refills buffers through
// the write API. The two sides meet at a bounded free queue: every time the
// DMA engine finishes a buffer, the completion handler zero-fills it and
// hands it back; the writer pulls buffers from the queue as it needs room
// for more frames.
//
// # Hardware Abstraction
//
// The actual silicon sits behind the Hardware interface. Pin muxing,
// peripheral clocks, register layouts and the interrupt controller are all
// the platform implementation's business; the engine only issues semantic
// operations such as ProgramDividers and StartTransmission. The loopback
// subpackage ships a pure-software Hardware that runs the DMA cycle on a
// goroutine and captures the transmitted stream, useful for tests and
// offline rendering.
//
// # Basic Usage
//
//	out, err := i2s.New(hw, i2s.Config{})
//	if err != nil {
//	    // Handle error
//	}
//	if err := out.Begin(); err != nil {
//	    // Handle error
//	}
//	defer out.End()
//
//	out.SetRate(48000)
//	for {
//	    out.WriteStereo(left, right) // blocks when no buffer is free
//	}
//
// # Underrun Behavior
//
// If the application falls behind, the engine transmits silence rather than
// stale data: each buffer is zeroed the moment the DMA engine finishes with
// it. When the free queue saturates (a full ring rotation with no writes)
// the oldest entry is evicted to make room; Underruns reports how often
// that happened.
//
// # Concurrency
//
// The completion handler runs in whatever context the Hardware delivers it
// from (a real interrupt, or the loopback goroutine). All shared state is
// guarded by an internal mutex standing in for interrupt masking. Write
// calls are meant to be issued from a single application goroutine; End
// must not be called while a write is in progress.
package i2s
