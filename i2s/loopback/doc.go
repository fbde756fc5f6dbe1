// SPDX-License-Identifier: EPL-2.0

// Package loopback provides a pure-software i2s.Hardware implementation.
//
// Instead of driving real silicon, loopback runs the DMA cycle on a
// goroutine: it walks the descriptor ring at the sample rate implied by the
// programmed dividers, copies each transmitted buffer to an io.Writer as
// little-endian 16-bit PCM (left sample first), and delivers the buffer
// completion exactly the way a DMA interrupt would. This makes it both the
// test vehicle for the engine and a small offline renderer: capture the
// stream to a file and wrap it in a WAV header to listen to it.
//
//	var captured bytes.Buffer
//	hw := loopback.New(&captured, loopback.Config{Speed: 50})
//	out, _ := i2s.New(hw, i2s.Config{})
//	out.Begin()
//	// ... write frames ...
//	out.End()
//
// Like the real DMA engine, loopback reads buffers without synchronizing
// with the writer; an application that stalls mid-buffer can therefore see
// torn frames in the capture, just as it would hear them on hardware. For
// the same reason the race detector can flag the transmit goroutine when a
// very high Speed lets it lap a writer still filling its current buffer.
// That overlap means audible corruption on real hardware too, so the
// simulator reports it as torn data rather than hiding it behind a lock.
package loopback
