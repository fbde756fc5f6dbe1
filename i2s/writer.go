// SPDX-License-Identifier: EPL-2.0

package i2s

// WriteSample appends one 32-bit frame to the stream, blocking while no
// buffer is free. Call it at (on average) at least the configured sample
// rate; calling faster simply suspends until the DMA engine frees room.
// The wait has no timeout: it relies on the hardware continuing to
// complete buffers, which holds whenever transmission is running. Always
// returns true.
func (o *Output) WriteSample(frame uint32) bool {
	o.mu.Lock()
	if o.pos == o.cfg.BufferLength || o.cur == nil {
		for o.free.len() == 0 {
			o.cond.Wait()
		}
		o.cur = o.free.pop()
		o.pos = 0
	}
	o.cur[o.pos] = frame
	o.pos++
	o.mu.Unlock()
	return true
}

// TryWriteSample appends one frame without blocking. When a fresh buffer
// is needed and none is free it returns false immediately, writing nothing
// and leaving the cursor untouched.
func (o *Output) TryWriteSample(frame uint32) bool {
	o.mu.Lock()
	if o.pos == o.cfg.BufferLength || o.cur == nil {
		if o.free.len() == 0 {
			o.mu.Unlock()
			return false
		}
		o.cur = o.free.pop()
		o.pos = 0
	}
	o.cur[o.pos] = frame
	o.pos++
	o.mu.Unlock()
	return true
}

// WriteStereo packs a left and right 16-bit sample into one frame, right
// channel in the high half, and appends it with WriteSample.
func (o *Output) WriteStereo(left, right int16) bool {
	frame := uint32(uint16(right))<<16 | uint32(uint16(left))
	return o.WriteSample(frame)
}

// Full reports whether a write would block right now: the current buffer
// is exhausted or absent and the free queue is empty.
func (o *Output) Full() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return (o.pos == o.cfg.BufferLength || o.cur == nil) && o.free.len() == 0
}

// Empty reports whether the consumer has run dry: every refillable buffer
// sits on the free queue, meaning the DMA engine has been fed nothing for
// at least a full ring rotation. Useful for detecting sustained underrun.
func (o *Output) Empty() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.free.len() >= o.cfg.BufferCount-1
}

// Available estimates how many frames can be written without blocking, as
// (BufferCount - queue length) * BufferLength.
func (o *Output) Available() int16 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return int16((o.cfg.BufferCount - o.free.len()) * o.cfg.BufferLength)
}
