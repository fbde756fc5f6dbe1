// SPDX-License-Identifier: EPL-2.0

package i2s

// mockHardware is a test double for the Hardware interface. It records
// every call so lifecycle ordering can be asserted, and exposes Complete
// to step the simulated DMA engine through the ring one buffer at a time,
// synchronously, the way the completion interrupt would.
type mockHardware struct {
	calls []string

	pinsConfigured int
	pinsReleased   int
	clockEnabled   int
	resets         int
	programCalls   int
	starts         int
	stops          int

	bits     int
	channels int
	div1     uint8
	div2     uint8

	armed   bool
	cur     *Descriptor
	onFrame func(*Descriptor)
}

func newMockHardware() *mockHardware {
	return &mockHardware{}
}

func (h *mockHardware) record(call string) {
	h.calls = append(h.calls, call)
}

func (h *mockHardware) ConfigurePins() {
	h.record("ConfigurePins")
	h.pinsConfigured++
}

func (h *mockHardware) ReleasePins() {
	h.record("ReleasePins")
	h.pinsReleased++
}

func (h *mockHardware) EnableClock() {
	h.record("EnableClock")
	h.clockEnabled++
}

func (h *mockHardware) Reset() {
	h.record("Reset")
	h.resets++
}

func (h *mockHardware) SetFrameFormat(bits, channels int) {
	h.record("SetFrameFormat")
	h.bits = bits
	h.channels = channels
}

func (h *mockHardware) ArmTransfer(first *Descriptor, onFrame func(*Descriptor)) {
	h.record("ArmTransfer")
	h.armed = true
	h.cur = first
	h.onFrame = onFrame
}

func (h *mockHardware) DisarmTransfer() {
	h.record("DisarmTransfer")
	h.armed = false
	h.cur = nil
	h.onFrame = nil
}

func (h *mockHardware) ProgramDividers(div1, div2 uint8) {
	h.record("ProgramDividers")
	h.programCalls++
	h.div1 = div1
	h.div2 = div2
}

func (h *mockHardware) StartTransmission() {
	h.record("StartTransmission")
	h.starts++
}

func (h *mockHardware) StopTransmission() {
	h.record("StopTransmission")
	h.stops++
}

// Complete finishes the descriptor the simulated DMA engine is on,
// delivering the completion exactly once, then advances to the next one.
func (h *mockHardware) Complete() {
	if !h.armed || h.cur == nil {
		return
	}
	finished := h.cur
	h.cur = h.cur.Next
	h.onFrame(finished)
}

// CompleteN delivers n consecutive buffer completions.
func (h *mockHardware) CompleteN(n int) {
	for i := 0; i < n; i++ {
		h.Complete()
	}
}
