// SPDX-License-Identifier: EPL-2.0

package i2s

// Descriptor describes one DMA transfer: a fixed-size sample buffer plus a
// link to the next descriptor. The descriptors form a ring the DMA engine
// walks forever; the engine links them once at initialization and never
// reorders them.
type Descriptor struct {
	// BlockSize and Length are both the buffer size in 32-bit words. Every
	// buffer is always transmitted in full (silence counts as data), so the
	// two never differ here.
	BlockSize int
	Length    int

	// Owner and EOF mirror the hardware descriptor bits. The DMA engine
	// owns every descriptor and each buffer ends a frame; both stay true
	// for the life of the ring.
	Owner bool
	EOF   bool

	// Buf is the sample data this descriptor transmits.
	Buf []uint32

	// Next links the ring; the last descriptor points back at the first.
	Next *Descriptor
}

// ring owns the buffer pool and its descriptors. Created in Begin, released
// in End after the DMA engine has been fully disarmed.
type ring struct {
	descs []Descriptor
}

// newRing allocates count zero-filled buffers of length words each and
// links one descriptor per buffer into a circle.
func newRing(count, length int) *ring {
	r := &ring{descs: make([]Descriptor, count)}
	for i := range r.descs {
		r.descs[i] = Descriptor{
			BlockSize: length,
			Length:    length,
			Owner:     true,
			EOF:       true,
			Buf:       make([]uint32, length),
			Next:      &r.descs[(i+1)%count],
		}
	}
	return r
}

// head returns the descriptor handed to the DMA engine as its entry point.
func (r *ring) head() *Descriptor {
	return &r.descs[0]
}
