// SPDX-License-Identifier: EPL-2.0

package i2s

// freeQueue is the handoff between the DMA completion context and the
// writer: a bounded FIFO of buffers that have been fully transmitted and
// are safe to refill. Capacity is one less than the buffer count, because
// one buffer is always in flight on the DMA side. Push happens only from
// the completion context, pop only from the writer, both under the
// Output's mask.
type freeQueue struct {
	items [][]uint32
	count int
}

func newFreeQueue(capacity int) *freeQueue {
	return &freeQueue{items: make([][]uint32, capacity)}
}

func (q *freeQueue) len() int {
	return q.count
}

func (q *freeQueue) full() bool {
	return q.count >= len(q.items)
}

// push appends a buffer. The caller must have made room first; pushing
// into a full queue drops the reference on the floor.
func (q *freeQueue) push(buf []uint32) {
	if q.full() {
		return
	}
	q.items[q.count] = buf
	q.count++
}

// pop removes and returns the oldest buffer, or nil when empty.
func (q *freeQueue) pop() []uint32 {
	if q.count == 0 {
		return nil
	}
	buf := q.items[0]
	q.count--
	for i := 0; i < q.count; i++ {
		q.items[i] = q.items[i+1]
	}
	q.items[q.count] = nil
	return buf
}
