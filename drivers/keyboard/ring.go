package keyboard

import "github.com/SeraphinaAstra/VibeOS/debug"

// RingSize is the capacity of the input queue.
const RingSize = 256

// Ring is a fixed FIFO of input bytes. When full, new bytes are dropped;
// the producer is not told.
type Ring struct {
	buf        [RingSize]byte
	head, tail int
	count      int
}

// Put appends c and reports whether there was room for it.
func (r *Ring) Put(c byte) bool {
	if r.count >= len(r.buf) {
		return false
	}
	r.buf[r.tail] = c
	r.tail = (r.tail + 1) % len(r.buf)
	r.count++
	debug.Assert(r.count <= len(r.buf), "ring: count out of range")
	return true
}

// Get removes and returns the oldest byte.
func (r *Ring) Get() (byte, bool) {
	if r.count == 0 {
		return 0, false
	}
	c := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return c, true
}

func (r *Ring) Len() int    { return r.count }
func (r *Ring) Empty() bool { return r.count == 0 }
func (r *Ring) Full() bool  { return r.count == len(r.buf) }
