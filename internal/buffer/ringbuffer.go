// Package buffer implements a fixed-capacity circular buffer for
// timestamped sensor readings. A full buffer rejects new writes rather
// than overwriting unread data; overflow is recorded in a sticky flag
// so data loss is detectable even when individual write results go
// unchecked. The buffer is single-owner and not safe for concurrent
// use; callers needing shared access must synchronize externally.
package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned by Write when no free slot remains.
	ErrFull = errors.New("buffer is full")
	// ErrEmpty is returned by Read and Peek when no reading is stored.
	ErrEmpty = errors.New("buffer is empty")
	// ErrClosed is returned when an operation is invoked on a nil or
	// already-closed buffer.
	ErrClosed = errors.New("buffer is closed")
)

// Status reports the buffer's condition. Overflowed is sticky: once a
// write has been rejected it stays set until Clear.
type Status struct {
	Full       bool
	Empty      bool
	Overflowed bool
}

// State is a read-only snapshot of the buffer internals for
// diagnostics. Rendering it is the caller's business; the buffer never
// prints.
type State struct {
	Head     int
	Tail     int
	Count    int
	Capacity int
	Status   Status
}

// RingBuffer stores up to a fixed number of readings in FIFO order.
// head is the next slot to write, tail the oldest unread slot. When
// head == tail the buffer is either empty or completely full; count is
// the authoritative tie-breaker.
type RingBuffer struct {
	data       []Reading
	head       int
	tail       int
	count      int
	overflowed bool
}

// New allocates a buffer holding exactly capacity readings.
func New(capacity int) (*RingBuffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("invalid capacity %d: must be at least 1", capacity)
	}
	return &RingBuffer{data: make([]Reading, capacity)}, nil
}

// valid reports whether the buffer can be operated on. A nil receiver
// and a closed buffer both fail; every method treats them as the
// absent-buffer case instead of panicking.
func (b *RingBuffer) valid() bool {
	return b != nil && b.data != nil
}

// Write copies r into the next free slot. On a full buffer it returns
// ErrFull, sets the sticky overflow flag and leaves the contents
// untouched; the rejected reading is the caller's to discard or retry.
func (b *RingBuffer) Write(r Reading) error {
	if !b.valid() {
		return ErrClosed
	}
	if b.count == len(b.data) {
		b.overflowed = true
		return ErrFull
	}
	b.data[b.head] = r
	b.head = (b.head + 1) % len(b.data)
	b.count++
	return nil
}

// Read removes and returns the oldest reading. Returns ErrEmpty when
// nothing is stored.
func (b *RingBuffer) Read() (Reading, error) {
	if !b.valid() {
		return Reading{}, ErrClosed
	}
	if b.count == 0 {
		return Reading{}, ErrEmpty
	}
	r := b.data[b.tail]
	b.tail = (b.tail + 1) % len(b.data)
	b.count--
	return r, nil
}

// Peek returns the oldest reading without removing it. The buffer is
// left exactly as it was, sticky flag included.
func (b *RingBuffer) Peek() (Reading, error) {
	if !b.valid() {
		return Reading{}, ErrClosed
	}
	if b.count == 0 {
		return Reading{}, ErrEmpty
	}
	return b.data[b.tail], nil
}

// Clear discards all stored readings and resets the sticky overflow
// flag. Storage is retained, so the buffer is immediately reusable.
// Idempotent.
func (b *RingBuffer) Clear() {
	if !b.valid() {
		return
	}
	b.head = 0
	b.tail = 0
	b.count = 0
	b.overflowed = false
}

// Len returns the number of stored readings, zero for an absent buffer.
func (b *RingBuffer) Len() int {
	if !b.valid() {
		return 0
	}
	return b.count
}

// Cap returns the fixed capacity, zero for an absent buffer.
func (b *RingBuffer) Cap() int {
	if !b.valid() {
		return 0
	}
	return len(b.data)
}

// Free returns the number of unoccupied slots.
func (b *RingBuffer) Free() int {
	if !b.valid() {
		return 0
	}
	return len(b.data) - b.count
}

// IsEmpty reports whether no readings are stored. An absent buffer
// counts as empty.
func (b *RingBuffer) IsEmpty() bool {
	return !b.valid() || b.count == 0
}

// IsFull reports whether no free slot remains. An absent buffer is
// never full.
func (b *RingBuffer) IsFull() bool {
	return b.valid() && b.count == len(b.data)
}

// Status returns a copy of the status record, all-false for an absent
// buffer.
func (b *RingBuffer) Status() Status {
	if !b.valid() {
		return Status{}
	}
	return Status{
		Full:       b.count == len(b.data),
		Empty:      b.count == 0,
		Overflowed: b.overflowed,
	}
}

// State returns a diagnostic snapshot of indices, count, capacity and
// flags. Read-only.
func (b *RingBuffer) State() State {
	if !b.valid() {
		return State{Status: Status{Empty: true}}
	}
	return State{
		Head:     b.head,
		Tail:     b.tail,
		Count:    b.count,
		Capacity: len(b.data),
		Status:   b.Status(),
	}
}

// Snapshot returns the pending readings oldest-first without consuming
// them. The copy handles the wrapped case where the live region spans
// the end of storage.
func (b *RingBuffer) Snapshot() []Reading {
	if !b.valid() || b.count == 0 {
		return nil
	}
	out := make([]Reading, b.count)
	if b.tail+b.count <= len(b.data) {
		copy(out, b.data[b.tail:b.tail+b.count])
	} else {
		n := copy(out, b.data[b.tail:])
		copy(out[n:], b.data[:b.count-n])
	}
	return out
}

// Close releases the backing storage and invalidates the buffer. Every
// later operation sees the absent-buffer case: queries return the
// empty/zero answer and mutations return ErrClosed. Idempotent and
// safe on a nil receiver.
func (b *RingBuffer) Close() {
	if b == nil {
		return
	}
	b.data = nil
	b.head = 0
	b.tail = 0
	b.count = 0
	b.overflowed = false
}
