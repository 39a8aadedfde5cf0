// internal/app/system/events/events.go

// Package events keeps a bounded, process-scoped ring of recent operational
// events for the /status endpoint. Capacity is fixed at construction and
// eviction is oldest-first; the buffer never grows unbounded. The buffer is
// created in bootstrap and passed explicitly to its producers and consumers,
// not reached through a hidden singleton.
package events

import (
	"sync"
	"time"
)

// DefaultCapacity is used when no capacity is configured.
const DefaultCapacity = 256

// Event is one operational occurrence worth surfacing.
type Event struct {
	Time   time.Time `json:"time"`
	Type   string    `json:"type"`
	Actor  string    `json:"actor,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

// Buffer is a fixed-capacity ring of events. Safe for concurrent use.
type Buffer struct {
	mu   sync.Mutex
	buf  []Event
	next int // index of the slot the next Add writes
	size int // number of occupied slots, <= cap(buf)
}

// NewBuffer returns a buffer retaining the last capacity events.
// capacity <= 0 falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{buf: make([]Event, capacity)}
}

// Add records e, evicting the oldest event when full.
func (b *Buffer) Add(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf[b.next] = e
	b.next = (b.next + 1) % len(b.buf)
	if b.size < len(b.buf) {
		b.size++
	}
}

// Recent returns the retained events, newest first.
func (b *Buffer) Recent() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Event, 0, b.size)
	for i := 0; i < b.size; i++ {
		idx := (b.next - 1 - i + len(b.buf)) % len(b.buf)
		out = append(out, b.buf[idx])
	}
	return out
}

// Len returns the number of retained events.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap returns the buffer's fixed capacity.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Reset discards all retained events, keeping the capacity.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next = 0
	b.size = 0
}
