// Package relay consumes person-reid alerts from Kafka into a bounded
// in-memory buffer that the WebSocket and REST endpoints read from.
package relay

import (
	"sync"

	"github.com/imespro/reid-backend/internal/domain"
)

// Entry is a buffered alert tagged with a monotonic sequence number, so
// stream readers can ask "everything after what I already sent".
type Entry struct {
	Seq   uint64
	Alert domain.Alert
}

// Buffer is a fixed-capacity ring of the most recent alerts. Once full, the
// oldest entry is overwritten. Safe for concurrent use.
type Buffer struct {
	mu      sync.RWMutex
	entries []Entry
	start   int
	size    int
	nextSeq uint64
}

// NewBuffer creates a buffer holding at most capacity alerts.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{entries: make([]Entry, capacity)}
}

// Append stores an alert and returns its sequence number. Sequence numbers
// start at 1 and never repeat within a process.
func (b *Buffer) Append(a domain.Alert) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	e := Entry{Seq: b.nextSeq, Alert: a}

	if b.size < len(b.entries) {
		b.entries[(b.start+b.size)%len(b.entries)] = e
		b.size++
	} else {
		b.entries[b.start] = e
		b.start = (b.start + 1) % len(b.entries)
	}
	return e.Seq
}

// Recent returns up to limit of the newest entries, oldest first.
// limit <= 0 returns everything buffered.
func (b *Buffer) Recent(limit int) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := b.size
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Entry, 0, n)
	for i := b.size - n; i < b.size; i++ {
		out = append(out, b.entries[(b.start+i)%len(b.entries)])
	}
	return out
}

// Since returns every buffered entry with a sequence number greater than seq,
// oldest first. Entries evicted before the caller caught up are simply gone.
func (b *Buffer) Since(seq uint64) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []Entry
	for i := 0; i < b.size; i++ {
		e := b.entries[(b.start+i)%len(b.entries)]
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of buffered entries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// lastSeq returns the sequence number of the newest entry, or 0 when empty.
func (b *Buffer) lastSeq() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.nextSeq
}
