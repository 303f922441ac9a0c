// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package memlog

import (
	"sync/atomic"

	"github.com/tomtom215/logroute/internal/models"
)

// DefaultCapacity is the number of entries retained when no capacity is configured.
const DefaultCapacity = 1024

type node struct {
	entry models.LogEntry
	next  atomic.Pointer[node]
}

// Buffer retains the most recent log entries up to a fixed capacity.
//
// It is a Michael-Scott linked queue: Push and Snapshot never take a lock and
// never block. With P concurrent producers the length may briefly exceed the
// capacity by at most P-1; it settles back to <= capacity once producers stop.
type Buffer struct {
	head     atomic.Pointer[node] // sentinel; head.next is the oldest entry
	tail     atomic.Pointer[node]
	count    atomic.Int64
	evicted  atomic.Uint64
	capacity int64
}

// New creates a Buffer. A capacity below 1 selects DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	b := &Buffer{capacity: int64(capacity)}
	sentinel := &node{}
	b.head.Store(sentinel)
	b.tail.Store(sentinel)
	return b
}

// Push appends entry, evicting the oldest entries so the buffer stays within
// capacity. It returns how many entries this call evicted.
func (b *Buffer) Push(entry models.LogEntry) int {
	evicted := b.trim(b.capacity - 1)
	b.enqueue(&node{entry: entry})
	evicted += b.trim(b.capacity)
	if evicted > 0 {
		b.evicted.Add(uint64(evicted))
	}
	return evicted
}

// trim drops oldest entries while the count exceeds limit.
func (b *Buffer) trim(limit int64) int {
	n := 0
	for b.count.Load() > limit {
		if !b.dequeue() {
			break
		}
		n++
	}
	return n
}

func (b *Buffer) enqueue(n *node) {
	for {
		tail := b.tail.Load()
		next := tail.next.Load()
		if tail != b.tail.Load() {
			continue
		}
		if next != nil {
			// Tail is lagging; help it forward.
			b.tail.CompareAndSwap(tail, next)
			continue
		}
		if tail.next.CompareAndSwap(nil, n) {
			b.tail.CompareAndSwap(tail, n)
			b.count.Add(1)
			return
		}
	}
}

func (b *Buffer) dequeue() bool {
	for {
		head := b.head.Load()
		tail := b.tail.Load()
		next := head.next.Load()
		if head != b.head.Load() {
			continue
		}
		if next == nil {
			return false
		}
		if head == tail {
			b.tail.CompareAndSwap(tail, next)
			continue
		}
		if b.head.CompareAndSwap(head, next) {
			b.count.Add(-1)
			return true
		}
	}
}

// Snapshot returns up to limit of the newest entries, oldest first and most
// recent last. A limit of zero or less yields an empty slice.
//
// The result is a copy taken while producers may still be running, so it can
// be marginally stale.
func (b *Buffer) Snapshot(limit int) []models.LogEntry {
	if limit <= 0 {
		return []models.LogEntry{}
	}
	if int64(limit) > b.capacity {
		limit = int(b.capacity)
	}

	// Head before tail: the tail read afterwards is always reachable from head.
	head := b.head.Load()
	tail := b.tail.Load()

	ring := make([]models.LogEntry, 0, min(limit, b.Len()))
	start := 0
	for cur := head.next.Load(); cur != nil; cur = cur.next.Load() {
		if len(ring) < limit {
			ring = append(ring, cur.entry)
		} else {
			ring[start] = cur.entry
			start = (start + 1) % limit
		}
		if cur == tail {
			break
		}
	}

	if start == 0 {
		return ring
	}
	out := make([]models.LogEntry, 0, len(ring))
	out = append(out, ring[start:]...)
	return append(out, ring[:start]...)
}

// Len returns the current number of retained entries.
func (b *Buffer) Len() int {
	n := b.count.Load()
	if n < 0 {
		return 0
	}
	return int(n)
}

// Cap returns the configured capacity.
func (b *Buffer) Cap() int {
	return int(b.capacity)
}

// Evicted returns the total number of entries dropped for capacity since creation.
func (b *Buffer) Evicted() uint64 {
	return b.evicted.Load()
}
