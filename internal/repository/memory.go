// Package repository provides the in-memory store implementations. All
// application state is process-local and resets on restart; there is no
// external persistence.
package repository

import "time"

// idAllocator hands out unique integer ids that are monotonic with
// creation time, mirroring millisecond-timestamp id generation. Callers
// must hold their store's lock.
type idAllocator struct {
	lastID int64
}

func (a *idAllocator) next() int64 {
	id := time.Now().UnixMilli()
	if id <= a.lastID {
		id = a.lastID + 1
	}
	a.lastID = id
	return id
}

// track records an externally assigned id (seed data) so later
// allocations stay unique
func (a *idAllocator) track(id int64) {
	if id > a.lastID {
		a.lastID = id
	}
}
