// entry.go: the Entry Store — value bytes plus per-entry bookkeeping.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

// entry holds the value bytes and bookkeeping metadata for a single cached
// key. Its lifetime is bound to the Node that owns it: an entry is never
// shared between nodes and never outlives the node it belongs to.
type entry struct {
	value []byte

	// lastAccessed is a monotonic timestamp (nanoseconds, from the
	// cache's TimeProvider) set on creation and refreshed on every
	// successful get and on every put that updates this key.
	lastAccessed int64

	// accessCount starts at 1 and is incremented on every successful
	// get and on every put that updates an existing key.
	accessCount uint64
}

// touch refreshes the access bookkeeping for an existing entry.
func (e *entry) touch(now int64) {
	e.lastAccessed = now
	e.accessCount++
}

// reset clears an entry so its value can be garbage collected once the
// owning node is released back to the free list.
func (e *entry) reset() {
	e.value = nil
	e.lastAccessed = 0
	e.accessCount = 0
}
