// index.go: the Index — maps a key to the arena handle of the node
// currently holding it.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

// keyIndex resolves a key to its node handle in constant expected time.
// Keys are stored as strings (a copy of the byte slice) so they can be
// Go map keys without the caller's backing array aliasing the index.
//
// keyIndex is not safe for concurrent use on its own; all access is
// serialized by the engine's lock.
type keyIndex struct {
	m map[string]int32
}

// newKeyIndex builds an index sized for the given capacity.
func newKeyIndex(capacity int) *keyIndex {
	return &keyIndex{m: make(map[string]int32, capacity)}
}

// lookup returns the handle stored for key and whether it was present.
func (ki *keyIndex) lookup(key []byte) (int32, bool) {
	h, ok := ki.m[string(key)]
	return h, ok
}

// set records that key now resolves to handle h.
func (ki *keyIndex) set(key []byte, h int32) {
	ki.m[string(key)] = h
}

// delete removes key from the index.
func (ki *keyIndex) delete(key []byte) {
	delete(ki.m, string(key))
}

// len reports the number of indexed keys.
func (ki *keyIndex) len() int {
	return len(ki.m)
}

// reset discards every entry, preserving the underlying map for reuse.
func (ki *keyIndex) reset() {
	clear(ki.m)
}
