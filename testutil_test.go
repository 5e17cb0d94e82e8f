// testutil_test.go: shared test fixtures.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

import "sync/atomic"

// fakeClock is a deterministic TimeProvider: it advances only when
// advance is called, so tests can assert on exact timestamps instead of
// racing the real clock.
type fakeClock struct {
	now atomic.Int64
}

func (c *fakeClock) Now() int64 {
	return c.now.Load()
}

func (c *fakeClock) advance(deltaNs int64) {
	c.now.Add(deltaNs)
}

// newTestCache builds a Cache with the given capacity and a fakeClock,
// skipping config defaulting boilerplate in individual tests.
func newTestCache(capacity int) (*Cache, *fakeClock) {
	clock := &fakeClock{}
	cache, err := New(Config{Capacity: capacity, TimeProvider: clock})
	if err != nil {
		panic(err)
	}
	return cache, clock
}
