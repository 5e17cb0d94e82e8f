// loading.go: GetOrLoad — a stampede-safe cache-aside helper layered on
// top of Get/Put, using a singleflight pattern so concurrent misses on
// the same key execute the loader exactly once.
//
// This is a supplemented feature: spec.md's core contract (§4.1) does
// not require it, but it is a natural, idiomatic extension for the kind
// of latency-sensitive memoization workload spec.md §1 describes the
// cache as serving.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

import (
	"context"
	"sync"
)

// inflightCall tracks one in-flight loader execution for a single key.
// done is closed when the loader completes, letting every waiter observe
// completion via select without a goroutine per waiter.
type inflightCall struct {
	wg    sync.WaitGroup
	value []byte
	err   error
	done  chan struct{}
}

// GetOrLoad returns the cached value for key, or calls loader to produce
// one if key is absent. If multiple goroutines call GetOrLoad for the
// same missing key concurrently, only one invokes loader; the rest wait
// for and share its result. A successful load is stored in the cache
// before GetOrLoad returns.
//
// A panic inside loader is recovered and returned as an
// ErrCodePanicRecovered error rather than propagating past the cache.
func (c *Cache) GetOrLoad(key []byte, loader func() ([]byte, error)) ([]byte, error) {
	if value, found := c.Get(key); found {
		return value, nil
	}
	if loader == nil {
		return nil, NewErrInvalidLoader(string(key))
	}

	callKey := string(key)
	newFlight := &inflightCall{done: make(chan struct{})}
	newFlight.wg.Add(1)

	actual, loaded := c.inflight.LoadOrStore(callKey, newFlight)
	flight := actual.(*inflightCall)

	if loaded {
		flight.wg.Wait()
		return flight.value, flight.err
	}

	defer func() {
		close(flight.done)
		flight.wg.Done()
		c.inflight.Delete(callKey)
	}()

	func() {
		defer func() {
			if r := recover(); r != nil {
				flight.err = NewErrPanicRecovered("GetOrLoad", r)
			}
		}()
		flight.value, flight.err = loader()
	}()

	if flight.err == nil {
		c.Put(key, flight.value)
	}

	return flight.value, flight.err
}

// GetOrLoadWithContext is like GetOrLoad but respects context
// cancellation: the context is passed to loader, and a waiter gives up
// as soon as its own context is done even if the loader is still
// running on behalf of the first caller.
func (c *Cache) GetOrLoadWithContext(ctx context.Context, key []byte, loader func(context.Context) ([]byte, error)) ([]byte, error) {
	if value, found := c.Get(key); found {
		return value, nil
	}
	if loader == nil {
		return nil, NewErrInvalidLoader(string(key))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	callKey := string(key)
	newFlight := &inflightCall{done: make(chan struct{})}
	newFlight.wg.Add(1)

	actual, loaded := c.inflight.LoadOrStore(callKey, newFlight)
	flight := actual.(*inflightCall)

	if loaded {
		select {
		case <-flight.done:
			return flight.value, flight.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	defer func() {
		close(flight.done)
		flight.wg.Done()
		c.inflight.Delete(callKey)
	}()

	func() {
		defer func() {
			if r := recover(); r != nil {
				flight.err = NewErrPanicRecovered("GetOrLoadWithContext", r)
			}
		}()
		flight.value, flight.err = loader(ctx)
	}()

	if flight.err == nil {
		c.Put(key, flight.value)
	}

	return flight.value, flight.err
}
