// facade.go: the public Cache type — wraps the engine, maintains
// lock-free metrics, and owns snapshot lifecycle.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

import (
	"sync"
	"sync/atomic"
)

// Cache is a bounded-capacity, in-process, concurrency-safe key-value
// cache with least-recently-used eviction. The zero value is not usable;
// construct one with New.
//
// Every method is safe for concurrent use by multiple goroutines. Cache
// itself never panics; a recovered panic inside a GetOrLoad loader is
// returned as an error instead.
type Cache struct {
	eng *engine

	snapshotPath string
	logger       Logger
	collector    MetricsCollector
	startedAt    int64
	tp           TimeProvider

	totalOps  atomic.Uint64
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64

	inflight sync.Map // string(key) -> *inflightCall, used by GetOrLoad
}

// New constructs a Cache from cfg. If cfg.SnapshotPath is set and the
// file exists, New attempts to load it; a failed or partial load is
// non-fatal and leaves the cache empty or partially populated, per
// spec.md §4.4.
func New(cfg Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Cache{
		eng:          newEngine(cfg.Capacity, cfg.TimeProvider),
		snapshotPath: cfg.SnapshotPath,
		logger:       cfg.Logger,
		collector:    cfg.MetricsCollector,
		tp:           cfg.TimeProvider,
		startedAt:    cfg.TimeProvider.Now(),
	}

	if c.snapshotPath != "" {
		if ok, err := loadSnapshot(c.eng, c.snapshotPath); err != nil {
			c.logger.Warn("mneme: snapshot load failed", "path", c.snapshotPath, "error", err)
		} else if ok {
			c.logger.Info("mneme: loaded snapshot", "path", c.snapshotPath, "size", c.eng.size())
		}
	}

	return c, nil
}

// Get retrieves a value from the cache, refreshing its recency on a hit.
func (c *Cache) Get(key []byte) (value []byte, found bool) {
	c.totalOps.Add(1)
	start := c.tp.Now()

	value, found = c.eng.get(key)
	if found {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}

	c.collector.RecordGet(c.tp.Now()-start, found)
	return value, found
}

// Has reports whether key is present without affecting recency or
// hit/miss metrics.
func (c *Cache) Has(key []byte) bool {
	c.totalOps.Add(1)
	return c.eng.has(key)
}

// Put stores value under key, evicting the least-recently-used entry if
// the cache is already at capacity and key is new.
func (c *Cache) Put(key, value []byte) {
	c.totalOps.Add(1)
	start := c.tp.Now()

	if c.eng.put(key, value) {
		c.evictions.Add(1)
		c.collector.RecordEviction()
	}

	c.collector.RecordPut(c.tp.Now() - start)
}

// Remove deletes key if present, reporting whether it was present.
func (c *Cache) Remove(key []byte) bool {
	c.totalOps.Add(1)
	start := c.tp.Now()

	removed := c.eng.remove(key)

	c.collector.RecordRemove(c.tp.Now() - start)
	return removed
}

// Clear removes every entry from the cache. Capacity is preserved.
// Metrics counters are untouched; call ResetMetrics separately if
// desired, per spec.md §4.1's split of responsibility between the
// engine and the façade.
func (c *Cache) Clear() {
	c.totalOps.Add(1)
	c.eng.clear()
}

// Len returns the current number of entries in the cache.
func (c *Cache) Len() int {
	return c.eng.size()
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *Cache) Capacity() int {
	return c.eng.capacity
}

// Keys returns a snapshot of all live keys, most- to least-recently-used.
// Not part of the core contract; provided for diagnostics.
func (c *Cache) Keys() [][]byte {
	return c.eng.keys()
}

// SaveSnapshot writes the cache's current contents to its configured
// snapshot path.
func (c *Cache) SaveSnapshot() error {
	if c.snapshotPath == "" {
		return NewErrInvalidConfiguration("no snapshot path configured", 0)
	}
	return saveSnapshot(c.eng, c.snapshotPath)
}

// LoadSnapshot reloads the cache's contents from its configured snapshot
// path, replacing whatever the cache currently holds.
func (c *Cache) LoadSnapshot() (bool, error) {
	if c.snapshotPath == "" {
		return false, NewErrInvalidConfiguration("no snapshot path configured", 0)
	}
	return loadSnapshot(c.eng, c.snapshotPath)
}

// Close releases the cache's resources. If a snapshot path is
// configured, Close attempts a final save; a failed save is logged, not
// returned, per spec.md §4.4's teardown contract.
func (c *Cache) Close() error {
	if c.snapshotPath != "" {
		if err := saveSnapshot(c.eng, c.snapshotPath); err != nil {
			c.logger.Error("mneme: snapshot save failed on close", "path", c.snapshotPath, "error", err)
		}
	}
	return nil
}
