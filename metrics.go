// metrics.go: lock-free façade counters.
//
// Counters are independent atomic integers updated without the engine
// lock, per spec.md §9 ("Metrics without locks"): reads may reflect
// recent but not instantaneous state, and no ordering is guaranteed
// among them or against engine state.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package mneme

// Metrics returns a point-in-time snapshot of the cache's counters.
func (c *Cache) Metrics() Metrics {
	return Metrics{
		TotalOperations: c.totalOps.Load(),
		Hits:            c.hits.Load(),
		Misses:          c.misses.Load(),
		Evictions:       c.evictions.Load(),
		Size:            c.eng.size(),
		Capacity:        c.eng.capacity,
	}
}

// ResetMetrics zeroes all counters without touching cache contents.
func (c *Cache) ResetMetrics() {
	c.totalOps.Store(0)
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// OperationsPerSecond returns total operations divided by elapsed
// seconds since construction, defined as 0 when elapsed is 0.
func (c *Cache) OperationsPerSecond() float64 {
	elapsedNs := c.tp.Now() - c.startedAt
	if elapsedNs <= 0 {
		return 0
	}
	elapsedSeconds := float64(elapsedNs) / 1e9
	if elapsedSeconds == 0 {
		return 0
	}
	return float64(c.totalOps.Load()) / elapsedSeconds
}
