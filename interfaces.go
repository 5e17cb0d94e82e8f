// interfaces.go: public interfaces for mneme
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package mneme

// CacheReader and CacheWriter together describe the façade's public
// surface; *Cache satisfies both. Splitting them lets a collaborator
// accept only the capability it needs.
type CacheReader interface {
	// Get retrieves a value from the cache. Returns a copy of the value
	// and true if found, nil and false otherwise.
	Get(key []byte) (value []byte, found bool)

	// Has reports whether a key exists, without refreshing recency or
	// affecting hit/miss metrics the way Get does.
	Has(key []byte) bool

	// Len returns the current number of entries in the cache.
	Len() int

	// Capacity returns the maximum number of entries the cache can hold.
	Capacity() int
}

type CacheWriter interface {
	// Put stores a value under key, overwriting any existing value and
	// evicting the least-recently-used entry if the cache is full and key
	// is new.
	Put(key, value []byte)

	// Remove deletes key if present, reporting whether it was present.
	Remove(key []byte) bool

	// Clear removes all entries from the cache.
	Clear()
}

// Compile-time checks that *Cache satisfies the capability interfaces
// above (the concrete type is defined in facade.go).
var (
	_ CacheReader = (*Cache)(nil)
	_ CacheWriter = (*Cache)(nil)
)

// Metrics reports monotonic counters maintained by the façade,
// independent of the engine lock (spec.md §9, "Metrics without locks").
type Metrics struct {
	// TotalOperations counts every Get, Has, Put, Remove, and Clear call
	// (GetOrLoad counts through the Get and Put it makes). Len, Capacity,
	// Keys, Metrics, and the snapshot methods are not counted.
	TotalOperations uint64

	// Hits and Misses count Get outcomes.
	Hits   uint64
	Misses uint64

	// Evictions counts Put calls that evicted an existing entry to make
	// room, as reported directly by the engine rather than inferred from
	// a before/after size comparison (spec.md §9, "Eviction accounting").
	Evictions uint64

	// Size and Capacity mirror the engine's current occupancy.
	Size     int
	Capacity int
}

// HitRate returns hits / (hits + misses), defined as 0 when there have
// been no Get calls at all.
func (m Metrics) HitRate() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// Logger defines a minimal structured logging interface.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger discards everything logged to it. Used as the default so
// callers never need a nil check.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}
func (NoOpLogger) Info(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Warn(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider supplies the monotonic clock used for last-accessed
// bookkeeping, so it can be swapped for a fake in tests.
type TimeProvider interface {
	// Now returns a monotonic timestamp in nanoseconds.
	Now() int64
}

// MetricsCollector receives per-operation events for external
// observability integrations. Unlike Metrics (the façade's own
// lock-free counters), a MetricsCollector is a caller-supplied sink —
// typically backed by Prometheus or OpenTelemetry, as the otel
// submodule does.
type MetricsCollector interface {
	// RecordGet is called after every Get, with its latency and whether
	// it was a hit.
	RecordGet(latencyNs int64, hit bool)

	// RecordPut is called after every Put.
	RecordPut(latencyNs int64)

	// RecordRemove is called after every Remove.
	RecordRemove(latencyNs int64)

	// RecordEviction is called once per entry evicted by Put.
	RecordEviction()
}

// NoOpMetricsCollector discards every event. Used as the default so a
// Cache never needs a nil check before recording.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordGet(latencyNs int64, hit bool) {}
func (NoOpMetricsCollector) RecordPut(latencyNs int64)           {}
func (NoOpMetricsCollector) RecordRemove(latencyNs int64)        {}
func (NoOpMetricsCollector) RecordEviction()                     {}
