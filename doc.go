// Package mneme provides a bounded-capacity, in-process key-value cache
// with least-recently-used eviction and an optional on-disk snapshot for
// warm restart.
//
// # Overview
//
// mneme is aimed at latency-sensitive services that need memoized
// lookups with a predictable memory footprint:
//
//   - Fixed capacity: set once at construction, never grows.
//   - O(1) get/put/remove: a hash index plus a doubly linked recency
//     list, not a sorted structure.
//   - Safe for concurrent use: every exported method may be called from
//     any goroutine.
//   - Snapshot to disk: save the live set to a versioned binary file and
//     reload it into a fresh cache.
//
// # Quick Start
//
//	cache, err := mneme.New(mneme.Config{Capacity: 10_000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Close()
//
//	cache.Put([]byte("user:123"), []byte("alice"))
//
//	if value, found := cache.Get([]byte("user:123")); found {
//	    fmt.Printf("found: %s\n", value)
//	}
//
// # Eviction
//
// Once the cache holds Capacity entries, inserting a new key evicts the
// least-recently-used entry first. A Get refreshes an entry's recency;
// overwriting an existing key with Put does too. Eviction never happens
// on an update to an existing key, only on insertion of a new one into a
// full cache.
//
// # Cache Stampede Prevention
//
// GetOrLoad wraps Get with a singleflight pattern: if N goroutines call
// GetOrLoad for the same missing key concurrently, the loader function
// runs exactly once and every caller receives its result.
//
//	value, err := cache.GetOrLoad([]byte("user:123"), func() ([]byte, error) {
//	    return fetchUserFromDB(123)
//	})
//
// GetOrLoadWithContext additionally respects context cancellation: a
// waiter stops waiting as soon as its own context is done, even though
// the loader keeps running to completion on behalf of the caller that
// started it.
//
// A panic inside the loader is recovered and returned as an
// MNEME_PANIC_RECOVERED error rather than propagating out of the cache.
//
// # Snapshots
//
// A Cache configured with a SnapshotPath attempts to load that file at
// construction (a missing or unreadable file is not an error — the
// cache just starts empty) and attempts to save to it on Close (a
// failed save on close is logged, never returned).
//
//	cache, _ := mneme.New(mneme.Config{
//	    Capacity:     10_000,
//	    SnapshotPath: "/var/lib/myapp/cache.snap",
//	})
//	defer cache.Close() // saves automatically
//
// Saving and loading can also be triggered explicitly via SaveSnapshot
// and LoadSnapshot. Per-entry access timestamps and counters are not
// part of the snapshot format; a reloaded entry's bookkeeping restarts
// from the moment of load.
//
// # Concurrency Model
//
// The engine is protected by a single readers-writer lock. get always
// acquires it in exclusive mode: a successful get both returns the
// value and splices the accessed node to the head of the recency list,
// and splicing mutates shared list pointers. put, remove, clear, and
// snapshot load are exclusive; size, empty, and snapshot save take the
// lock in shared mode.
//
// Façade counters (TotalOperations, Hits, Misses, Evictions) are plain
// atomic integers updated without the engine lock — they are eventually
// consistent with each other and with engine state, never a source of
// contention.
//
// # Observability
//
//	metrics := cache.Metrics()
//	fmt.Printf("hits=%d misses=%d hit_rate=%.2f evictions=%d\n",
//	    metrics.Hits, metrics.Misses, metrics.HitRate(), metrics.Evictions)
//
// For integration with an external metrics backend, supply a
// MetricsCollector in Config; the mneme/otel submodule implements one
// backed by OpenTelemetry:
//
//	import mnemeotel "github.com/agilira/mneme/otel"
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	collector, _ := mnemeotel.NewOTelMetricsCollector(provider)
//
//	cache, _ := mneme.New(mneme.Config{
//	    Capacity:         10_000,
//	    MetricsCollector: collector,
//	})
//
// The core mneme package has no OpenTelemetry dependency; mneme/otel is
// a separate module pulled in only when observability is wired up.
//
// # Error Handling
//
// Of the core operations, only construction and snapshot save/load can
// fail; get, put, remove, and clear are total functions over their
// inputs and never return an error. Errors carry a structured code:
//
//   - MNEME_INVALID_CONFIGURATION: construction with capacity <= 0, or
//     SaveSnapshot/LoadSnapshot on a cache with no SnapshotPath.
//   - MNEME_SNAPSHOT_IO: the snapshot file could not be created or
//     written on save. A snapshot file that cannot be opened on load is
//     not an error: load_snapshot returns false with a nil error.
//   - MNEME_SNAPSHOT_FORMAT: a version mismatch or malformed header on
//     load (load_snapshot returns false, the cache is left untouched).
//   - MNEME_SNAPSHOT_TRUNCATED: the stream ended mid-record (the cache
//     keeps whatever records were read before truncation).
//   - MNEME_INVALID_LOADER: a nil loader passed to GetOrLoad.
//   - MNEME_PANIC_RECOVERED: a GetOrLoad loader panicked.
//
// Use GetErrorCode, GetErrorContext, IsConfigError, IsSnapshotError, and
// IsRetryable to inspect an error without a type switch.
//
// # Non-goals
//
// mneme does not provide distributed replication or cross-process
// sharing, a write-ahead log, wall-clock TTL expiration, range queries
// or ordered iteration by key, or multi-operation transactions.
// Recency is the sole eviction signal.
package mneme
