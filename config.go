// config.go: configuration for mneme
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package mneme

import (
	"github.com/agilira/go-timecache"
)

// Config holds the parameters needed to construct a Cache.
type Config struct {
	// Capacity is the maximum number of entries the cache can hold.
	// Must be > 0; construction fails with ErrCodeInvalidConfiguration
	// otherwise. There is no default: a cache's size is a deliberate
	// choice for its caller, not something to silently normalize.
	Capacity int

	// SnapshotPath, if non-empty, is the file a cache loads from at
	// construction (when it exists) and saves to at Close. Leave empty
	// to run purely in-memory with no persistence.
	SnapshotPath string

	// Logger is used for diagnostic output (snapshot load/save outcomes).
	// If nil, NoOpLogger is used.
	Logger Logger

	// TimeProvider supplies the monotonic clock used for last-accessed
	// bookkeeping. If nil, a default backed by go-timecache is used.
	TimeProvider TimeProvider

	// MetricsCollector receives per-operation latency and outcome events
	// for external observability integrations (Prometheus, OTel, ...).
	// If nil, NoOpMetricsCollector is used (zero overhead).
	MetricsCollector MetricsCollector
}

// Validate checks the configuration and fills in defaults for any unset
// optional field. Capacity is the only field with no default: a
// non-positive Capacity is a construction-time failure reported as
// ErrCodeInvalidConfiguration, per spec.md §4.1's error conditions.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return NewErrInvalidConfiguration("capacity must be greater than 0", c.Capacity)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// systemTimeProvider is the default time provider, backed by
// go-timecache's cached monotonic clock rather than a raw time.Now()
// call on every touch.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
