// Package otel provides OpenTelemetry integration for mneme cache metrics.
//
// This package implements the mneme.MetricsCollector interface using
// OpenTelemetry, enabling percentile-aware observability (p50, p95, p99)
// with any OTEL-compatible backend (Prometheus, Jaeger, DataDog,
// Grafana, ...).
//
// # Usage
//
//	import (
//	    "github.com/agilira/mneme"
//	    mnemeotel "github.com/agilira/mneme/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//
//	collector, _ := mnemeotel.NewOTelMetricsCollector(provider)
//
//	cache, _ := mneme.New(mneme.Config{
//	    Capacity:         10_000,
//	    MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
//   - mneme_get_latency_ns: histogram of Get latencies in nanoseconds
//   - mneme_put_latency_ns: histogram of Put latencies in nanoseconds
//   - mneme_remove_latency_ns: histogram of Remove latencies in nanoseconds
//   - mneme_get_hits_total: counter of cache hits
//   - mneme_get_misses_total: counter of cache misses
//   - mneme_evictions_total: counter of evictions
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/mneme"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements mneme.MetricsCollector using
// OpenTelemetry instruments. It is safe for concurrent use; the
// underlying OTEL instruments are themselves thread-safe.
type OTelMetricsCollector struct {
	getLatency    metric.Int64Histogram
	putLatency    metric.Int64Histogram
	removeLatency metric.Int64Histogram
	hits          metric.Int64Counter
	misses        metric.Int64Counter
	evictions     metric.Int64Counter
}

// Options configures an OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/mneme"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing
// metrics from multiple cache instances.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector builds a collector backed by provider. provider
// must not be nil.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/agilira/mneme"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.getLatency, err = meter.Int64Histogram(
		"mneme_get_latency_ns",
		metric.WithDescription("Latency of Get operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.putLatency, err = meter.Int64Histogram(
		"mneme_put_latency_ns",
		metric.WithDescription("Latency of Put operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.removeLatency, err = meter.Int64Histogram(
		"mneme_remove_latency_ns",
		metric.WithDescription("Latency of Remove operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.hits, err = meter.Int64Counter(
		"mneme_get_hits_total",
		metric.WithDescription("Total number of cache hits"),
	)
	if err != nil {
		return nil, err
	}

	collector.misses, err = meter.Int64Counter(
		"mneme_get_misses_total",
		metric.WithDescription("Total number of cache misses"),
	)
	if err != nil {
		return nil, err
	}

	collector.evictions, err = meter.Int64Counter(
		"mneme_evictions_total",
		metric.WithDescription("Total number of evictions"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordGet records a Get operation's latency and hit/miss outcome.
func (c *OTelMetricsCollector) RecordGet(latencyNs int64, hit bool) {
	ctx := context.Background()
	c.getLatency.Record(ctx, latencyNs)
	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

// RecordPut records a Put operation's latency.
func (c *OTelMetricsCollector) RecordPut(latencyNs int64) {
	c.putLatency.Record(context.Background(), latencyNs)
}

// RecordRemove records a Remove operation's latency.
func (c *OTelMetricsCollector) RecordRemove(latencyNs int64) {
	c.removeLatency.Record(context.Background(), latencyNs)
}

// RecordEviction records a single eviction event.
func (c *OTelMetricsCollector) RecordEviction() {
	c.evictions.Add(context.Background(), 1)
}

// Compile-time interface check.
var _ mneme.MetricsCollector = (*OTelMetricsCollector)(nil)
