// Package otel provides OpenTelemetry integration for mneme cache
// metrics.
//
// # Overview
//
// This package implements mneme.MetricsCollector using OpenTelemetry,
// so a cache's hit/miss ratio, latencies, and eviction rate can be
// exported to Prometheus, Grafana, or any other OTEL-compatible
// backend. It is a separate module: applications that don't configure a
// MetricsCollector never pull in the OTEL SDK.
//
// # Quick Start
//
//	import (
//	    "github.com/agilira/mneme"
//	    mnemeotel "github.com/agilira/mneme/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	collector, err := mnemeotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache, _ := mneme.New(mneme.Config{
//	    Capacity:         10_000,
//	    MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
// Histograms:
//   - mneme_get_latency_ns
//   - mneme_put_latency_ns
//   - mneme_remove_latency_ns
//
// Counters:
//   - mneme_get_hits_total
//   - mneme_get_misses_total
//   - mneme_evictions_total
//
// # Prometheus Queries
//
//	histogram_quantile(0.95, rate(mneme_get_latency_ns_bucket[5m]))
//
//	rate(mneme_get_hits_total[5m]) /
//	(rate(mneme_get_hits_total[5m]) + rate(mneme_get_misses_total[5m]))
//
//	rate(mneme_evictions_total[1m]) * 60
//
// # Configuration
//
// A custom meter name distinguishes metrics from multiple cache
// instances sharing one MeterProvider:
//
//	collector, err := mnemeotel.NewOTelMetricsCollector(
//	    provider,
//	    mnemeotel.WithMeterName("user_cache"),
//	)
//
// # Thread Safety
//
// Every method is safe for concurrent use; the underlying OTEL
// instruments are themselves lock-free.
package otel
