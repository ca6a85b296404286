// Package otel provides OpenTelemetry metric exporter bindings for goPass
// counters and latency histograms.
//
// [NewOTelExporter] registers an Int64ObservableCounter per goPass counter
// and, per histogram, one Int64ObservableGauge per cumulative bucket plus
// count and sum gauges. A single callback reads
// [goPass.Engine.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider. Callers supply the Meter.
//   - Mutate engine state.
package otel
