// Package prometheus exposes goPass metrics as a Prometheus collector.
//
// [NewPrometheusExporter] accepts a [goPass.Engine] and returns a collector
// registered on its own registry, with an [http.Handler] built on promhttp
// and a text renderer built on expfmt. Counter names are prefixed
// gopass_*_total; the latency histograms are gopass_*_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in the global Prometheus registry. Callers mount the
//     Handler or register the collector themselves.
//   - Mutate engine state.
package prometheus
