package prometheus

import (
	"bytes"
	"io"
	"net/http"

	goPass "github.com/MrEthical07/goPass"
	"github.com/MrEthical07/goPass/metrics/export/internaldefs"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

type metricsSource interface {
	MetricsSnapshot() goPass.MetricsSnapshot
	AuditDropped() uint64
}

type counterDesc struct {
	id   goPass.MetricID
	desc *prom.Desc
}

type histogramDesc struct {
	id   goPass.MetricID
	desc *prom.Desc
}

// PrometheusExporter is a prometheus.Collector that reads a goPass metrics
// snapshot on every scrape.
type PrometheusExporter struct {
	source       metricsSource
	registry     *prom.Registry
	counters     []counterDesc
	histograms   []histogramDesc
	auditDropped *prom.Desc
}

// NewPrometheusExporter creates an exporter that reads from the given [goPass.Engine].
func NewPrometheusExporter(engine *goPass.Engine) *PrometheusExporter {
	return NewPrometheusExporterFromSource(engine)
}

// NewPrometheusExporterFromSource creates an exporter from any snapshot source.
// The exporter registers itself on a private registry.
func NewPrometheusExporterFromSource(source metricsSource) *PrometheusExporter {
	p := &PrometheusExporter{
		source:       source,
		counters:     make([]counterDesc, 0, len(internaldefs.CounterDefs)),
		histograms:   make([]histogramDesc, 0, len(internaldefs.HistogramDefs)),
		auditDropped: prom.NewDesc(internaldefs.AuditDroppedName, internaldefs.AuditDroppedHelp, nil, nil),
	}
	for _, def := range internaldefs.CounterDefs {
		p.counters = append(p.counters, counterDesc{id: def.ID, desc: prom.NewDesc(def.Name, def.Help, nil, nil)})
	}
	for _, def := range internaldefs.HistogramDefs {
		p.histograms = append(p.histograms, histogramDesc{id: def.ID, desc: prom.NewDesc(def.Name, def.Help, nil, nil)})
	}

	p.registry = prom.NewRegistry()
	p.registry.MustRegister(p)
	return p
}

// Describe implements prometheus.Collector.
func (p *PrometheusExporter) Describe(ch chan<- *prom.Desc) {
	for _, c := range p.counters {
		ch <- c.desc
	}
	for _, h := range p.histograms {
		ch <- h.desc
	}
	ch <- p.auditDropped
}

// Collect implements prometheus.Collector. Nothing is emitted while the
// source has metrics disabled.
func (p *PrometheusExporter) Collect(ch chan<- prom.Metric) {
	if p == nil || p.source == nil {
		return
	}

	snapshot := p.source.MetricsSnapshot()
	dropped := p.source.AuditDropped()
	if len(snapshot.Counters) == 0 && len(snapshot.Histograms) == 0 && dropped == 0 {
		return
	}

	for _, c := range p.counters {
		ch <- prom.MustNewConstMetric(c.desc, prom.CounterValue, float64(snapshot.Counters[c.id]))
	}

	for _, h := range p.histograms {
		raw, ok := snapshot.Histograms[h.id]
		if !ok {
			continue
		}
		cumulative := internaldefs.CumulativeBuckets(internaldefs.NormalizeBuckets(raw))
		buckets := make(map[float64]uint64, len(internaldefs.HistogramUpperBounds))
		for i, le := range internaldefs.HistogramUpperBounds {
			buckets[le] = cumulative[i]
		}
		count := cumulative[len(cumulative)-1]
		ch <- prom.MustNewConstHistogram(h.desc, count, snapshot.HistogramSums[h.id], buckets)
	}

	ch <- prom.MustNewConstMetric(p.auditDropped, prom.CounterValue, float64(dropped))
}

// Registry returns the private registry the exporter is registered on, for
// callers that want to add their own collectors.
func (p *PrometheusExporter) Registry() *prom.Registry {
	return p.registry
}

// Handler returns an http.Handler that serves the exporter's registry.
func (p *PrometheusExporter) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// WriteText writes the current metrics in Prometheus text exposition format.
func (p *PrometheusExporter) WriteText(w io.Writer) error {
	families, err := p.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// Render returns WriteText output as a string, or "" on error.
func (p *PrometheusExporter) Render() string {
	if p == nil || p.source == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := p.WriteText(&buf); err != nil {
		return ""
	}
	return buf.String()
}
