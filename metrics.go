package goPass

import (
	"sync/atomic"
	"time"
)

// MetricID identifies one counter or latency histogram in [Metrics].
type MetricID uint16

const (
	// MetricPolicyCheck counts every policy evaluation.
	MetricPolicyCheck MetricID = iota
	// MetricPolicyCompliant counts evaluations that met the policy.
	MetricPolicyCompliant
	// MetricPolicyNonCompliant counts evaluations that did not.
	MetricPolicyNonCompliant
	// MetricHashSuccess counts Argon2id hashes produced, including batch entries.
	MetricHashSuccess
	// MetricHashFailure counts HashingError outcomes, including batch entries.
	MetricHashFailure
	// MetricVerifyMatch counts verifications that matched.
	MetricVerifyMatch
	// MetricVerifyMismatch counts well-formed hashes that did not match.
	MetricVerifyMismatch
	// MetricVerifyMalformed counts stored hashes that could not be evaluated.
	MetricVerifyMalformed
	// MetricBatchHash counts batch hashing calls.
	MetricBatchHash
	// MetricBatchEntryFailed counts batch entries mapped to the error sentinel.
	MetricBatchEntryFailed
	// MetricBreachDigest counts SHA-1 breach digests computed.
	MetricBreachDigest
	// MetricRehashNeeded counts stored hashes reported as weaker than the config.
	MetricRehashNeeded
	// MetricPolicyCheckLatency is the policy evaluation latency histogram.
	MetricPolicyCheckLatency
	// MetricHashLatency is the single-password hashing latency histogram.
	MetricHashLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

type metricHistogram struct {
	buckets [histBucketCount]uint64
	sumNS   uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds lock-free counters and latency histograms. A nil or
// disabled Metrics ignores every write.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time copy of [Metrics]. Histogram slices
// hold non-cumulative bucket counts; HistogramSums holds total observed
// seconds per histogram.
type MetricsSnapshot struct {
	Counters      map[MetricID]uint64
	Histograms    map[MetricID][]uint64
	HistogramSums map[MetricID]float64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

func (m *Metrics) LatencyEnabled() bool {
	return m != nil && m.enableLatency
}

// Inc adds one to the counter id.
func (m *Metrics) Inc(id MetricID) {
	m.Add(id, 1)
}

// Add adds n to the counter id.
func (m *Metrics) Add(id MetricID, n uint64) {
	if m == nil || !m.enabled || id >= metricIDCount || n == 0 {
		return
	}
	atomic.AddUint64(&m.counters[id].value, n)
}

// Observe records d in the histogram id. Only latency metric IDs accept
// observations.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enabled || !m.enableLatency || !isLatencyMetric(id) {
		return
	}
	if d < 0 {
		d = 0
	}

	h := &m.histograms[id]
	atomic.AddUint64(&h.buckets[bucketIndex(d)], 1)
	atomic.AddUint64(&h.sumNS, uint64(d))
}

func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies every counter, and every histogram when latency
// histograms are enabled.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return emptySnapshot()
	}

	s := MetricsSnapshot{
		Counters:      make(map[MetricID]uint64, int(metricIDCount)),
		Histograms:    make(map[MetricID][]uint64, 2),
		HistogramSums: make(map[MetricID]float64, 2),
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		if isLatencyMetric(id) {
			continue
		}
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}

	if m.enableLatency {
		for id := MetricID(0); id < metricIDCount; id++ {
			if !isLatencyMetric(id) {
				continue
			}
			h := &m.histograms[id]
			buckets := make([]uint64, histBucketCount)
			for i := 0; i < histBucketCount; i++ {
				buckets[i] = atomic.LoadUint64(&h.buckets[i])
			}
			s.Histograms[id] = buckets
			s.HistogramSums[id] = time.Duration(atomic.LoadUint64(&h.sumNS)).Seconds()
		}
	}

	return s
}

func emptySnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Counters:      map[MetricID]uint64{},
		Histograms:    map[MetricID][]uint64{},
		HistogramSums: map[MetricID]float64{},
	}
}

func isLatencyMetric(id MetricID) bool {
	return id == MetricPolicyCheckLatency || id == MetricHashLatency
}

// bucketIndex maps d onto the upper bounds 1ms, 5ms, 10ms, 25ms, 50ms,
// 100ms, 250ms and +Inf.
func bucketIndex(d time.Duration) int {
	switch {
	case d <= time.Millisecond:
		return 0
	case d <= 5*time.Millisecond:
		return 1
	case d <= 10*time.Millisecond:
		return 2
	case d <= 25*time.Millisecond:
		return 3
	case d <= 50*time.Millisecond:
		return 4
	case d <= 100*time.Millisecond:
		return 5
	case d <= 250*time.Millisecond:
		return 6
	default:
		return 7
	}
}
