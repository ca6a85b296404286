package internaldefs

import (
	goPass "github.com/MrEthical07/goPass"
)

// CounterDef maps a goPass counter to its exported name.
type CounterDef struct {
	ID   goPass.MetricID
	Name string
	Help string
}

// HistogramDef maps a goPass latency histogram to its exported name.
type HistogramDef struct {
	ID   goPass.MetricID
	Name string
	Help string
}

// AuditDroppedName is the exported name of the dropped audit event counter.
const (
	AuditDroppedName = "gopass_audit_dropped_total"
	AuditDroppedHelp = "Dropped audit events due to dispatcher backpressure."
)

// CounterDefs lists every exported counter in a stable order.
var CounterDefs = []CounterDef{
	{ID: goPass.MetricPolicyCheck, Name: "gopass_policy_check_total", Help: "Password policy evaluations."},
	{ID: goPass.MetricPolicyCompliant, Name: "gopass_policy_compliant_total", Help: "Policy evaluations that met the policy."},
	{ID: goPass.MetricPolicyNonCompliant, Name: "gopass_policy_non_compliant_total", Help: "Policy evaluations that did not meet the policy."},
	{ID: goPass.MetricHashSuccess, Name: "gopass_hash_success_total", Help: "Argon2id hashes produced."},
	{ID: goPass.MetricHashFailure, Name: "gopass_hash_failure_total", Help: "Argon2id hashing failures."},
	{ID: goPass.MetricVerifyMatch, Name: "gopass_verify_match_total", Help: "Verifications that matched."},
	{ID: goPass.MetricVerifyMismatch, Name: "gopass_verify_mismatch_total", Help: "Verifications that did not match."},
	{ID: goPass.MetricVerifyMalformed, Name: "gopass_verify_malformed_total", Help: "Stored hashes rejected as malformed or unsafe."},
	{ID: goPass.MetricBatchHash, Name: "gopass_batch_hash_total", Help: "Batch hashing calls."},
	{ID: goPass.MetricBatchEntryFailed, Name: "gopass_batch_entry_failed_total", Help: "Batch entries that failed to hash."},
	{ID: goPass.MetricBreachDigest, Name: "gopass_breach_digest_total", Help: "SHA-1 breach digests computed."},
	{ID: goPass.MetricRehashNeeded, Name: "gopass_rehash_needed_total", Help: "Stored hashes weaker than the current parameters."},
}

// HistogramDefs lists every exported latency histogram.
var HistogramDefs = []HistogramDef{
	{ID: goPass.MetricPolicyCheckLatency, Name: "gopass_policy_check_latency_seconds", Help: "Policy evaluation latency histogram."},
	{ID: goPass.MetricHashLatency, Name: "gopass_hash_latency_seconds", Help: "Argon2id hashing latency histogram."},
}

// HistogramUpperBounds holds the finite bucket bounds in seconds. The last
// snapshot bucket is +Inf.
var HistogramUpperBounds = []float64{
	0.001,
	0.005,
	0.01,
	0.025,
	0.05,
	0.1,
	0.25,
}

// HistogramBoundSuffix names each bucket, +Inf included, for exporters
// that flatten buckets into separate instruments.
var HistogramBoundSuffix = []string{
	"0_001",
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"inf",
}

// NormalizeBuckets pads or truncates raw to exactly 8 buckets.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	copy(out[:], raw)
	return out
}

// CumulativeBuckets converts per-bucket counts into running totals.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
