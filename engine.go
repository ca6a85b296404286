package goPass

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MrEthical07/goPass/internal/audit"
	"github.com/MrEthical07/goPass/password"
	"github.com/MrEthical07/goPass/strength"
	"github.com/rs/zerolog"
)

// Engine runs password policy checks, Argon2id hashing and verification,
// batch hashing and breach digests with metrics, audit events and logging
// around each call.
//
// Engine instances are created through [Builder.Build] and are safe for
// concurrent use. Call Close to flush pending audit events.
type Engine struct {
	config  Config
	hasher  *password.Argon2
	logger  zerolog.Logger
	audit   *audit.Dispatcher
	metrics *Metrics
}

// Close flushes buffered audit events and stops the dispatcher.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports audit events lost to dispatcher backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return emptySnapshot()
	}
	return e.metrics.Snapshot()
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	if e == nil {
		return Config{}
	}
	return cloneConfig(e.config)
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) metricAdd(id MetricID, n uint64) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Add(id, n)
}

func (e *Engine) metricObserve(id MetricID, d time.Duration) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Observe(id, d)
}

func (e *Engine) emitAudit(eventType string, success bool, err error, metadata map[string]string) {
	if e == nil || e.audit == nil {
		return
	}
	e.audit.Emit(context.Background(), audit.NewEvent(eventType, success, err, metadata))
}

/*
====================================
POLICY
====================================
*/

// CheckPasswordPolicy scores password, estimates its entropy and decides
// policy compliance. It never fails.
func (e *Engine) CheckPasswordPolicy(password string) PasswordAnalysis {
	analysis, elapsed := strength.CheckTimed(password)
	if e == nil {
		return analysis
	}

	e.metricInc(MetricPolicyCheck)
	if analysis.IsCompliant {
		e.metricInc(MetricPolicyCompliant)
	} else {
		e.metricInc(MetricPolicyNonCompliant)
	}
	e.metricObserve(MetricPolicyCheckLatency, elapsed)

	e.logger.Debug().
		Uint32("score", analysis.StrengthScore).
		Float64("entropy_bits", analysis.EntropyBits).
		Bool("compliant", analysis.IsCompliant).
		Int("feedback", len(analysis.Feedback)).
		Dur("elapsed", elapsed).
		Msg("password policy checked")

	e.emitAudit(AuditEventPolicyCheck, analysis.IsCompliant, nil, map[string]string{
		"score": strconv.FormatUint(uint64(analysis.StrengthScore), 10),
	})

	return analysis
}

/*
====================================
HASHING
====================================
*/

// HashPassword returns an Argon2id PHC string for password with a fresh
// random salt. The only error is one wrapping [ErrHashingFailed].
func (e *Engine) HashPassword(password string) (string, error) {
	if e == nil || e.hasher == nil {
		return "", ErrEngineNotReady
	}

	start := time.Now()
	hash, err := e.hasher.Hash(password)
	elapsed := time.Since(start)
	e.metricObserve(MetricHashLatency, elapsed)

	if err != nil {
		e.metricInc(MetricHashFailure)
		e.logger.Warn().Err(err).Dur("elapsed", elapsed).Msg("password hashing failed")
		e.emitAudit(AuditEventHash, false, err, nil)
		return "", err
	}

	e.metricInc(MetricHashSuccess)
	e.logger.Debug().Dur("elapsed", elapsed).Msg("password hashed")
	e.emitAudit(AuditEventHash, true, nil, nil)

	return hash, nil
}

// VerifyPasswordHash reports whether password matches the stored PHC hash.
// A malformed or unsafe stored hash yields false. Only argon2id v=19 is
// accepted: argon2i and argon2d hashes, and hashes asking for more than
// PasswordConfig.MaxVerifyMemory or MaxVerifyTime, count as malformed.
func (e *Engine) VerifyPasswordHash(password, hash string) bool {
	if e == nil || e.hasher == nil {
		return false
	}

	ok, err := e.hasher.Compare(password, hash)
	switch {
	case err != nil:
		e.metricInc(MetricVerifyMalformed)
		e.logger.Debug().Err(err).Msg("stored password hash rejected")
		e.emitAudit(AuditEventVerify, false, ErrMalformedHash, map[string]string{"result": "malformed"})
		return false
	case ok:
		e.metricInc(MetricVerifyMatch)
		e.emitAudit(AuditEventVerify, true, nil, map[string]string{"result": "match"})
	default:
		e.metricInc(MetricVerifyMismatch)
		e.emitAudit(AuditEventVerify, false, nil, map[string]string{"result": "mismatch"})
	}

	return ok
}

// NeedsRehash reports whether a stored hash was produced with weaker
// parameters than the engine's current configuration. Malformed hashes
// return an error wrapping [ErrMalformedHash].
func (e *Engine) NeedsRehash(hash string) (bool, error) {
	if e == nil || e.hasher == nil {
		return false, ErrEngineNotReady
	}

	upgrade, err := e.hasher.NeedsUpgrade(hash)
	if err != nil {
		return false, err
	}
	if upgrade {
		e.metricInc(MetricRehashNeeded)
	}
	return upgrade, nil
}

/*
====================================
BATCH
====================================
*/

// BatchHashPasswords hashes every distinct password concurrently. Failed
// entries map to [BatchErrorSentinel]. Duplicate inputs yield one entry.
func (e *Engine) BatchHashPasswords(passwords []string) map[string]string {
	return password.Flatten(e.BatchHashPasswordResults(passwords))
}

// BatchHashPasswordResults is BatchHashPasswords with per-entry errors
// instead of the sentinel.
func (e *Engine) BatchHashPasswordResults(passwords []string) map[string]BatchHashResult {
	if e == nil || e.hasher == nil {
		out := make(map[string]BatchHashResult, len(passwords))
		for _, pw := range passwords {
			out[pw] = BatchHashResult{Err: ErrEngineNotReady}
		}
		return out
	}

	start := time.Now()
	results := e.hasher.HashEach(passwords, e.config.Batch.Workers)
	elapsed := time.Since(start)

	var failed uint64
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	e.metricInc(MetricBatchHash)
	e.metricAdd(MetricHashSuccess, uint64(len(results))-failed)
	e.metricAdd(MetricHashFailure, failed)
	e.metricAdd(MetricBatchEntryFailed, failed)

	e.logger.Debug().
		Int("inputs", len(passwords)).
		Int("distinct", len(results)).
		Uint64("failed", failed).
		Dur("elapsed", elapsed).
		Msg("password batch hashed")
	if failed > 0 {
		e.logger.Warn().Uint64("failed", failed).Msg("password batch had failed entries")
	}

	var batchErr error
	if failed > 0 {
		batchErr = fmt.Errorf("%d batch entries failed", failed)
	}
	e.emitAudit(AuditEventBatchHash, failed == 0, batchErr, map[string]string{
		"distinct": strconv.Itoa(len(results)),
		"failed":   strconv.FormatUint(failed, 10),
	})

	return results
}

/*
====================================
BREACH DIGEST
====================================
*/

// HashPasswordSHA1 returns the uppercase hex SHA-1 digest of password for
// breach-database lookups. It must never be used to store credentials.
func (e *Engine) HashPasswordSHA1(pw string) string {
	digest := password.SHA1Hex(pw)
	if e != nil {
		e.metricInc(MetricBreachDigest)
		e.emitAudit(AuditEventBreachDigest, true, nil, nil)
	}
	return digest
}

// BreachRange returns the 5-character digest prefix for a range query and
// the 35-character suffix to match in the response.
func (e *Engine) BreachRange(pw string) (prefix, suffix string) {
	prefix, suffix = password.BreachRange(pw)
	if e != nil {
		e.metricInc(MetricBreachDigest)
		e.emitAudit(AuditEventBreachDigest, true, nil, map[string]string{"mode": "range"})
	}
	return prefix, suffix
}
