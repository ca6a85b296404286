// Package goPass evaluates password strength and policy compliance, hashes
// and verifies passwords with Argon2id, hashes batches concurrently and
// produces SHA-1 digests for breach-database lookups.
//
// The package-level functions use a lazily built default [Engine]. Services
// that need their own Argon2 cost, metrics, audit events or logging build one
// through [New] and [Builder.Build]. Engine methods are safe to call from
// multiple goroutines.
//
// # Architecture boundaries
//
// goPass is the public surface. It exposes [Engine], [Builder], [Config] and
// value types (PasswordAnalysis, MetricsSnapshot, AuditEvent). Scoring lives
// in strength/, hashing in password/ and audit dispatch in internal/audit.
//
// # What this package must NOT do
//
//   - Log, audit or export plaintext passwords, SHA-1 digests or stored hashes.
//   - Perform network I/O. Breach lookups are the caller's job; [BreachRange]
//     only prepares the query.
//   - Import any sub-package that re-imports goPass (no import cycles).
//
// # Performance contract
//
// CheckPasswordPolicy is the hot path and completes in microseconds. Hashing
// cost is set by Config.Password and dominates every other operation.
package goPass
