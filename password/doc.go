// Package password implements password hashing and verification with Argon2id
// defaults, parallel batch hashing, and the SHA-1 digest used for breach-list
// lookups.
//
// # Output format
//
// Hashes are encoded in PHC string format with unpadded base64:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// Each call draws a fresh salt from crypto/rand. [Argon2.NeedsUpgrade] reports
// hashes produced with weaker parameters so callers can re-hash after the next
// successful verification.
//
// # Verification
//
// [Argon2.Verify] never returns an error: a stored hash that cannot be parsed,
// or whose parameters exceed the configured verification caps, simply does not
// match. [Argon2.Compare] exposes the reason as an error wrapping
// [ErrMalformedHash].
//
// # Batch hashing
//
// [Argon2.HashEach] hashes distinct inputs on a bounded worker pool and keys
// results by plaintext, so duplicate inputs produce one entry.
// [Argon2.BatchHash] replaces per-entry failures with [ErrorSentinel].
//
// # Breach digests
//
// [SHA1Hex] and [BreachRange] produce lookup keys for k-anonymity range
// queries. SHA-1 is fast and is never used for credential storage.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords. Callers supply plaintext and receive hashes.
//   - Make network calls, including breach-database queries.
//   - Import any other goPass package.
//   - Log plaintext passwords or hash parameters at runtime.
package password
