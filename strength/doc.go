// Package strength implements password strength analysis: pattern detection,
// scoring, entropy estimation, feedback generation and the compliance policy.
//
// # Scoring model
//
// Scores are produced by a small additive point system (length band plus one
// bonus per character class, minus saturating penalties for repeated runs and
// known sequences), clamped to [0, 100]. The model is a heuristic chosen for
// predictability and explainable feedback. It is not a cryptographic strength
// proof and should not be read as one.
//
// Entropy is estimated as length × log2(charset) where the charset is the sum
// of fixed per-class alphabet sizes. Symbols always contribute 32, regardless
// of which symbols the password actually uses, so the figure is an
// approximation rather than a measured value.
//
// # Compliance
//
// [Check] reports a password as compliant only when it has at least 8
// characters, scores above 50, is not in the common-password set and contains
// no known sequence. Sequences therefore cost 15 points in [Score] and also
// fail compliance outright.
//
// # Architecture boundaries
//
// Every function in this package is pure and safe for concurrent use. The
// sequence matchers and the common-password set are built once per process
// and never mutated afterwards.
//
// # What this package must NOT do
//
//   - Hash, store or log passwords.
//   - Perform I/O beyond reading its embedded word list.
//   - Import goPass or any sibling package.
package strength
