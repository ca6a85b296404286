// Package audit implements async event dispatching for password operations.
//
// # Components
//
//   - [Sink]: interface for event consumers (channel, JSON writer, zerolog, no-op).
//   - [Dispatcher]: buffered async relay that either drops or blocks when full.
//   - [Event]: structured audit record with ID, timestamp, type, outcome and metadata.
//
// # Architecture boundaries
//
// This package owns event buffering and sink delivery. The Engine decides
// which events to emit and what metadata they carry.
//
// # What this package must NOT do
//
//   - Accept or record plaintext passwords, digests or stored hashes.
//   - Import goPass or any sibling internal package.
//   - Perform network I/O beyond what a caller-supplied Sink does.
package audit
