package goPass

import (
	"context"
	"io"

	"github.com/MrEthical07/goPass/internal/audit"
	"github.com/rs/zerolog"
)

// Audit event types emitted by the Engine.
const (
	AuditEventPolicyCheck  = "password_policy_check"
	AuditEventHash         = "password_hash"
	AuditEventVerify       = "password_verify"
	AuditEventBatchHash    = "password_batch_hash"
	AuditEventBreachDigest = "password_breach_digest"
)

// AuditEvent is one password-operation audit record. Events carry outcomes
// and counts, never passwords or hashes.
type AuditEvent = audit.Event

// AuditSink receives audit events from the Engine's dispatcher goroutine.
type AuditSink interface {
	Emit(ctx context.Context, event AuditEvent)
}

// NoOpSink drops audit events.
type NoOpSink = audit.NoOpSink

// ChannelSink buffers audit events in a channel readable through Events.
type ChannelSink = audit.ChannelSink

// JSONWriterSink writes one JSON object per line.
type JSONWriterSink = audit.JSONWriterSink

// LoggerSink writes audit events through a zerolog.Logger.
type LoggerSink = audit.LoggerSink

func NewChannelSink(buffer int) *ChannelSink {
	return audit.NewChannelSink(buffer)
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return audit.NewJSONWriterSink(w)
}

func NewLoggerSink(logger zerolog.Logger) *LoggerSink {
	return audit.NewLoggerSink(logger)
}

func newAuditDispatcher(cfg AuditConfig, sink AuditSink) *audit.Dispatcher {
	var s audit.Sink
	if sink != nil {
		s = sink
	}
	return audit.NewDispatcher(audit.Config{
		Enabled:    cfg.Enabled,
		BufferSize: cfg.BufferSize,
		DropIfFull: cfg.DropIfFull,
	}, s)
}
