package goPass

import (
	"fmt"

	"github.com/MrEthical07/goPass/password"
	"github.com/rs/zerolog"
)

// Builder assembles an [Engine]. It is single-use: a second Build returns
// [ErrBuilderUsed].
type Builder struct {
	config    Config
	logger    zerolog.Logger
	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New starts from the default configuration and a disabled logger.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
		logger: zerolog.Nop(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig replaces the whole configuration. Validation happens in Build.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithLogger sets the structured logger used for operation logs.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not enable auditing on its own; set Config.Audit.Enabled.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and returns a ready [Engine].
//
// Build may return an error wrapping [ErrInvalidConfig], or [ErrBuilderUsed]
// when called twice.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- HASHER --------
	hasher, err := password.NewArgon2(cfg.Password.hasherConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	engine := &Engine{
		config:  cfg,
		hasher:  hasher,
		logger:  b.logger.With().Str("component", "gopass").Logger(),
		metrics: NewMetrics(cfg.Metrics),
		audit:   newAuditDispatcher(cfg.Audit, b.auditSink),
	}

	b.built = true

	engine.logger.Debug().
		Uint32("memory_kib", cfg.Password.Memory).
		Uint32("time", cfg.Password.Time).
		Uint8("parallelism", cfg.Password.Parallelism).
		Int("batch_workers", cfg.Batch.Workers).
		Bool("audit", cfg.Audit.Enabled).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("engine built")

	return engine, nil
}
