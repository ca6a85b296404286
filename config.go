package goPass

import (
	"errors"
	"fmt"

	"github.com/MrEthical07/goPass/password"
)

// Config defines a public type used by goPass APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Password PasswordConfig
	Batch    BatchConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig holds the Argon2id parameters for new hashes and the caps
// applied to parameters read from stored hashes.
type PasswordConfig struct {
	Memory      uint32 // in KB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32

	MaxVerifyMemory uint32 // in KB
	MaxVerifyTime   uint32
}

/*
====================================
BATCH CONFIG
====================================
*/

// BatchConfig controls the batch hashing worker pool.
type BatchConfig struct {
	// Workers caps concurrent hash computations per batch. Zero means GOMAXPROCS.
	Workers int
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by goPass APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goPass APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the configuration used by the package-level functions.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	pw := password.DefaultConfig()
	return Config{
		Password: PasswordConfig{
			Memory:          pw.Memory,
			Time:            pw.Time,
			Parallelism:     pw.Parallelism,
			SaltLength:      pw.SaltLength,
			KeyLength:       pw.KeyLength,
			MaxVerifyMemory: pw.MaxVerifyMemory,
			MaxVerifyTime:   pw.MaxVerifyTime,
		},
		Batch: BatchConfig{
			Workers: 0,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

func (c PasswordConfig) hasherConfig() password.Config {
	return password.Config{
		Memory:          c.Memory,
		Time:            c.Time,
		Parallelism:     c.Parallelism,
		SaltLength:      c.SaltLength,
		KeyLength:       c.KeyLength,
		MaxVerifyMemory: c.MaxVerifyMemory,
		MaxVerifyTime:   c.MaxVerifyTime,
	}
}

/*
====================================
VALIDATION
====================================
*/

// Validate reports the first invalid setting. The error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) validate() error {
	// Password
	if c.Password.Memory < 8*1024 {
		return errors.New("Password Memory must be >= 8192 KB")
	}
	if c.Password.Time < 1 {
		return errors.New("Password Time must be >= 1")
	}
	if c.Password.Parallelism < 1 {
		return errors.New("Password Parallelism must be >= 1")
	}
	if c.Password.SaltLength < 16 {
		return errors.New("Password SaltLength must be >= 16")
	}
	if c.Password.KeyLength < 16 {
		return errors.New("Password KeyLength must be >= 16")
	}
	if c.Password.MaxVerifyMemory != 0 && c.Password.MaxVerifyMemory < c.Password.Memory {
		return errors.New("Password MaxVerifyMemory must be >= Memory")
	}
	if c.Password.MaxVerifyTime != 0 && c.Password.MaxVerifyTime < c.Password.Time {
		return errors.New("Password MaxVerifyTime must be >= Time")
	}

	// Batch
	if c.Batch.Workers < 0 {
		return errors.New("Batch Workers must be >= 0")
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when Audit is enabled")
	}

	// Metrics
	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return errors.New("Metrics EnableLatencyHistograms requires Metrics Enabled")
	}

	return nil
}
