package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	goPass "github.com/MrEthical07/goPass"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type cliConfig struct {
	LogLevel string         `mapstructure:"log_level"`
	Password passwordConfig `mapstructure:"password"`
	Batch    batchConfig    `mapstructure:"batch"`
	Audit    auditConfig    `mapstructure:"audit"`
	Metrics  metricsConfig  `mapstructure:"metrics"`
}

type passwordConfig struct {
	Memory          uint32 `mapstructure:"memory"`
	Time            uint32 `mapstructure:"time"`
	Parallelism     uint8  `mapstructure:"parallelism"`
	SaltLength      uint32 `mapstructure:"salt_length"`
	KeyLength       uint32 `mapstructure:"key_length"`
	MaxVerifyMemory uint32 `mapstructure:"max_verify_memory"`
	MaxVerifyTime   uint32 `mapstructure:"max_verify_time"`
}

type batchConfig struct {
	Workers int `mapstructure:"workers"`
}

type auditConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	BufferSize int  `mapstructure:"buffer_size"`
	DropIfFull bool `mapstructure:"drop_if_full"`
}

type metricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Latency bool `mapstructure:"latency"`
}

// loadConfig reads, in increasing precedence: built-in defaults, gopass.yaml
// (or the file at path), and GOPASS_* environment variables, after loading
// an optional .env file into the environment.
func loadConfig(path string) (cliConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GOPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gopass")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return cliConfig{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cliConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := goPass.DefaultConfig()

	v.SetDefault("log_level", "warn")

	v.SetDefault("password.memory", d.Password.Memory)
	v.SetDefault("password.time", d.Password.Time)
	v.SetDefault("password.parallelism", d.Password.Parallelism)
	v.SetDefault("password.salt_length", d.Password.SaltLength)
	v.SetDefault("password.key_length", d.Password.KeyLength)
	v.SetDefault("password.max_verify_memory", d.Password.MaxVerifyMemory)
	v.SetDefault("password.max_verify_time", d.Password.MaxVerifyTime)

	v.SetDefault("batch.workers", d.Batch.Workers)

	v.SetDefault("audit.enabled", d.Audit.Enabled)
	v.SetDefault("audit.buffer_size", d.Audit.BufferSize)
	v.SetDefault("audit.drop_if_full", d.Audit.DropIfFull)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.latency", d.Metrics.EnableLatencyHistograms)
}

func (c cliConfig) engineConfig() goPass.Config {
	cfg := goPass.DefaultConfig()
	cfg.Password = goPass.PasswordConfig{
		Memory:          c.Password.Memory,
		Time:            c.Password.Time,
		Parallelism:     c.Password.Parallelism,
		SaltLength:      c.Password.SaltLength,
		KeyLength:       c.Password.KeyLength,
		MaxVerifyMemory: c.Password.MaxVerifyMemory,
		MaxVerifyTime:   c.Password.MaxVerifyTime,
	}
	cfg.Batch.Workers = c.Batch.Workers
	cfg.Audit = goPass.AuditConfig{
		Enabled:    c.Audit.Enabled,
		BufferSize: c.Audit.BufferSize,
		DropIfFull: c.Audit.DropIfFull,
	}
	cfg.Metrics = goPass.MetricsConfig{
		Enabled:                 c.Metrics.Enabled,
		EnableLatencyHistograms: c.Metrics.Enabled && c.Metrics.Latency,
	}
	return cfg
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
