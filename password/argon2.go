package password

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/argon2"
)

const (
	minMemoryKB    uint32 = 8 * 1024
	minTimeCost    uint32 = 1
	minParallelism uint8  = 1
	minSaltLength  uint32 = 16
	minKeyLength   uint32 = 16

	// Stored hashes may come from other implementations, so verification
	// accepts the Argon2 minimums rather than the hashing minimums above.
	minVerifySaltLength = 8
	minVerifyKeyLength  = 16
)

var (
	// ErrHashingFailed reports an internal failure of the hashing primitive.
	// It never depends on the password value.
	ErrHashingFailed = errors.New("password hashing failed")
	// ErrMalformedHash reports a stored hash that cannot be parsed or whose
	// parameters are outside what this package is willing to evaluate.
	ErrMalformedHash = errors.New("malformed password hash")
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("invalid password config")
)

// Config holds the Argon2id cost parameters used for new hashes and the
// caps applied to parameters read back from stored hashes.
type Config struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32

	// MaxVerifyMemory (KiB) and MaxVerifyTime bound the cost a stored hash
	// may ask for. Zero means the defaults.
	MaxVerifyMemory uint32
	MaxVerifyTime   uint32
}

// DefaultConfig returns the standard Argon2id parameters (m=19456 KiB, t=2,
// p=1, 16-byte salt, 32-byte key).
func DefaultConfig() Config {
	return Config{
		Memory:          19 * 1024,
		Time:            2,
		Parallelism:     1,
		SaltLength:      16,
		KeyLength:       32,
		MaxVerifyMemory: DefaultMaxVerifyMemory,
		MaxVerifyTime:   DefaultMaxVerifyTime,
	}
}

const (
	// DefaultMaxVerifyMemory is 1 GiB expressed in KiB.
	DefaultMaxVerifyMemory uint32 = 1024 * 1024
	// DefaultMaxVerifyTime is the default iteration cap for stored hashes.
	DefaultMaxVerifyTime uint32 = 16
)

// Argon2 hashes and verifies passwords with Argon2id in PHC string format.
// It is immutable after construction and safe for concurrent use.
type Argon2 struct {
	config Config
	params argon2id.Params
}

// NewArgon2 validates cfg and returns a hasher.
func NewArgon2(cfg Config) (*Argon2, error) {
	if cfg.MaxVerifyMemory == 0 {
		cfg.MaxVerifyMemory = DefaultMaxVerifyMemory
	}
	if cfg.MaxVerifyTime == 0 {
		cfg.MaxVerifyTime = DefaultMaxVerifyTime
	}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Argon2{
		config: cfg,
		params: argon2id.Params{
			Memory:      cfg.Memory,
			Iterations:  cfg.Time,
			Parallelism: cfg.Parallelism,
			SaltLength:  cfg.SaltLength,
			KeyLength:   cfg.KeyLength,
		},
	}, nil
}

// Config returns a copy of the hasher configuration.
func (a *Argon2) Config() Config {
	return a.config
}

// Hash returns a PHC string like `$argon2id$v=19$m=19456,t=2,p=1$<salt>$<key>`
// with a fresh random salt. Any password, including the empty string, can be
// hashed; the only failure is ErrHashingFailed.
func (a *Argon2) Hash(password string) (string, error) {
	// Password processing uses raw string bytes exactly as provided (no Unicode normalization).
	p := a.params
	hash, err := argon2id.CreateHash(password, &p)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashingFailed, err)
	}
	return hash, nil
}

// Verify reports whether password matches encodedHash. A malformed hash
// does not match.
//
// Only argon2id v=19 hashes are evaluated. Well-formed argon2i or argon2d
// hashes, and hashes whose memory or time exceed MaxVerifyMemory or
// MaxVerifyTime, are treated as malformed and report false even when the
// password is correct.
func (a *Argon2) Verify(password, encodedHash string) bool {
	ok, err := a.Compare(password, encodedHash)
	return err == nil && ok
}

// Compare is Verify that reports why a stored hash could not be evaluated.
// The error, if any, wraps ErrMalformedHash. It applies the same variant and
// cost restrictions as Verify.
func (a *Argon2) Compare(password, encodedHash string) (bool, error) {
	params, salt, key, err := a.decode(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(password),
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)

	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

// NeedsUpgrade reports whether encodedHash was produced with weaker
// parameters than the current configuration.
func (a *Argon2) NeedsUpgrade(encodedHash string) (bool, error) {
	params, _, _, err := a.decode(encodedHash)
	if err != nil {
		return false, err
	}

	if a.config.Memory > params.Memory {
		return true, nil
	}
	if a.config.Time > params.Iterations {
		return true, nil
	}
	if a.config.Parallelism > params.Parallelism {
		return true, nil
	}
	if a.config.KeyLength != params.KeyLength {
		return true, nil
	}

	return false, nil
}

// decode parses a PHC string and rejects parameters that would make
// argon2.IDKey panic or cost more than the configured caps.
func (a *Argon2) decode(encodedHash string) (*argon2id.Params, []byte, []byte, error) {
	params, salt, key, err := argon2id.DecodeHash(encodedHash)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	switch {
	case params.Iterations < 1:
		return nil, nil, nil, fmt.Errorf("%w: time parameter must be >= 1", ErrMalformedHash)
	case params.Parallelism < 1:
		return nil, nil, nil, fmt.Errorf("%w: parallelism parameter must be >= 1", ErrMalformedHash)
	case params.Memory < 8*uint32(params.Parallelism):
		return nil, nil, nil, fmt.Errorf("%w: memory parameter too small", ErrMalformedHash)
	case params.Memory > a.config.MaxVerifyMemory:
		return nil, nil, nil, fmt.Errorf("%w: memory parameter exceeds %d KiB", ErrMalformedHash, a.config.MaxVerifyMemory)
	case params.Iterations > a.config.MaxVerifyTime:
		return nil, nil, nil, fmt.Errorf("%w: time parameter exceeds %d", ErrMalformedHash, a.config.MaxVerifyTime)
	case len(salt) < minVerifySaltLength:
		return nil, nil, nil, fmt.Errorf("%w: invalid salt length", ErrMalformedHash)
	case len(key) < minVerifyKeyLength:
		return nil, nil, nil, fmt.Errorf("%w: invalid hash length", ErrMalformedHash)
	}

	return params, salt, key, nil
}

func validateConfig(cfg Config) error {
	if cfg.Memory < minMemoryKB {
		return errors.New("password memory must be >= 8192 KB")
	}
	if cfg.Time < minTimeCost {
		return errors.New("password time must be >= 1")
	}
	if cfg.Parallelism < minParallelism {
		return errors.New("password parallelism must be >= 1")
	}
	if cfg.SaltLength < minSaltLength {
		return errors.New("password salt length must be >= 16")
	}
	if cfg.KeyLength < minKeyLength {
		return errors.New("password key length must be >= 16")
	}
	if cfg.MaxVerifyMemory < cfg.Memory {
		return errors.New("password max verify memory must be >= memory")
	}
	if cfg.MaxVerifyTime < cfg.Time {
		return errors.New("password max verify time must be >= time")
	}

	return nil
}
