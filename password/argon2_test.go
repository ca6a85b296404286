package password

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/crypto/argon2"
)

func testConfig() Config {
	return Config{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func newTestHasher(t *testing.T) *Argon2 {
	t.Helper()
	hasher, err := NewArgon2(testConfig())
	if err != nil {
		t.Fatalf("NewArgon2 error: %v", err)
	}
	return hasher
}

func TestHashAndVerify(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("P@ssw0rd-Ascii")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Fatalf("unexpected PHC prefix: %s", hash)
	}

	if !hasher.Verify("P@ssw0rd-Ascii", hash) {
		t.Fatal("expected password verification to succeed")
	}
}

func TestHashRoundTripUnusualInputs(t *testing.T) {
	hasher := newTestHasher(t)

	for _, pw := range []string{"", "a", "\x00", "pass\x00word", "ÄÖÜ١٢٣٤🔒", strings.Repeat("long", 4096)} {
		hash, err := hasher.Hash(pw)
		if err != nil {
			t.Fatalf("Hash(%q) error: %v", pw, err)
		}
		if !hasher.Verify(pw, hash) {
			t.Fatalf("expected round trip to verify for %q", pw)
		}
		if hasher.Verify(pw+"x", hash) {
			t.Fatalf("expected %q+x not to verify", pw)
		}
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := hasher.Compare("wrong-password", hash)
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password verification to fail")
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	hasher := newTestHasher(t)

	a, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct hashes for repeated calls")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := newTestHasher(t)

	if hasher.Verify("password", "not-a-valid-hash-string") {
		t.Fatal("expected malformed hash verification to fail")
	}
	if _, err := hasher.Compare("password", "not-a-phc-hash"); !errors.Is(err, ErrMalformedHash) {
		t.Fatalf("expected ErrMalformedHash, got %v", err)
	}
}

func TestVerifyRejectsUnsafeParameters(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("param-test")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	cases := map[string]string{
		"zero time":        strings.Replace(hash, "t=1", "t=0", 1),
		"zero parallelism": strings.Replace(hash, "p=1", "p=0", 1),
		"huge memory":      strings.Replace(hash, "m=8192", "m=4294967295", 1),
		"huge time":        strings.Replace(hash, "t=1", "t=100000", 1),
		"wrong version":    strings.Replace(hash, "$v=19$", "$v=18$", 1),
		"wrong variant":    strings.Replace(hash, "$argon2id$", "$argon2i$", 1),
		"empty key":        hash[:strings.LastIndex(hash, "$")+1],
	}
	for name, bad := range cases {
		if hasher.Verify("param-test", bad) {
			t.Fatalf("%s: expected verification to fail", name)
		}
		if _, err := hasher.Compare("param-test", bad); !errors.Is(err, ErrMalformedHash) {
			t.Fatalf("%s: expected ErrMalformedHash, got %v", name, err)
		}
	}
}

func encodePHC(variant string, memory, time uint32, salt, key []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=1$%s$%s",
		variant, argon2.Version, memory, time,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
}

func TestVerifyRejectsOtherVariantsAndCostlyHashes(t *testing.T) {
	hasher, err := NewArgon2(testConfig())
	if err != nil {
		t.Fatalf("NewArgon2 error: %v", err)
	}
	if hasher.Config().MaxVerifyTime != 16 {
		t.Fatalf("expected default time cap 16, got %d", hasher.Config().MaxVerifyTime)
	}

	const pw = "correct horse"
	salt := []byte("0123456789abcdef")

	cases := []struct {
		name string
		hash string
		want bool
	}{
		{"argon2id at time cap", encodePHC("argon2id", 8192, 16, salt, argon2.IDKey([]byte(pw), salt, 16, 8192, 1, 32)), true},
		{"argon2id above time cap", encodePHC("argon2id", 8192, 17, salt, argon2.IDKey([]byte(pw), salt, 17, 8192, 1, 32)), false},
		{"argon2i", encodePHC("argon2i", 8192, 1, salt, argon2.Key([]byte(pw), salt, 1, 8192, 1, 32)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasher.Verify(pw, tc.hash); got != tc.want {
				t.Fatalf("Verify(%q) = %v, want %v", tc.hash, got, tc.want)
			}
			_, err := hasher.Compare(pw, tc.hash)
			if tc.want && err != nil {
				t.Fatalf("unexpected Compare error: %v", err)
			}
			if !tc.want && !errors.Is(err, ErrMalformedHash) {
				t.Fatalf("expected ErrMalformedHash, got %v", err)
			}
		})
	}
}

func TestVerifyUsesStoredParameters(t *testing.T) {
	hasher, err := NewArgon2(DefaultConfig())
	if err != nil {
		t.Fatalf("NewArgon2 error: %v", err)
	}

	// Parameters come from the stored hash, not the verifier's config.
	other := newTestHasher(t)
	hash, err := other.Hash("interop")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !hasher.Verify("interop", hash) {
		t.Fatal("expected hash with different parameters to verify")
	}
}

func TestNeedsUpgrade(t *testing.T) {
	oldHasher := newTestHasher(t)

	hash, err := oldHasher.Hash("test-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	newHasher, err := NewArgon2(DefaultConfig())
	if err != nil {
		t.Fatalf("NewArgon2(new) error: %v", err)
	}

	needsUpgrade, err := newHasher.NeedsUpgrade(hash)
	if err != nil {
		t.Fatalf("NeedsUpgrade error: %v", err)
	}
	if !needsUpgrade {
		t.Fatal("expected NeedsUpgrade to return true for weaker hash parameters")
	}
}

func TestNeedsUpgradeSameConfig(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("same-config-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	needsUpgrade, err := hasher.NeedsUpgrade(hash)
	if err != nil {
		t.Fatalf("NeedsUpgrade error: %v", err)
	}
	if needsUpgrade {
		t.Fatal("expected NeedsUpgrade to return false for current parameters")
	}
}

func TestNewArgon2RejectsWeakConfig(t *testing.T) {
	mutate := []func(*Config){
		func(c *Config) { c.Memory = 1024 },
		func(c *Config) { c.Time = 0 },
		func(c *Config) { c.Parallelism = 0 },
		func(c *Config) { c.SaltLength = 8 },
		func(c *Config) { c.KeyLength = 8 },
		func(c *Config) { c.MaxVerifyMemory = c.Memory - 1 },
		func(c *Config) { c.MaxVerifyTime = 1; c.Time = 2 },
	}
	for i, m := range mutate {
		cfg := testConfig()
		m(&cfg)
		if _, err := NewArgon2(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}

func TestDefaultVerifyCapsApplied(t *testing.T) {
	hasher := newTestHasher(t)

	cfg := hasher.Config()
	if cfg.MaxVerifyMemory != DefaultMaxVerifyMemory || cfg.MaxVerifyTime != DefaultMaxVerifyTime {
		t.Fatalf("expected default verify caps, got %+v", cfg)
	}
}
