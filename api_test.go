package goPass

import (
	"strings"
	"testing"
)

func TestPackageLevelPolicy(t *testing.T) {
	got := CheckPasswordPolicy("password")
	if got.IsCompliant {
		t.Fatal("common password must not be compliant")
	}

	found := false
	for _, msg := range got.Feedback {
		if strings.Contains(msg, "too common") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected common-password feedback, got %v", got.Feedback)
	}

	if a := CheckPasswordPolicy(""); a.EntropyBits != 0 || a.PatternAnalysis.Length != 0 {
		t.Fatalf("unexpected empty-password analysis: %+v", a)
	}
}

func TestPackageLevelHashVerify(t *testing.T) {
	hash, err := HashPassword("default params")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$") {
		t.Fatalf("unexpected default parameters in %q", hash)
	}
	if !VerifyPasswordHash("default params", hash) {
		t.Fatal("expected match")
	}
	if VerifyPasswordHash("other", hash) {
		t.Fatal("expected mismatch")
	}
	if VerifyPasswordHash("x", "not-a-valid-hash-string") {
		t.Fatal("malformed hash must not verify")
	}

	if upgrade, err := NeedsRehash(hash); err != nil || upgrade {
		t.Fatalf("default hash must not need rehash: %v %v", upgrade, err)
	}
}

func TestPackageLevelBatchCollapsesDuplicates(t *testing.T) {
	out := BatchHashPasswords([]string{"same", "same"})
	if len(out) != 1 {
		t.Fatalf("expected one entry, got %d", len(out))
	}
	if !VerifyPasswordHash("same", out["same"]) {
		t.Fatal("batch hash must verify")
	}
}

func TestPackageLevelSHA1(t *testing.T) {
	if got := HashPasswordSHA1("password"); got != "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8" {
		t.Fatalf("unexpected digest %s", got)
	}
	prefix, suffix := BreachRange("password")
	if prefix != "5BAA6" || suffix != "1E4C9B93F3F0682250B6CF8331B7EE68FD8" {
		t.Fatalf("unexpected range %s/%s", prefix, suffix)
	}
}

func TestDefaultEngineBuildsOnce(t *testing.T) {
	first := defaultEngine()
	if first == nil {
		t.Fatal("default engine must not be nil")
	}
	if second := defaultEngine(); second != first {
		t.Fatal("default engine must be built once")
	}
	cfg := first.Config()
	if cfg.Password != DefaultConfig().Password {
		t.Fatalf("default engine password config = %+v, want %+v", cfg.Password, DefaultConfig().Password)
	}
	if cfg.Metrics.Enabled || cfg.Audit.Enabled {
		t.Fatalf("default engine must run without observability: %+v", cfg)
	}
}
