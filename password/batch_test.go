package password

import (
	"fmt"
	"testing"
)

func TestBatchHashCollapsesDuplicates(t *testing.T) {
	hasher := newTestHasher(t)

	out := hasher.BatchHash([]string{"dup", "dup"}, 4)
	if len(out) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(out))
	}
	hash, ok := out["dup"]
	if !ok {
		t.Fatal("expected entry for duplicated password")
	}
	if !hasher.Verify("dup", hash) {
		t.Fatal("expected batch hash to verify")
	}
}

func TestBatchHashEveryEntryVerifies(t *testing.T) {
	hasher := newTestHasher(t)

	inputs := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		inputs = append(inputs, fmt.Sprintf("batch-%d", i))
	}
	inputs = append(inputs, "", "batch-3")

	out := hasher.BatchHash(inputs, 3)
	if len(out) != 13 {
		t.Fatalf("expected 13 distinct entries, got %d", len(out))
	}
	for pw, hash := range out {
		if hash == ErrorSentinel {
			t.Fatalf("unexpected sentinel for %q", pw)
		}
		if !hasher.Verify(pw, hash) {
			t.Fatalf("hash for %q does not verify", pw)
		}
	}
}

func TestBatchHashEmptyInput(t *testing.T) {
	hasher := newTestHasher(t)

	if out := hasher.BatchHash(nil, 0); len(out) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(out))
	}
}

func TestFlattenUsesSentinelForFailures(t *testing.T) {
	out := Flatten(map[string]BatchResult{
		"ok":  {Hash: "$argon2id$..."},
		"bad": {Err: ErrHashingFailed},
	})
	if out["ok"] != "$argon2id$..." {
		t.Fatalf("unexpected hash for ok entry: %q", out["ok"])
	}
	if out["bad"] != ErrorSentinel {
		t.Fatalf("expected sentinel for failed entry, got %q", out["bad"])
	}
}

func TestHashEachReportsPerEntryResults(t *testing.T) {
	hasher := newTestHasher(t)

	out := hasher.HashEach([]string{"a", "b", "a"}, 0)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	for pw, r := range out {
		if r.Err != nil {
			t.Fatalf("unexpected error for %q: %v", pw, r.Err)
		}
		if !hasher.Verify(pw, r.Hash) {
			t.Fatalf("hash for %q does not verify", pw)
		}
	}
}
