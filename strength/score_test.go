package strength

import (
	"math"
	"strings"
	"testing"
)

func TestScoreTable(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want uint32
	}{
		{"empty", "", 5},
		{"short lower", "abcd", 0},
		{"short lower no sequence", "zxyw", 15},
		{"repeat saturates", "aaa", 5},
		{"repeat and sequence saturate", "aaabc", 0},
		{"common", "Password", 45},
		{"all classes long", "Zq9!mK2#vL7$", 95},
		{"all classes with sequence", "Abc!x9Zq#w2P", 80},
		{"all classes with repeats", "aaaBBB111!!!", 85},
		{"medium", "Zq9!mK2#", 80},
		{"devanagari has no case or symbols", "किताबघरकिताबघर", 40},
		{"circled capitals are uppercase", "ⒶⒷⒸⒹⒺⒻⒼⒽ", 35},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(Analyze(tc.in)); got != tc.want {
				t.Fatalf("Score(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestScoreAlwaysBounded(t *testing.T) {
	inputs := []string{
		"",
		strings.Repeat("a", 10000),
		strings.Repeat("🔒", 500),
		"ÄÖÜäöü١٢٣٤!!!",
		"\x00\x00\x00",
		"\xff\xfe\xfd",
	}
	for _, in := range inputs {
		if got := Score(Analyze(in)); got > 100 {
			t.Fatalf("Score(%q) = %d out of range", in, got)
		}
	}

	// Every flag combination with every penalty combination.
	for mask := 0; mask < 1<<6; mask++ {
		for _, length := range []uint32{0, 7, 8, 11, 12, math.MaxUint32} {
			p := PatternAnalysis{
				HasLowercase: mask&1 != 0,
				HasUppercase: mask&2 != 0,
				HasNumbers:   mask&4 != 0,
				HasSymbols:   mask&8 != 0,
				Length:       length,
			}
			if mask&16 != 0 {
				p.RepeatedChars = 1
			}
			if mask&32 != 0 {
				p.SequentialChars = 4
			}
			if got := Score(p); got > 100 {
				t.Fatalf("Score(%+v) = %d out of range", p, got)
			}
		}
	}
}

func TestEntropy(t *testing.T) {
	if got := Entropy(Analyze("")); got != 0 {
		t.Fatalf("expected 0 entropy for empty password, got %v", got)
	}
	if got := Entropy(PatternAnalysis{Length: 50}); got != 0 {
		t.Fatalf("expected 0 entropy with no classes, got %v", got)
	}

	want := 3 * math.Log2(26)
	if got := Entropy(Analyze("xyz")); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Entropy(xyz) = %v, want %v", got, want)
	}

	want = 12 * math.Log2(94)
	if got := Entropy(Analyze("Zq9!mK2#vL7$")); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Entropy = %v, want %v", got, want)
	}

	// Symbol alphabet is fixed at 32 whatever the symbol used.
	if a, b := Entropy(Analyze("!!!!")), Entropy(Analyze("🔒🔒🔒🔒")); a != b {
		t.Fatalf("expected equal symbol entropy, got %v and %v", a, b)
	}
}

func TestEntropyNeverNaN(t *testing.T) {
	for _, in := range []string{"", "a", "!", strings.Repeat("Z9", 4096)} {
		got := Entropy(Analyze(in))
		if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
			t.Fatalf("Entropy(%q) = %v", in, got)
		}
	}
}
