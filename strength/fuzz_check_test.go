package strength

import (
	"math"
	"testing"
	"unicode/utf8"
)

func FuzzCheck(f *testing.F) {
	f.Add("")
	f.Add("aaaa")
	f.Add("abc123")
	f.Add("Zq9!mK2#vL7$")
	f.Add("ÄÖÜ١٢٣٤🔒")
	f.Add("\xff\x00")

	f.Fuzz(func(t *testing.T, pw string) {
		a := Check(pw)
		if a.StrengthScore > 100 {
			t.Fatalf("score out of range: %d", a.StrengthScore)
		}
		if math.IsNaN(a.EntropyBits) || math.IsInf(a.EntropyBits, 0) || a.EntropyBits < 0 {
			t.Fatalf("bad entropy: %v", a.EntropyBits)
		}
		if a.PatternAnalysis.SequentialChars > 4 {
			t.Fatalf("sequential categories out of range: %d", a.PatternAnalysis.SequentialChars)
		}
		if int(a.PatternAnalysis.Length) != utf8.RuneCountInString(pw) {
			t.Fatalf("length %d != rune count", a.PatternAnalysis.Length)
		}
		if a.PatternAnalysis.Length < MinLength && a.IsCompliant {
			t.Fatal("short password reported compliant")
		}
	})
}
