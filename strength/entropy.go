package strength

import "math"

// Per-class alphabet sizes. symbolAlphabet is an assumed size for printable
// ASCII punctuation, not a count of the symbols actually present.
const (
	lowerAlphabet  = 26
	upperAlphabet  = 26
	digitAlphabet  = 10
	symbolAlphabet = 32
)

// Entropy estimates the password entropy in bits as length × log2(charset).
// It returns 0 when no character class is present.
func Entropy(p PatternAnalysis) float64 {
	charset := 0
	if p.HasLowercase {
		charset += lowerAlphabet
	}
	if p.HasUppercase {
		charset += upperAlphabet
	}
	if p.HasNumbers {
		charset += digitAlphabet
	}
	if p.HasSymbols {
		charset += symbolAlphabet
	}

	if charset == 0 {
		return 0
	}
	return float64(p.Length) * math.Log2(float64(charset))
}
