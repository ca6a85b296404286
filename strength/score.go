package strength

const maxScore = 100

// Score converts a fingerprint into a strength score in [0, 100].
//
// Points: length 0-7 +5, 8-11 +25, 12+ +40; lowercase +10; uppercase +10;
// numbers +15; symbols +20. Repeated runs subtract 10 and sequences subtract
// 15, both saturating at zero.
func Score(p PatternAnalysis) uint32 {
	var score uint32

	switch {
	case p.Length < 8:
		score += 5
	case p.Length < 12:
		score += 25
	default:
		score += 40
	}

	if p.HasLowercase {
		score += 10
	}
	if p.HasUppercase {
		score += 10
	}
	if p.HasNumbers {
		score += 15
	}
	if p.HasSymbols {
		score += 20
	}

	if p.RepeatedChars > 0 {
		score = saturatingSub(score, 10)
	}
	if p.SequentialChars > 0 {
		score = saturatingSub(score, 15)
	}

	return min(score, maxScore)
}

func saturatingSub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}
