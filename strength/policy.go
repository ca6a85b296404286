package strength

import "time"

// compliantScore is the exclusive lower bound a score must exceed.
const compliantScore = 50

// Analysis is the result of a policy check. Field names and JSON keys are
// part of the serialized result contract.
type Analysis struct {
	IsCompliant     bool            `json:"is_compliant"`
	StrengthScore   uint32          `json:"strength_score"`
	EntropyBits     float64         `json:"entropy_bits"`
	PatternAnalysis PatternAnalysis `json:"pattern_analysis"`
	Feedback        []string        `json:"feedback"`
	AnalysisTimeMs  int64           `json:"analysis_time_ms"`
}

// Check analyzes password against the policy. It never fails.
//
// A password is compliant when it has at least MinLength runes, scores above
// 50, is not common and contains no known sequence. AnalysisTimeMs is
// informational and plays no part in the verdict.
func Check(password string) Analysis {
	a, _ := CheckTimed(password)
	return a
}

// CheckTimed is Check that also returns the measured wall-clock duration at
// full resolution.
func CheckTimed(password string) (Analysis, time.Duration) {
	start := time.Now()

	p := Analyze(password)
	score := Score(p)
	entropy := Entropy(p)
	common := IsCommon(password)
	feedback := Feedback(password, p, score)

	compliant := p.Length >= MinLength &&
		score > compliantScore &&
		!common &&
		p.SequentialChars == 0

	elapsed := time.Since(start)
	return Analysis{
		IsCompliant:     compliant,
		StrengthScore:   score,
		EntropyBits:     entropy,
		PatternAnalysis: p,
		Feedback:        feedback,
		AnalysisTimeMs:  elapsed.Milliseconds(),
	}, elapsed
}
