package goPass

import (
	"github.com/MrEthical07/goPass/password"
	"github.com/MrEthical07/goPass/strength"
)

// PasswordAnalysis is the full result of a policy check. Its JSON form uses
// the keys is_compliant, strength_score, entropy_bits, pattern_analysis,
// feedback and analysis_time_ms.
type PasswordAnalysis = strength.Analysis

// PatternAnalysis is the structural fingerprint of a password.
type PatternAnalysis = strength.PatternAnalysis

// BatchHashResult is one entry of [Engine.BatchHashPasswordResults].
type BatchHashResult = password.BatchResult

// BatchErrorSentinel is the value [BatchHashPasswords] stores for a password
// whose hash could not be computed.
const BatchErrorSentinel = password.ErrorSentinel
