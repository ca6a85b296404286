package strength

import (
	"unicode"
	"unicode/utf8"
)

// PatternAnalysis is the structural fingerprint of a password. Field names
// and JSON keys are part of the serialized result contract.
type PatternAnalysis struct {
	HasUppercase    bool   `json:"has_uppercase"`
	HasLowercase    bool   `json:"has_lowercase"`
	HasNumbers      bool   `json:"has_numbers"`
	HasSymbols      bool   `json:"has_symbols"`
	Length          uint32 `json:"length"`
	RepeatedChars   uint32 `json:"repeated_chars"`
	SequentialChars uint32 `json:"sequential_chars"`
}

// Analyze derives the fingerprint of password. Length counts runes, not
// bytes. Case and letter classes use the derived Unicode properties, so
// combining vowel signs count as letters and circled capitals as uppercase.
// Invalid UTF-8 bytes decode as U+FFFD and count as symbols.
func Analyze(password string) PatternAnalysis {
	var p PatternAnalysis
	for _, r := range password {
		if isUppercase(r) {
			p.HasUppercase = true
		}
		if isLowercase(r) {
			p.HasLowercase = true
		}
		isNumber := unicode.IsNumber(r)
		if isNumber {
			p.HasNumbers = true
		}
		if !isNumber && !isAlphabetic(r) {
			p.HasSymbols = true
		}
	}

	p.Length = uint32(utf8.RuneCountInString(password))
	p.RepeatedChars = countRepeatedChars(password)
	p.SequentialChars = countSequentialChars(password)
	return p
}

func isUppercase(r rune) bool {
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}

func isLowercase(r rune) bool {
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}

// isAlphabetic matches the derived Unicode Alphabetic property.
func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// countRepeatedChars counts overlapping windows of three identical runes:
// "aaaa" has two.
func countRepeatedChars(password string) uint32 {
	runes := []rune(password)

	var n uint32
	for i := 0; i+2 < len(runes); i++ {
		if runes[i] == runes[i+1] && runes[i+1] == runes[i+2] {
			n++
		}
	}
	return n
}
