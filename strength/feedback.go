package strength

// Feedback messages, in the order Feedback emits them.
const (
	MsgTooShort        = "Password is too short (minimum 8 characters recommended)."
	MsgTooCommon       = "This password is too common and easy to guess."
	MsgSequential      = "Passwords must not contain sequential characters (e.g., 'abc', '123')."
	MsgAddUppercase    = "Consider adding uppercase letters for more strength."
	MsgAddNumbers      = "Adding numbers will make your password stronger."
	MsgAddSymbols      = "Special characters like !@#$%^&* add significant security."
	MsgPasswordManager = "For maximum security, use a password manager to generate long, random passwords."
)

// MinLength is the minimum compliant password length in runes.
const MinLength = 8

const recommendedScore = 75

// Feedback returns the advisory messages that apply to password. Each check
// is independent and the order is fixed. The result is never nil.
func Feedback(password string, p PatternAnalysis, score uint32) []string {
	out := make([]string, 0, 7)

	if p.Length < MinLength {
		out = append(out, MsgTooShort)
	}
	if IsCommon(password) {
		out = append(out, MsgTooCommon)
	}
	if p.SequentialChars > 0 {
		out = append(out, MsgSequential)
	}
	if !p.HasUppercase {
		out = append(out, MsgAddUppercase)
	}
	if !p.HasNumbers {
		out = append(out, MsgAddNumbers)
	}
	if !p.HasSymbols {
		out = append(out, MsgAddSymbols)
	}
	if score < recommendedScore {
		out = append(out, MsgPasswordManager)
	}

	return out
}
