package goPass

import "sync"

// defaultEngine backs the package-level functions. It runs with the default
// configuration, metrics and audit disabled, and a no-op logger. The default
// configuration always validates, so a Build error is a programming error.
var defaultEngine = sync.OnceValue(func() *Engine {
	engine, err := New().Build()
	if err != nil {
		panic("goPass: default engine: " + err.Error())
	}
	return engine
})

// CheckPasswordPolicy evaluates password against the default policy.
func CheckPasswordPolicy(password string) PasswordAnalysis {
	return defaultEngine().CheckPasswordPolicy(password)
}

// HashPassword hashes password with the default Argon2id parameters.
func HashPassword(password string) (string, error) {
	return defaultEngine().HashPassword(password)
}

// VerifyPasswordHash reports whether password matches hash. It never fails;
// malformed hashes do not match, and neither do argon2i/argon2d hashes or
// hashes above the default verification caps (1 GiB, t=16).
func VerifyPasswordHash(password, hash string) bool {
	return defaultEngine().VerifyPasswordHash(password, hash)
}

// BatchHashPasswords hashes passwords concurrently with the default
// parameters. Entries that fail map to [BatchErrorSentinel].
func BatchHashPasswords(passwords []string) map[string]string {
	return defaultEngine().BatchHashPasswords(passwords)
}

// HashPasswordSHA1 returns the uppercase hex SHA-1 digest of password.
func HashPasswordSHA1(password string) string {
	return defaultEngine().HashPasswordSHA1(password)
}

// BreachRange splits the SHA-1 digest of password for a range query.
func BreachRange(password string) (prefix, suffix string) {
	return defaultEngine().BreachRange(password)
}

// NeedsRehash reports whether hash is weaker than the default parameters.
func NeedsRehash(hash string) (bool, error) {
	return defaultEngine().NeedsRehash(hash)
}
