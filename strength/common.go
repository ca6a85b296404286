package strength

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// commonPasswords is the lower-cased common-password set, loaded on first use.
var commonPasswords = sync.OnceValue(func() map[string]struct{} {
	lines := strings.Split(commonPasswordsRaw, "\n")
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		set[lower(pw)] = struct{}{}
	}
	return set
})

// IsCommon reports whether password is in the common-password set. The match
// is exact after lower-casing; surrounding whitespace is significant.
func IsCommon(password string) bool {
	_, ok := commonPasswords()[lower(password)]
	return ok
}
