package password

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// BreachPrefixLength is the number of hex characters sent to a range-query
// breach API; the remainder is matched locally.
const BreachPrefixLength = 5

// SHA1Hex returns the uppercase hex SHA-1 digest of the password's UTF-8
// bytes. It is a lookup key for breach databases and must never be used to
// store or verify credentials.
func SHA1Hex(password string) string {
	sum := sha1.Sum([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// BreachRange splits the SHA-1 digest into the 5-character prefix used in a
// k-anonymity range query and the 35-character suffix to look for in the
// response.
func BreachRange(password string) (prefix, suffix string) {
	digest := SHA1Hex(password)
	return digest[:BreachPrefixLength], digest[BreachPrefixLength:]
}
