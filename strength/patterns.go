package strength

import (
	"regexp"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// sequencePatterns holds one matcher per sequence category. Each category
// counts at most once per password. Digits use \p{Nd} so non-ASCII decimal
// digits are treated like their ASCII counterparts.
var sequencePatterns = sync.OnceValue(func() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`\p{Nd}{4}`),
		regexp.MustCompile(`abc|bcd|cde|def|efg|fgh|ghi|hij|ijk|jkl`),
		regexp.MustCompile(`123|234|345|456|567|678|789`),
		regexp.MustCompile(`qwe|wer|ert|rty|tyu|yui|uio|iop`),
	}
})

// lower applies full Unicode lower-casing. A Caser is stateful, so each call
// gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func countSequentialChars(password string) uint32 {
	folded := lower(password)

	var n uint32
	for _, re := range sequencePatterns() {
		if re.MatchString(folded) {
			n++
		}
	}
	return n
}
