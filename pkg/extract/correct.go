package extract

import (
	"regexp"
	"strings"
)

// Visually-confusable substitutions. The numeric table is broad (digits
// are unambiguous once isolated); the text table is the conservative
// inverse used only for company-symbol matching.
var (
	numericRepl = strings.NewReplacer(
		"O", "0", "o", "0", "D", "0",
		"I", "1", "l", "1", "L", "1", "|", "1",
		"S", "5", "s", "5",
		"B", "8",
		"Z", "2", "z", "2",
	)
	textRepl = strings.NewReplacer("0", "O", "1", "I", "5", "S", "8", "B")
)

var (
	strikeTokenRE = regexp.MustCompile(`^[0-9]{3,6}$`)
	clockTokenRE  = regexp.MustCompile(`^[0-9]{1,2}[:;.][0-9]{2}$`)
)

// CorrectNumeric rewrites confusable characters in a numeric-context
// token. Already-valid tokens (a 3-6 digit strike or a clock reading) are
// returned untouched so a correct read is never corrupted.
func CorrectNumeric(s string) string {
	if strikeTokenRE.MatchString(s) || clockTokenRE.MatchString(s) {
		return s
	}
	return numericRepl.Replace(s)
}

// CorrectText applies the conservative free-text table for symbol
// matching. Output is upper-cased; used for lookup only, never emitted.
func CorrectText(s string) string {
	return textRepl.Replace(strings.ToUpper(s))
}

// numericSweep applies the broad table unconditionally. Used when
// scanning whole fragment text (not an isolated token) for clock matches.
func numericSweep(s string) string {
	return numericRepl.Replace(s)
}
