package toolkithash

import (
	"regexp"
	"strings"
	"unicode"
)

var newlineRun = regexp.MustCompile(`\n{3,}`)

// NormalizePrompt strips carriage returns, collapses runs of three or more
// newlines to a blank line and trims leading whitespace. It is idempotent.
func NormalizePrompt(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = newlineRun.ReplaceAllString(s, "\n\n")
	return strings.TrimLeftFunc(s, isSpace)
}

// isSpace matches the ECMAScript \s class, which differs from unicode.IsSpace
// on U+0085 and U+FEFF.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
