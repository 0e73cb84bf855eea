package util

import (
	"strings"
	"unicode/utf8"
)

// OrDash returns the string if non-empty, otherwise returns "-".
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// JoinOrDash joins the provided strings with ", " as separator.
// If no items are provided, it returns "-".
func JoinOrDash(items ...string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

// YesNo formats a boolean for table output.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Preview flattens newlines and shortens s to at most limit runes, marking
// truncation with an ellipsis.
func Preview(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
