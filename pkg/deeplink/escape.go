package deeplink

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent escapes s like the ECMAScript function of the same name:
// everything except ASCII alphanumerics and -_.!~*'() is percent-encoded as
// UTF-8.
func EncodeURIComponent(s string) string {
	return escape(s, func(c byte) bool {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			return false
		}
		return !strings.ContainsRune("-_.!~*'()", rune(c))
	})
}

// encodeFragment applies the WHATWG fragment percent-encode set: C0
// controls, space, '"', '<', '>', '`' and non-ASCII bytes.
func encodeFragment(s string) string {
	return escape(s, func(c byte) bool {
		return c < 0x20 || c >= 0x7F || strings.IndexByte(" \"<>`", c) >= 0
	})
}

func escape(s string, shouldEscape func(byte) bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
