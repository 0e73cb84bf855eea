package toolkithash

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

type formPair struct {
	name  string
	value string
}

// form is an ordered list of decoded name/value pairs.
type form []formPair

// parseForm decodes s the way URLSearchParams does: pairs split on '&', '+'
// means space, and malformed escapes are kept literally instead of failing.
func parseForm(s string) form {
	s = strings.TrimPrefix(s, "?")

	var pairs form
	for _, seq := range strings.Split(s, "&") {
		if seq == "" {
			continue
		}
		name, value, _ := strings.Cut(seq, "=")
		pairs = append(pairs, formPair{
			name:  decodeFormComponent(name),
			value: decodeFormComponent(value),
		})
	}
	return pairs
}

// get returns the first value for name, or "".
func (f form) get(name string) string {
	for _, p := range f {
		if p.name == name {
			return p.value
		}
	}
	return ""
}

func decodeFormComponent(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	if !strings.Contains(s, "%") {
		return s
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}
	return lossyUTF8(buf, false)
}

// lossyUTF8 decodes b like TextDecoder: invalid bytes become U+FFFD and, when
// stripBOM is set, a leading byte order mark is dropped.
func lossyUTF8(b []byte, stripBOM bool) string {
	enc := unicode.UTF8
	if stripBOM {
		enc = unicode.UTF8BOM
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
