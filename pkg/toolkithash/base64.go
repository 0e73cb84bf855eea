package toolkithash

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
)

// MinBase64Length is the shortest prompt treated as an encoded payload.
// Shorter alphanumeric prompts are real text far more often than not.
const MinBase64Length = 32

var base64Pattern = regexp.MustCompile(`^[\w+/=]+$`)

var errInvalidBase64 = errors.New("invalid base64")

// LooksLikeBase64 reports whether s is long enough and uses only Base64
// characters. Underscore is accepted here but rejected by the decoder.
func LooksLikeBase64(s string) bool {
	return len(s) >= MinBase64Length && base64Pattern.MatchString(s)
}

// EncodeBase64Unicode encodes the UTF-8 bytes of s as padded standard Base64.
func EncodeBase64Unicode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeBase64Unicode decodes s when it looks like a Base64 payload of UTF-8
// text. Malformed UTF-8 is replaced rather than rejected, so only the pattern,
// the length floor and the Base64 alphabet can disqualify s.
func DecodeBase64Unicode(s string) (string, bool) {
	if !LooksLikeBase64(s) {
		return "", false
	}
	raw, err := decodeForgivingBase64(s)
	if err != nil {
		return "", false
	}
	return lossyUTF8(raw, true), true
}

// decodeForgivingBase64 follows the atob algorithm: padding is optional, at
// most two '=' may terminate a string whose length is a multiple of four, and
// leftover bits are discarded.
func decodeForgivingBase64(s string) ([]byte, error) {
	if len(s)%4 == 0 {
		for range 2 {
			s = strings.TrimSuffix(s, "=")
		}
	}
	if len(s)%4 == 1 {
		return nil, errInvalidBase64
	}
	if strings.ContainsAny(s, "=_") {
		return nil, errInvalidBase64
	}
	return base64.RawStdEncoding.DecodeString(s)
}
