// Package toolkithash parses the URL fragment used to deep-link a prompt into a
// chat web application, e.g.
//
//	https://chatgpt.com/#autoSubmit=1&prompt=Hello%20there
//
// The parser tolerates the encodings produced by browser address-bar "site
// search" shortcuts, which differ depending on whether the search-engine URL
// template carries a query string.
package toolkithash

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrMalformedEncoding is returned when the prompt value cannot be
// percent-decoded.
var ErrMalformedEncoding = errors.New("malformed percent-encoding")

const promptKey = "prompt="

// reservedEscaper re-escapes the characters encodeURI leaves alone. Every
// replacement output is free of the other inputs, so a single pass is
// equivalent to applying them in order.
var reservedEscaper = strings.NewReplacer(
	";", "%3B",
	"/", "%2F",
	"?", "%3F",
	":", "%3A",
	"@", "%40",
	"&", "%26",
	"=", "%3D",
	"+", "%2B",
	"$", "%24",
	"#", "%23",
)

// Params is the result of parsing a toolkit fragment.
type Params struct {
	Prompt     string `json:"prompt"`
	AutoSubmit bool   `json:"autoSubmit"`
	PasteImage bool   `json:"pasteImage"`
	Tool       string `json:"tool"`
}

// HasPrompt reports whether the fragment carried a usable prompt.
func (p Params) HasPrompt() bool {
	return p.Prompt != ""
}

// Parse parses hash (location.hash without the leading '#') using the page's
// location.search to pick the legacy decoding branch.
func Parse(hash, locationSearch string) (Params, error) {
	form := parseForm(hash)

	params := Params{
		AutoSubmit: isEnabled(form.get("autoSubmit")),
		PasteImage: isEnabled(form.get("pasteImage")),
		Tool:       strings.ToLower(form.get("tool")),
	}

	prompt, err := FlexiblePromptDetection(hash, locationSearch)
	if err != nil {
		return Params{}, err
	}
	if prompt == "" {
		prompt = form.get("prompt")
	}
	if prompt != "" {
		// Decoded payloads are used verbatim, without NormalizePrompt.
		if decoded, ok := DecodeBase64Unicode(prompt); ok {
			prompt = decoded
		}
	}
	params.Prompt = prompt

	return params, nil
}

// FlexiblePromptDetection extracts the prompt by raw substring search instead
// of query-string parsing, so that prompts containing unescaped '&' or '='
// survive. The prompt is assumed to be the last parameter unless it is the
// first one; either way the value runs to the end of hash.
//
// It returns "" when no prompt is present or the prompt normalizes to nothing.
func FlexiblePromptDetection(hash, locationSearch string) (string, error) {
	idx := strings.Index(hash, promptKey)
	if idx < 0 {
		return "", nil
	}
	raw := hash[idx+len(promptKey):]
	if raw == "" {
		return "", nil
	}

	// Without a query string the address bar substitutes %s using encodeURI,
	// which leaves reserved characters as-is.
	if locationSearch == "" {
		raw = reservedEscaper.Replace(raw)
	}
	raw = strings.ReplaceAll(raw, "+", "%20")

	decoded, err := decodeURIComponent(raw)
	if err != nil {
		return "", err
	}
	return NormalizePrompt(decoded), nil
}

// decodeURIComponent mirrors the ECMAScript function: every escape must be
// well-formed and the decoded bytes must be valid UTF-8.
func decodeURIComponent(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode prompt: %w: %v", ErrMalformedEncoding, err)
	}
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("failed to decode prompt: %w: invalid UTF-8 sequence", ErrMalformedEncoding)
	}
	return decoded, nil
}

func isEnabled(v string) bool {
	return v == "1" || v == "true"
}
