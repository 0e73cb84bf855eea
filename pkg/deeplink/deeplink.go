// Package deeplink builds the URLs that pkg/toolkithash parses, and splits a
// URL into the location.hash and location.search a page would observe.
package deeplink

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/kernel/chat-toolkit/pkg/toolkithash"
)

// Options controls the parameters emitted alongside the prompt.
type Options struct {
	AutoSubmit bool
	PasteImage bool
	Tool       string
	// Base64 encodes the prompt as a Base64-Unicode payload, which survives
	// channels that mangle newlines or reserved characters. Prompts too short
	// to reach the parser's detection floor are sent as plain text.
	Base64 bool
}

// ErrPromptTooShort is returned by Build when a Base64 link was requested for
// a prompt too short to encode that normalization would also change.
var ErrPromptTooShort = errors.New("prompt too short for a Base64 payload")

const bom = "\ufeff"

// Fragment returns the fragment (without '#') carrying prompt. The prompt is
// always emitted last so the parser's substring detection sees all of it.
func Fragment(prompt string, opts Options) string {
	var parts []string
	if opts.AutoSubmit {
		parts = append(parts, "autoSubmit=1")
	}
	if opts.PasteImage {
		parts = append(parts, "pasteImage=1")
	}
	if opts.Tool != "" {
		parts = append(parts, "tool="+EncodeURIComponent(strings.ToLower(opts.Tool)))
	}
	if opts.Base64 {
		if payload, ok := base64Payload(prompt); ok {
			prompt = payload
		}
	}
	parts = append(parts, "prompt="+EncodeURIComponent(prompt))
	return strings.Join(parts, "&")
}

// Build appends the fragment for prompt to baseURL, replacing any fragment
// baseURL already has.
func Build(baseURL, prompt string, opts Options) (string, error) {
	base, _, _ := strings.Cut(baseURL, "#")
	if err := validateBaseURL(base); err != nil {
		return "", err
	}
	if opts.Base64 {
		if _, ok := base64Payload(prompt); !ok && toolkithash.NormalizePrompt(prompt) != prompt {
			return "", fmt.Errorf("%w: %q would be normalized to %q", ErrPromptTooShort, prompt, toolkithash.NormalizePrompt(prompt))
		}
	}
	return base + "#" + Fragment(prompt, opts), nil
}

// SearchTemplate returns a browser custom search engine URL, with %s standing
// in for the typed query.
func SearchTemplate(baseURL string, autoSubmit bool) string {
	base, _, _ := strings.Cut(baseURL, "#")
	if autoSubmit {
		return base + "#autoSubmit=1&prompt=%s"
	}
	return base + "#prompt=%s"
}

// Split returns location.hash without its '#' and location.search for rawURL.
// Characters a browser percent-encodes in fragments are encoded in hash.
func Split(rawURL string) (hash, search string) {
	rest, fragment, _ := strings.Cut(rawURL, "#")
	if _, query, ok := strings.Cut(rest, "?"); ok && query != "" {
		search = "?" + query
	}
	return encodeFragment(fragment), search
}

// base64Payload encodes prompt so the parser decodes it back verbatim. The
// decoder strips one leading U+FEFF, so one is prepended to pad short payloads
// up to the detection floor and to keep a BOM the prompt itself starts with.
// It reports false when even the padded payload stays below the floor.
func base64Payload(prompt string) (string, bool) {
	payload := toolkithash.EncodeBase64Unicode(prompt)
	if len(payload) >= toolkithash.MinBase64Length && !strings.HasPrefix(prompt, bom) {
		return payload, true
	}
	payload = toolkithash.EncodeBase64Unicode(bom + prompt)
	return payload, len(payload) >= toolkithash.MinBase64Length
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base URL %q: missing host", raw)
	}
	return nil
}
