// Package sites lists the chat web applications the toolkit deep-links into.
package sites

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

const (
	// DefaultSiteID is used when neither a flag nor TOOLKIT_SITE names a site
	DefaultSiteID = "chatgpt"

	// ToolImage asks the adapter to switch the page into image generation
	ToolImage = "image"
)

// Site describes one supported chat web application.
type Site struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	BaseURL string   `json:"baseUrl"`
	Hosts   []string `json:"hosts"`
	Tools   []string `json:"tools,omitempty"`
}

// SupportsTool reports whether the site's adapter understands tool.
func (s Site) SupportsTool(tool string) bool {
	return lo.Contains(s.Tools, strings.ToLower(tool))
}

var registry = []Site{
	{
		ID:      "chatgpt",
		Name:    "ChatGPT",
		BaseURL: "https://chatgpt.com/",
		Hosts:   []string{"chatgpt.com", "chat.openai.com"},
		Tools:   []string{ToolImage},
	},
	{
		ID:      "gemini",
		Name:    "Gemini",
		BaseURL: "https://gemini.google.com/app",
		Hosts:   []string{"gemini.google.com"},
	},
	{
		ID:      "claude",
		Name:    "Claude",
		BaseURL: "https://claude.ai/new",
		Hosts:   []string{"claude.ai"},
	},
	{
		ID:      "perplexity",
		Name:    "Perplexity",
		BaseURL: "https://www.perplexity.ai/",
		Hosts:   []string{"www.perplexity.ai", "perplexity.ai"},
	},
	{
		ID:      "phind",
		Name:    "Phind",
		BaseURL: "https://www.phind.com/",
		Hosts:   []string{"www.phind.com", "phind.com"},
	},
	{
		ID:      "groq",
		Name:    "Groq",
		BaseURL: "https://groq.com/",
		Hosts:   []string{"groq.com"},
	},
}

// All returns a copy of the registry in display order.
func All() []Site {
	return lo.Map(registry, func(s Site, _ int) Site {
		s.Hosts = append([]string(nil), s.Hosts...)
		s.Tools = append([]string(nil), s.Tools...)
		return s
	})
}

// IDs returns the site identifiers in display order.
func IDs() []string {
	return lo.Map(registry, func(s Site, _ int) string { return s.ID })
}

// Lookup finds a site by ID, ignoring case.
func Lookup(id string) (Site, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	return lo.Find(All(), func(s Site) bool { return s.ID == id })
}

// Detect finds the site serving rawURL by its hostname.
func Detect(rawURL string) (Site, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Site{}, false
	}
	host := strings.ToLower(u.Hostname())
	return lo.Find(All(), func(s Site) bool { return lo.Contains(s.Hosts, host) })
}
