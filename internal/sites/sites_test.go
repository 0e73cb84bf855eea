package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"chatgpt", "gemini", "claude", "perplexity", "phind", "groq"}, IDs())
}

func TestLookup(t *testing.T) {
	site, ok := Lookup(" ChatGPT ")
	require.True(t, ok)
	assert.Equal(t, "ChatGPT", site.Name)
	assert.Equal(t, "https://chatgpt.com/", site.BaseURL)

	_, ok = Lookup("bard")
	assert.False(t, ok)
}

func TestDefaultSiteIsRegistered(t *testing.T) {
	_, ok := Lookup(DefaultSiteID)
	assert.True(t, ok)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://chatgpt.com/#prompt=hi", "chatgpt"},
		{"https://chat.openai.com/?model=gpt-4", "chatgpt"},
		{"https://GEMINI.google.com/app", "gemini"},
		{"https://claude.ai/new#autoSubmit=1&prompt=x", "claude"},
		{"https://perplexity.ai/", "perplexity"},
		{"https://www.phind.com:443/search", "phind"},
		{"https://groq.com/", "groq"},
		{"https://example.com/", ""},
		{"not a url", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			site, ok := Detect(tt.url)
			assert.Equal(t, tt.expected != "", ok)
			assert.Equal(t, tt.expected, site.ID)
		})
	}
}

func TestSupportsTool(t *testing.T) {
	chatgpt, _ := Lookup("chatgpt")
	assert.True(t, chatgpt.SupportsTool("IMAGE"))

	claude, _ := Lookup("claude")
	assert.False(t, claude.SupportsTool(ToolImage))
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Hosts[0] = "mutated.example"
	all[0].Name = "mutated"

	site, _ := Lookup(all[0].ID)
	assert.Equal(t, "chatgpt.com", site.Hosts[0])
	assert.Equal(t, "ChatGPT", site.Name)
}
