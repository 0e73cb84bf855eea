package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFlagName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"auto-submit", "auto-submit"},
		{"autoSubmit", "auto-submit"},
		{"auto_submit", "auto-submit"},
		{"pasteImage", "paste-image"},
		{"base64", "base64"},
		{"envFile", "env-file"},
		{"o", "o"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(normalizeFlagName(nil, tt.in)))
		})
	}
}

func TestRootRegistersSubcommands(t *testing.T) {
	for _, name := range []string{"parse", "link", "sites", "completion"} {
		found, _, err := rootCmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, found.Name())
		}
	}
}

func TestLinkFlagAcceptsFragmentSpelling(t *testing.T) {
	flags := linkCmd.Flags()
	assert.NotNil(t, flags.Lookup("autoSubmit"))
	assert.NotNil(t, flags.Lookup("paste_image"))
}

func TestListSiteEntries(t *testing.T) {
	entries := listSiteEntries(true)
	if assert.NotEmpty(t, entries) {
		assert.Equal(t, "chatgpt", entries[0].ID)
		assert.Equal(t, "https://chatgpt.com/#autoSubmit=1&prompt=%s", entries[0].SearchTemplate)
	}

	entries = listSiteEntries(false)
	assert.Equal(t, "https://chatgpt.com/#prompt=%s", entries[0].SearchTemplate)
}

func TestCompleteSiteIDs(t *testing.T) {
	ids, _ := completeSiteIDs(nil, nil, "g")
	assert.Equal(t, []string{"gemini", "groq"}, ids)
}
