package cmd

import (
	"testing"

	"github.com/kernel/chat-toolkit/internal/adapter"
	"github.com/kernel/chat-toolkit/pkg/toolkithash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		override *string
		hash     string
		search   string
		site     string
	}{
		{
			name: "full url without query",
			arg:  "https://chatgpt.com/#autoSubmit=1&prompt=hi",
			hash: "autoSubmit=1&prompt=hi",
			site: "chatgpt",
		},
		{
			name:   "full url with query",
			arg:    "https://www.perplexity.ai/?home=true#prompt=hi",
			hash:   "prompt=hi",
			search: "?home=true",
			site:   "perplexity",
		},
		{
			name: "bare fragment with hash sign",
			arg:  "#prompt=hi",
			hash: "prompt=hi",
		},
		{
			name:     "override search",
			arg:      "https://claude.ai/new?x=1#prompt=hi",
			override: strPtr(""),
			hash:     "prompt=hi",
			site:     "claude",
		},
		{
			name: "unknown site",
			arg:  "https://example.com/#prompt=hi",
			hash: "prompt=hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, search, site, ok := resolveTarget(tt.arg, tt.override)
			assert.Equal(t, tt.hash, hash)
			assert.Equal(t, tt.search, search)
			assert.Equal(t, tt.site != "", ok)
			assert.Equal(t, tt.site, site.ID)
		})
	}
}

func TestBuildParseResult(t *testing.T) {
	result, err := buildParseResult("https://chatgpt.com/#autoSubmit=true&prompt=I+B%20=%20C&D", nil, false)
	require.NoError(t, err)
	assert.Equal(t, "chatgpt", result.Site)
	assert.Equal(t, toolkithash.Params{Prompt: "I+B = C&D", AutoSubmit: true}, result.Params)
	assert.Empty(t, result.Steps)
	assert.Empty(t, result.Warnings)
}

func TestBuildParseResultSearchOverride(t *testing.T) {
	result, err := buildParseResult("autoSubmit=false&prompt=I%2BB+%3D+C%26D", strPtr("?home=true"), false)
	require.NoError(t, err)
	assert.Equal(t, "I+B = C&D", result.Params.Prompt)
	assert.False(t, result.Params.AutoSubmit)
}

func TestBuildParseResultPlan(t *testing.T) {
	result, err := buildParseResult("https://chatgpt.com/#autoSubmit=1&tool=image&prompt=a%20fox", nil, true)
	require.NoError(t, err)
	assert.Equal(t, []adapter.Step{
		{Action: adapter.ActionSelectTool, Detail: "image"},
		{Action: adapter.ActionFill, Detail: "a fox"},
		{Action: adapter.ActionSubmit},
		{Action: adapter.ActionClearHash},
	}, result.Steps)
}

func TestBuildParseResultUnsupportedTool(t *testing.T) {
	result, err := buildParseResult("https://claude.ai/new#tool=image&prompt=a%20fox", nil, false)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Claude does not support tool")
}

func TestBuildParseResultMalformed(t *testing.T) {
	for _, plan := range []bool{false, true} {
		_, err := buildParseResult("#prompt=100%", strPtr("?q"), plan)
		require.Error(t, err)
		assert.ErrorIs(t, err, toolkithash.ErrMalformedEncoding)
	}
}
