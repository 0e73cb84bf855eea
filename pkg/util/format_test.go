package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", OrDash(""))
	assert.Equal(t, "image", OrDash("image"))
}

func TestJoinOrDash(t *testing.T) {
	assert.Equal(t, "-", JoinOrDash())
	assert.Equal(t, "chatgpt.com, chat.openai.com", JoinOrDash("chatgpt.com", "chat.openai.com"))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", YesNo(true))
	assert.Equal(t, "no", YesNo(false))
}

func TestPreview(t *testing.T) {
	tests := []struct {
		in       string
		max      int
		expected string
	}{
		{"hello", 10, "hello"},
		{"hello\n\nworld", 20, "hello world"},
		{"hello world", 5, "hell…"},
		{"你好世界", 3, "你好…"},
		{"abc", 1, "…"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, Preview(tt.in, tt.max))
		})
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	err := PrintPrettyJSON(&buf, map[string]string{"url": "https://chatgpt.com/#autoSubmit=1&prompt=a<b"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"url\": \"https://chatgpt.com/#autoSubmit=1&prompt=a<b\"\n}\n", buf.String())
}
