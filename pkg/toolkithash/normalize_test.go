package toolkithash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrompt(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"hello", "hello"},
		{"\r\nhello\r\nworld", "hello\nworld"},
		{"a\n\nb", "a\n\nb"},
		{"a\n\n\nb", "a\n\nb"},
		{"a\n\n\n\n\n\nb\n\n\nc", "a\n\nb\n\nc"},
		{"a\r\n\r\n\r\nb", "a\n\nb"},
		{" \t\n  hi  ", "hi  "},
		{"\u00a0\u3000\ufeffhi", "hi"},
		{"\u0085hi", "\u0085hi"},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePrompt(tt.in))
		})
	}
}

func TestNormalizePromptIdempotent(t *testing.T) {
	for _, in := range []string{
		"\r\n\r\n\r\n  hi\n\n\n\nthere\r",
		"\n\n\n",
		"x\r\n\n\r\ny",
		"\r\r\r\n\n\n  \n\n\nz",
	} {
		once := NormalizePrompt(in)
		assert.Equal(t, once, NormalizePrompt(once), "input %q", in)
	}
}
