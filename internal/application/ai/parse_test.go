package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean object",
			input: `{"title": "Hello"}`,
			want:  `{"title": "Hello"}`,
		},
		{
			name:  "markdown fences",
			input: "```json\n{\"title\": \"Hello\"}\n```",
			want:  `{"title": "Hello"}`,
		},
		{
			name:  "prose prefix and suffix",
			input: `Here is the draft: {"title": "Hello"} Hope this helps!`,
			want:  `{"title": "Hello"}`,
		},
		{
			name:  "nested object",
			input: `{"a": {"b": 1}} thanks`,
			want:  `{"a": {"b": 1}}`,
		},
		{
			name:  "top-level array",
			input: "Sure:\n[1, 2, 3]",
			want:  "[1, 2, 3]",
		},
		{
			name:  "plain text falls back to trimmed input",
			input: "  no json here  ",
			want:  "no json here",
		},
		{
			name:  "empty input",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONObject(tt.input))
		})
	}
}
