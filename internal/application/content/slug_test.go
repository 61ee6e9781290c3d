package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation folded", "Hello, World!", "hello-world"},
		{"already a slug", "hello-world", "hello-world"},
		{"digits kept", "Top 10 Posts of 2026", "top-10-posts-of-2026"},
		{"non-ascii dropped", "Café au lait", "caf-au-lait"},
		{"leading and trailing symbols", "--Hello--", "hello"},
		{"consecutive separators", "a  &  b", "a-b"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Hello, World!", "Top 10 Posts of 2026", "a  &  b"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}
