package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()

	t.Run("basic formatting", func(t *testing.T) {
		out, err := r.Render("# Title\n\nSome **bold** text.")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("gfm tables", func(t *testing.T) {
		out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
	})

	t.Run("auto heading ids", func(t *testing.T) {
		out, err := r.Render("## Getting Started")
		require.NoError(t, err)
		assert.Contains(t, out, `id="getting-started"`)
	})

	t.Run("empty source", func(t *testing.T) {
		out, err := r.Render("")
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
