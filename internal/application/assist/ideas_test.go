package assist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-cms-api/internal/domain/repository"
)

// fakePostRepo 只实现选题引擎用到的 ListTitles
type fakePostRepo struct {
	repository.PostRepository

	titles []string
}

func (f *fakePostRepo) ListTitles(_ context.Context, _ string, _ int) ([]string, error) {
	return f.titles, nil
}

func TestIdeasRanking(t *testing.T) {
	ctx := context.Background()

	t.Run("keyword overlap ranks first", func(t *testing.T) {
		g := NewIdeaGenerator(&fakePostRepo{})

		ideas, err := g.Ideas(ctx, "tenant-1", &IdeasInput{
			Keywords: []string{"sourdough", "beginner guide"},
			Limit:    3,
		})
		require.NoError(t, err)
		require.Len(t, ideas, 3)

		// "guide"+"beginner" 两个词命中，教程模板应排第一
		assert.Equal(t, "tutorial", ideas[0].Angle)
		assert.Equal(t, "A beginner's guide to sourdough", ideas[0].Title)
	})

	t.Run("existing post titles feed the vocabulary", func(t *testing.T) {
		g := NewIdeaGenerator(&fakePostRepo{
			titles: []string{"Common mistakes we made", "Tips from the kitchen"},
		})

		ideas, err := g.Ideas(ctx, "tenant-1", &IdeasInput{Keywords: []string{"baking"}, Limit: 1})
		require.NoError(t, err)
		require.Len(t, ideas, 1)
		assert.Equal(t, "listicle", ideas[0].Angle)
	})

	t.Run("no keywords uses default topic and template order", func(t *testing.T) {
		g := NewIdeaGenerator(&fakePostRepo{})

		ideas, err := g.Ideas(ctx, "tenant-1", &IdeasInput{})
		require.NoError(t, err)
		require.Len(t, ideas, len(ideaTemplates))
		assert.Equal(t, "A beginner's guide to your niche", ideas[0].Title)

		// 零分时保持模板原序
		for i, idea := range ideas {
			assert.Equal(t, ideaTemplates[i].Angle, idea.Angle)
		}
	})

	t.Run("limit clamped to template count", func(t *testing.T) {
		g := NewIdeaGenerator(&fakePostRepo{})

		ideas, err := g.Ideas(ctx, "tenant-1", &IdeasInput{Limit: 100})
		require.NoError(t, err)
		assert.Len(t, ideas, len(ideaTemplates))
	})
}
