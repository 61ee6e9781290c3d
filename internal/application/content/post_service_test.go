package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/pkg/errors"
)

func TestResolveStatus(t *testing.T) {
	t.Run("defaults to draft", func(t *testing.T) {
		status, err := resolveStatus(&PostInput{})
		require.NoError(t, err)
		assert.Equal(t, entity.PostStatusDraft, status)
	})

	t.Run("valid explicit status", func(t *testing.T) {
		status, err := resolveStatus(&PostInput{Status: string(entity.PostStatusPublished)})
		require.NoError(t, err)
		assert.Equal(t, entity.PostStatusPublished, status)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := resolveStatus(&PostInput{Status: "live"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidStatus, errors.AsAppError(err).Code)
	})

	t.Run("scheduled requires scheduled_at", func(t *testing.T) {
		_, err := resolveStatus(&PostInput{Status: string(entity.PostStatusScheduled)})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)

		at := time.Now().Add(time.Hour)
		status, err := resolveStatus(&PostInput{Status: string(entity.PostStatusScheduled), ScheduledAt: &at})
		require.NoError(t, err)
		assert.Equal(t, entity.PostStatusScheduled, status)
	})
}

func TestApplyStatus(t *testing.T) {
	t.Run("publish stamps published_at once", func(t *testing.T) {
		post := &entity.Post{}
		applyStatus(post, entity.PostStatusPublished)
		require.NotNil(t, post.PublishedAt)

		first := *post.PublishedAt
		applyStatus(post, entity.PostStatusPublished)
		assert.Equal(t, first, *post.PublishedAt)
	})

	t.Run("back to draft clears timestamps", func(t *testing.T) {
		post := &entity.Post{}
		applyStatus(post, entity.PostStatusPublished)
		applyStatus(post, entity.PostStatusDraft)
		assert.Nil(t, post.PublishedAt)
		assert.Nil(t, post.ScheduledAt)
	})
}

func TestDiffIDs(t *testing.T) {
	tests := []struct {
		name       string
		current    []string
		want       []string
		wantAdd    []string
		wantRemove []string
	}{
		{"no change", []string{"a", "b"}, []string{"a", "b"}, nil, nil},
		{"all new", nil, []string{"a", "b"}, []string{"a", "b"}, nil},
		{"all removed", []string{"a", "b"}, nil, nil, []string{"a", "b"}},
		{"mixed", []string{"a", "b"}, []string{"b", "c"}, []string{"c"}, []string{"a"}},
		{"duplicates collapsed", []string{"a"}, []string{"a", "a", "b"}, []string{"b"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			add, remove := diffIDs(tt.current, tt.want)
			assert.Equal(t, tt.wantAdd, add)
			assert.Equal(t, tt.wantRemove, remove)
		})
	}
}
