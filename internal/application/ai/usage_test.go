package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/pkg/errors"
)

func TestUsageRecorderTrack(t *testing.T) {
	ctx := context.Background()

	t.Run("stores tracked event with defaults", func(t *testing.T) {
		repo := &fakeUsageRepo{}
		r := NewUsageRecorder(repo)

		err := r.Track(ctx, "tenant-1", "user-1", &TrackInput{
			Provider:         "openai",
			Model:            "gpt-test",
			PromptTokens:     10,
			CompletionTokens: 5,
		})
		require.NoError(t, err)

		require.Len(t, repo.events, 1)
		event := repo.events[0]
		assert.Equal(t, entity.OperationGenerate, event.Operation)
		assert.Equal(t, int64(15), event.TotalTokens)
		assert.True(t, event.Success)
	})

	t.Run("explicit failure flag", func(t *testing.T) {
		repo := &fakeUsageRepo{}
		r := NewUsageRecorder(repo)

		failed := false
		err := r.Track(ctx, "tenant-1", "user-1", &TrackInput{
			Provider: "openai",
			Model:    "gpt-test",
			Success:  &failed,
		})
		require.NoError(t, err)
		assert.False(t, repo.events[0].Success)
	})

	t.Run("unknown provider", func(t *testing.T) {
		r := NewUsageRecorder(&fakeUsageRepo{})
		err := r.Track(ctx, "tenant-1", "user-1", &TrackInput{Provider: "gemini", Model: "m"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("model required", func(t *testing.T) {
		r := NewUsageRecorder(&fakeUsageRepo{})
		err := r.Track(ctx, "tenant-1", "user-1", &TrackInput{Provider: "openai"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("negative tokens rejected", func(t *testing.T) {
		r := NewUsageRecorder(&fakeUsageRepo{})
		err := r.Track(ctx, "tenant-1", "user-1", &TrackInput{
			Provider:     "openai",
			Model:        "gpt-test",
			PromptTokens: -1,
		})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})
}

func TestUsageRecorderTrackBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("stores all events", func(t *testing.T) {
		repo := &fakeUsageRepo{}
		r := NewUsageRecorder(repo)

		err := r.TrackBatch(ctx, "tenant-1", "user-1", []*TrackInput{
			{Provider: "openai", Model: "gpt-test", PromptTokens: 1},
			{Provider: "anthropic", Model: "claude-test", PromptTokens: 2},
		})
		require.NoError(t, err)
		assert.Len(t, repo.events, 2)
	})

	t.Run("one invalid entry rejects the batch", func(t *testing.T) {
		repo := &fakeUsageRepo{}
		r := NewUsageRecorder(repo)

		err := r.TrackBatch(ctx, "tenant-1", "user-1", []*TrackInput{
			{Provider: "openai", Model: "gpt-test"},
			{Provider: "gemini", Model: "m"},
		})
		require.Error(t, err)
		assert.Empty(t, repo.events)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		repo := &fakeUsageRepo{}
		r := NewUsageRecorder(repo)
		require.NoError(t, r.TrackBatch(ctx, "tenant-1", "user-1", nil))
		assert.Empty(t, repo.events)
	})
}

func TestUsageRecorderRecord(t *testing.T) {
	repo := &fakeUsageRepo{}
	r := NewUsageRecorder(repo)

	r.Record(context.Background(), "tenant-1", "user-1", entity.ProviderOpenAI, "gpt-test",
		entity.OperationTitles, TokenUsage{PromptTokens: 7, CompletionTokens: 3}, 250*time.Millisecond, true)

	require.Len(t, repo.events, 1)
	event := repo.events[0]
	assert.Equal(t, int64(10), event.TotalTokens)
	assert.Equal(t, int64(250), event.DurationMs)
	assert.Equal(t, entity.OperationTitles, event.Operation)
}
