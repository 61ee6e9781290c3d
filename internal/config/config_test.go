package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturesConfigEnabled(t *testing.T) {
	t.Run("development enables everything", func(t *testing.T) {
		f := FeaturesConfig{Mode: ModeDevelopment}
		assert.True(t, f.Enabled(FeatureAIAssistant))
		assert.True(t, f.Enabled(FeatureImageGeneration))
		assert.True(t, f.Enabled(FeatureSocialAdapter))
		assert.True(t, f.Enabled(FeatureClubs))
		assert.True(t, f.Enabled(FeatureTestimonials))
	})

	t.Run("production disables image generation", func(t *testing.T) {
		f := FeaturesConfig{Mode: ModeProduction}
		assert.True(t, f.Enabled(FeatureAIAssistant))
		assert.False(t, f.Enabled(FeatureImageGeneration))
	})

	t.Run("client delivery keeps only site features", func(t *testing.T) {
		f := FeaturesConfig{Mode: ModeClientDelivery}
		assert.False(t, f.Enabled(FeatureAIAssistant))
		assert.False(t, f.Enabled(FeatureSocialAdapter))
		assert.True(t, f.Enabled(FeatureClubs))
		assert.True(t, f.Enabled(FeatureTestimonials))
	})

	t.Run("override wins over preset", func(t *testing.T) {
		f := FeaturesConfig{
			Mode:      ModeClientDelivery,
			Overrides: map[string]bool{FeatureAIAssistant: true, FeatureClubs: false},
		}
		assert.True(t, f.Enabled(FeatureAIAssistant))
		assert.False(t, f.Enabled(FeatureClubs))
	})

	t.Run("unknown mode falls back to development", func(t *testing.T) {
		f := FeaturesConfig{Mode: "weird"}
		assert.True(t, f.Enabled(FeatureImageGeneration))
	})

	t.Run("unknown feature is off", func(t *testing.T) {
		f := FeaturesConfig{Mode: ModeDevelopment}
		assert.False(t, f.Enabled("no_such_feature"))
	})
}

func TestFeaturesConfigEnabledGroups(t *testing.T) {
	f := FeaturesConfig{
		Mode:      ModeProduction,
		Overrides: map[string]bool{FeatureImageGeneration: true},
	}
	groups := f.EnabledGroups()
	assert.True(t, groups[FeatureImageGeneration])
	assert.True(t, groups[FeatureAIAssistant])
	assert.Len(t, groups, 5)
}
