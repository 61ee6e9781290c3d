package assist

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-cms-api/pkg/errors"
)

func critique(t *testing.T, input *CritiqueInput) []Suggestion {
	t.Helper()
	out, err := NewCritic().Critique(context.Background(), input)
	require.NoError(t, err)
	return out
}

func rulesOf(suggestions []Suggestion) []string {
	rules := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		rules = append(rules, s.Rule)
	}
	return rules
}

func TestCritiqueValidation(t *testing.T) {
	c := NewCritic()
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		_, err := c.Critique(ctx, &CritiqueInput{Content: "   "})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("content that is only markup", func(t *testing.T) {
		_, err := c.Critique(ctx, &CritiqueInput{Content: "<p></p><br/>"})
		require.Error(t, err)
	})

	t.Run("unknown intensity", func(t *testing.T) {
		_, err := c.Critique(ctx, &CritiqueInput{Content: "Fine text.", Intensity: "extreme"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("unknown ruleset", func(t *testing.T) {
		_, err := c.Critique(ctx, &CritiqueInput{Content: "Fine text.", Rulesets: []Ruleset{"grammar"}})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})
}

func TestCritiqueReadability(t *testing.T) {
	longSentence := strings.Repeat("word ", 30) + "end."

	t.Run("long sentence flagged at standard", func(t *testing.T) {
		out := critique(t, &CritiqueInput{
			Content:  longSentence + " Subscribe now.",
			Rulesets: []Ruleset{RulesetReadability},
		})
		require.Len(t, out, 1)
		assert.Equal(t, "long_sentence", out[0].Rule)
		assert.Equal(t, SeverityWarning, out[0].Severity)
	})

	t.Run("light tier tolerates it", func(t *testing.T) {
		out := critique(t, &CritiqueInput{
			Content:   longSentence,
			Rulesets:  []Ruleset{RulesetReadability},
			Intensity: IntensityLight,
		})
		assert.Empty(t, out)
	})

	t.Run("extreme length escalates to error", func(t *testing.T) {
		veryLong := strings.Repeat("word ", 60) + "end."
		out := critique(t, &CritiqueInput{
			Content:  veryLong,
			Rulesets: []Ruleset{RulesetReadability},
		})
		require.Len(t, out, 1)
		assert.Equal(t, SeverityError, out[0].Severity)
	})
}

func TestCritiqueStyle(t *testing.T) {
	t.Run("filler word with replacement", func(t *testing.T) {
		out := critique(t, &CritiqueInput{
			Content:  "This post is very good.",
			Rulesets: []Ruleset{RulesetStyle},
		})
		require.Len(t, out, 1)
		assert.Equal(t, "filler_word", out[0].Rule)
		assert.Equal(t, "very", out[0].Find)
		assert.Empty(t, out[0].Replace)
	})

	t.Run("filler phrase rewrite", func(t *testing.T) {
		out := critique(t, &CritiqueInput{
			Content:  "We did this in order to win.",
			Rulesets: []Ruleset{RulesetStyle},
		})
		require.Len(t, out, 1)
		assert.Equal(t, "in order to", out[0].Find)
		assert.Equal(t, "to", out[0].Replace)
	})

	t.Run("word boundary respected", func(t *testing.T) {
		// "everyone" 包含 "very"，但不在词边界上
		out := critique(t, &CritiqueInput{
			Content:  "Everyone agreed on the plan.",
			Rulesets: []Ruleset{RulesetStyle},
		})
		assert.Empty(t, out)
	})

	t.Run("exclamation run", func(t *testing.T) {
		out := critique(t, &CritiqueInput{
			Content:  "Amazing news!! More below.",
			Rulesets: []Ruleset{RulesetStyle},
		})
		require.Len(t, out, 1)
		assert.Equal(t, "exclamation_run", out[0].Rule)
		assert.Equal(t, "!!", out[0].Find)
		assert.Equal(t, "!", out[0].Replace)
	})

	t.Run("passive voice only at strict", func(t *testing.T) {
		content := "The report was completed by the team."

		standard := critique(t, &CritiqueInput{Content: content, Rulesets: []Ruleset{RulesetStyle}})
		assert.NotContains(t, rulesOf(standard), "passive_voice")

		strict := critique(t, &CritiqueInput{
			Content:   content,
			Rulesets:  []Ruleset{RulesetStyle},
			Intensity: IntensityStrict,
		})
		assert.Contains(t, rulesOf(strict), "passive_voice")
	})

	t.Run("html markup is ignored", func(t *testing.T) {
		out := critique(t, &CritiqueInput{
			Content:  "<p>This is <em>very</em> nice.</p>",
			Rulesets: []Ruleset{RulesetStyle},
		})
		require.Len(t, out, 1)
		assert.Equal(t, "filler_word", out[0].Rule)
	})
}

func TestCritiqueEngagement(t *testing.T) {
	t.Run("missing call to action", func(t *testing.T) {
		out := critique(t, &CritiqueInput{
			Content:  "A post with no closing hook.",
			Rulesets: []Ruleset{RulesetEngagement},
		})
		require.Len(t, out, 1)
		assert.Equal(t, "missing_cta", out[0].Rule)
		assert.Equal(t, SeverityInfo, out[0].Severity)
	})

	t.Run("strict escalates severity", func(t *testing.T) {
		out := critique(t, &CritiqueInput{
			Content:   "A post with no closing hook.",
			Rulesets:  []Ruleset{RulesetEngagement},
			Intensity: IntensityStrict,
		})
		require.Len(t, out, 1)
		assert.Equal(t, SeverityWarning, out[0].Severity)
	})

	t.Run("cta present", func(t *testing.T) {
		out := critique(t, &CritiqueInput{
			Content:  "Enjoyed this? Subscribe for more.",
			Rulesets: []Ruleset{RulesetEngagement},
		})
		assert.Empty(t, out)
	})
}

func TestCritiqueDefaultsToAllRulesets(t *testing.T) {
	out := critique(t, &CritiqueInput{Content: "Plain text with no hook."})
	assert.Contains(t, rulesOf(out), "missing_cta")
}
