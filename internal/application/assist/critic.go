// Package assist 提供写作助手的确定性规则引擎（评审与选题）。
// 这里没有模型调用，全部是字符串规则。
package assist

import (
	"context"
	"regexp"
	"strings"

	"inkwell-cms-api/pkg/errors"
	"inkwell-cms-api/pkg/metrics"
)

// Severity 建议严重程度
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Intensity 检查强度档位
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityStandard Intensity = "standard"
	IntensityStrict   Intensity = "strict"
)

// 规则集名称
const (
	RulesetReadability Ruleset = "readability"
	RulesetStyle       Ruleset = "style"
	RulesetEngagement  Ruleset = "engagement"
)

// Ruleset 规则集标识
type Ruleset string

// Suggestion 一条评审建议。
// Find/Replace 非空时表示可直接做一次字面替换；应用替换是调用方的事，
// 多条建议命中重叠文本时不做冲突消解。
type Suggestion struct {
	Ruleset  Ruleset  `json:"ruleset"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Find     string   `json:"find,omitempty"`
	Replace  string   `json:"replace,omitempty"`
}

// Critic 内容评审引擎
type Critic struct {
	maxSentenceWords map[Intensity]int
	fillerWords      map[string]string
	ctaPhrases       []string
}

// NewCritic 创建评审引擎
func NewCritic() *Critic {
	return &Critic{
		maxSentenceWords: map[Intensity]int{
			IntensityLight:    35,
			IntensityStandard: 25,
			IntensityStrict:   20,
		},
		fillerWords: map[string]string{
			"very":                  "",
			"really":                "",
			"actually":              "",
			"basically":             "",
			"just":                  "",
			"in order to":           "to",
			"at this point in time": "now",
			"due to the fact that":  "because",
		},
		ctaPhrases: []string{
			"subscribe", "sign up", "contact us", "learn more",
			"get started", "join", "read more", "follow us",
		},
	}
}

// CritiqueInput 评审参数
type CritiqueInput struct {
	Content   string
	Rulesets  []Ruleset
	Intensity Intensity
}

var (
	htmlTagPattern   = regexp.MustCompile(`<[^>]+>`)
	sentencePattern  = regexp.MustCompile(`[^.!?]+[.!?]?`)
	wordPattern      = regexp.MustCompile(`\S+`)
	exclamationRuns  = regexp.MustCompile(`!{2,}`)
	passiveIndicator = regexp.MustCompile(`(?i)\b(was|were|is|are|been|being)\s+\w+ed\b`)
)

// Critique 对内容跑一遍选定规则集，返回建议列表
func (c *Critic) Critique(_ context.Context, input *CritiqueInput) ([]Suggestion, error) {
	text := strings.TrimSpace(htmlTagPattern.ReplaceAllString(input.Content, " "))
	if text == "" {
		return nil, errors.New(errors.CodeInvalidParam, "content is required")
	}

	intensity := input.Intensity
	if intensity == "" {
		intensity = IntensityStandard
	}
	if _, ok := c.maxSentenceWords[intensity]; !ok {
		return nil, errors.New(errors.CodeInvalidParam, "unknown intensity tier")
	}

	rulesets := input.Rulesets
	if len(rulesets) == 0 {
		rulesets = []Ruleset{RulesetReadability, RulesetStyle, RulesetEngagement}
	}

	suggestions := make([]Suggestion, 0, 8)
	for _, rs := range rulesets {
		switch rs {
		case RulesetReadability:
			suggestions = append(suggestions, c.checkReadability(text, intensity)...)
		case RulesetStyle:
			suggestions = append(suggestions, c.checkStyle(text, intensity)...)
		case RulesetEngagement:
			suggestions = append(suggestions, c.checkEngagement(text, intensity)...)
		default:
			return nil, errors.New(errors.CodeInvalidParam, "unknown ruleset: "+string(rs))
		}
	}

	for _, s := range suggestions {
		metrics.AssistSuggestionsTotal.WithLabelValues(string(s.Ruleset), string(s.Severity)).Inc()
	}
	return suggestions, nil
}

// checkReadability 句长类检查
func (c *Critic) checkReadability(text string, intensity Intensity) []Suggestion {
	limit := c.maxSentenceWords[intensity]
	var out []Suggestion
	for _, sentence := range sentencePattern.FindAllString(text, -1) {
		sentence = strings.TrimSpace(sentence)
		words := wordPattern.FindAllString(sentence, -1)
		if len(words) > limit {
			severity := SeverityWarning
			if len(words) > limit*2 {
				severity = SeverityError
			}
			out = append(out, Suggestion{
				Ruleset:  RulesetReadability,
				Rule:     "long_sentence",
				Severity: severity,
				Message:  "sentence is hard to follow, consider splitting it",
				Find:     sentence,
			})
		}
	}
	return out
}

// checkStyle 赘词与被动语态检查
func (c *Critic) checkStyle(text string, intensity Intensity) []Suggestion {
	var out []Suggestion
	lower := strings.ToLower(text)
	for filler, replacement := range c.fillerWords {
		idx := indexWord(lower, filler)
		if idx < 0 {
			continue
		}
		s := Suggestion{
			Ruleset:  RulesetStyle,
			Rule:     "filler_word",
			Severity: SeverityInfo,
			Message:  "filler phrase weakens the sentence: " + filler,
			Find:     text[idx : idx+len(filler)],
			Replace:  replacement,
		}
		out = append(out, s)
	}
	if intensity == IntensityStrict {
		if m := passiveIndicator.FindString(text); m != "" {
			out = append(out, Suggestion{
				Ruleset:  RulesetStyle,
				Rule:     "passive_voice",
				Severity: SeverityInfo,
				Message:  "consider rewriting in active voice",
				Find:     m,
			})
		}
	}
	if m := exclamationRuns.FindString(text); m != "" {
		out = append(out, Suggestion{
			Ruleset:  RulesetStyle,
			Rule:     "exclamation_run",
			Severity: SeverityInfo,
			Message:  "multiple exclamation marks read as shouting",
			Find:     m,
			Replace:  "!",
		})
	}
	return out
}

// checkEngagement 行动号召检查
func (c *Critic) checkEngagement(text string, intensity Intensity) []Suggestion {
	lower := strings.ToLower(text)
	for _, phrase := range c.ctaPhrases {
		if strings.Contains(lower, phrase) {
			return nil
		}
	}
	severity := SeverityInfo
	if intensity == IntensityStrict {
		severity = SeverityWarning
	}
	return []Suggestion{{
		Ruleset:  RulesetEngagement,
		Rule:     "missing_cta",
		Severity: severity,
		Message:  "post has no call-to-action phrase near the end",
	}}
}

// indexWord 查找词边界上的子串位置，找不到返回 -1
func indexWord(haystack, needle string) int {
	from := 0
	for {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return -1
		}
		idx += from
		beforeOK := idx == 0 || !isWordByte(haystack[idx-1])
		end := idx + len(needle)
		afterOK := end >= len(haystack) || !isWordByte(haystack[end])
		if beforeOK && afterOK {
			return idx
		}
		from = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
