package assist

import (
	"context"
	"sort"
	"strings"

	"inkwell-cms-api/internal/domain/repository"
)

// Idea 一条选题建议
type Idea struct {
	Title    string   `json:"title"`
	Angle    string   `json:"angle"`
	Keywords []string `json:"keywords"`
}

// ideaTemplates 固定选题模板，{topic} 占位符由关键词填充
var ideaTemplates = []Idea{
	{Title: "A beginner's guide to {topic}", Angle: "tutorial", Keywords: []string{"guide", "beginner", "how"}},
	{Title: "5 common mistakes with {topic} and how to avoid them", Angle: "listicle", Keywords: []string{"mistakes", "tips", "avoid"}},
	{Title: "How we approach {topic}: a behind-the-scenes look", Angle: "story", Keywords: []string{"behind", "story", "how"}},
	{Title: "{topic} in 2026: what has changed", Angle: "trends", Keywords: []string{"trends", "new", "changed"}},
	{Title: "The complete checklist for {topic}", Angle: "resource", Keywords: []string{"checklist", "complete", "list"}},
	{Title: "Why {topic} matters more than you think", Angle: "opinion", Keywords: []string{"why", "matters", "opinion"}},
	{Title: "Frequently asked questions about {topic}", Angle: "faq", Keywords: []string{"questions", "faq", "answers"}},
	{Title: "Case study: real results from {topic}", Angle: "case-study", Keywords: []string{"case", "results", "study"}},
	{Title: "{topic} vs the alternatives: an honest comparison", Angle: "comparison", Keywords: []string{"vs", "comparison", "alternatives"}},
	{Title: "Getting started with {topic} on a budget", Angle: "practical", Keywords: []string{"budget", "started", "cheap"}},
}

// IdeaGenerator 选题建议引擎。
// 模板是静态的，只按已有文章标题里的关键词重叠度重排，没有任何统计学习。
type IdeaGenerator struct {
	postRepo repository.PostRepository
}

// NewIdeaGenerator 创建选题引擎
func NewIdeaGenerator(postRepo repository.PostRepository) *IdeaGenerator {
	return &IdeaGenerator{postRepo: postRepo}
}

// IdeasInput 选题参数
type IdeasInput struct {
	Keywords []string
	Limit    int
}

// Ideas 返回按相关度重排的选题列表。
// 相关度 = 模板关键词与（请求关键词 + 租户已有文章标题词）的重叠计数。
func (g *IdeaGenerator) Ideas(ctx context.Context, tenantID string, input *IdeasInput) ([]Idea, error) {
	limit := input.Limit
	if limit <= 0 || limit > len(ideaTemplates) {
		limit = len(ideaTemplates)
	}

	vocabulary := make(map[string]struct{})
	for _, kw := range input.Keywords {
		for _, w := range strings.Fields(strings.ToLower(kw)) {
			vocabulary[w] = struct{}{}
		}
	}

	titles, err := g.postRepo.ListTitles(ctx, tenantID, 200)
	if err != nil {
		return nil, err
	}
	for _, title := range titles {
		for _, w := range strings.Fields(strings.ToLower(title)) {
			vocabulary[strings.Trim(w, ".,:;!?\"'()")] = struct{}{}
		}
	}

	topic := "your niche"
	if len(input.Keywords) > 0 {
		topic = strings.ToLower(strings.TrimSpace(input.Keywords[0]))
	}

	type scored struct {
		idea  Idea
		score int
		pos   int
	}
	ranked := make([]scored, 0, len(ideaTemplates))
	for i, tpl := range ideaTemplates {
		score := 0
		for _, kw := range tpl.Keywords {
			if _, ok := vocabulary[kw]; ok {
				score++
			}
		}
		idea := tpl
		idea.Title = strings.ReplaceAll(tpl.Title, "{topic}", topic)
		ranked = append(ranked, scored{idea: idea, score: score, pos: i})
	}

	// 稳定排序，同分保持模板原序
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].pos < ranked[j].pos
	})

	out := make([]Idea, 0, limit)
	for _, r := range ranked[:limit] {
		out = append(out, r.idea)
	}
	return out, nil
}
