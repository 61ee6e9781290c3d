package dto

import "inkwell-cms-api/internal/application/assist"

// CritiqueRequest 内容评审请求
type CritiqueRequest struct {
	Content   string   `json:"content" binding:"required"`
	Rulesets  []string `json:"rulesets"`
	Intensity string   `json:"intensity"`
}

// ToInput 转换为应用层输入
func (r *CritiqueRequest) ToInput() *assist.CritiqueInput {
	rulesets := make([]assist.Ruleset, 0, len(r.Rulesets))
	for _, rs := range r.Rulesets {
		rulesets = append(rulesets, assist.Ruleset(rs))
	}
	return &assist.CritiqueInput{
		Content:   r.Content,
		Rulesets:  rulesets,
		Intensity: assist.Intensity(r.Intensity),
	}
}

// IdeasRequest 选题建议请求
type IdeasRequest struct {
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit"`
}
