package dto

import (
	"time"

	"inkwell-cms-api/internal/application/ai"
	"inkwell-cms-api/internal/domain/entity"
)

// GenerateRequest 文章生成请求
type GenerateRequest struct {
	Provider     string `json:"provider"`
	Topic        string `json:"topic" binding:"required"`
	Tone         string `json:"tone"`
	Length       string `json:"length"`
	Instructions string `json:"instructions"`
}

// TitlesRequest 标题生成请求
type TitlesRequest struct {
	Provider string `json:"provider"`
	Topic    string `json:"topic" binding:"required"`
	Count    int    `json:"count"`
}

// SocialRequest 社交文案生成请求
type SocialRequest struct {
	Provider  string   `json:"provider"`
	Content   string   `json:"content" binding:"required"`
	Platforms []string `json:"platforms"`
}

// ImageRequest 图片生成请求
type ImageRequest struct {
	Provider string `json:"provider"`
	Prompt   string `json:"prompt" binding:"required"`
	Size     string `json:"size"`
	Count    int    `json:"count"`
}

// SaveKeyRequest 托管 Key 保存请求
type SaveKeyRequest struct {
	Provider string `json:"provider" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
	Label    string `json:"label"`
}

// ValidateKeyRequest Key 验证请求
type ValidateKeyRequest struct {
	Provider string `json:"provider" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
}

// KeyView 托管 Key 视图，只暴露指纹摘要
type KeyView struct {
	ID         string     `json:"id"`
	Provider   string     `json:"provider"`
	Label      string     `json:"label,omitempty"`
	MaskedKey  string     `json:"masked_key"`
	IsActive   bool       `json:"is_active"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewKeyView 从实体构建 Key 视图
func NewKeyView(key *entity.APIKey) *KeyView {
	return &KeyView{
		ID:         key.ID,
		Provider:   string(key.Provider),
		Label:      key.Label,
		MaskedKey:  key.MaskedFingerprint(),
		IsActive:   key.IsActive,
		LastUsedAt: key.LastUsedAt,
		CreatedAt:  key.CreatedAt,
	}
}

// NewKeyViews 批量构建 Key 视图
func NewKeyViews(keys []*entity.APIKey) []*KeyView {
	out := make([]*KeyView, 0, len(keys))
	for _, key := range keys {
		out = append(out, NewKeyView(key))
	}
	return out
}

// TrackUsageRequest 客户端用量上报请求
type TrackUsageRequest struct {
	Provider         string `json:"provider" binding:"required"`
	Model            string `json:"model" binding:"required"`
	Operation        string `json:"operation"`
	PromptTokens     int64  `json:"prompt_tokens"`
	CompletionTokens int64  `json:"completion_tokens"`
	DurationMs       int64  `json:"duration_ms"`
	Success          *bool  `json:"success"`
}

// ToInput 转换为应用层输入
func (r *TrackUsageRequest) ToInput() *ai.TrackInput {
	return &ai.TrackInput{
		Provider:         r.Provider,
		Model:            r.Model,
		Operation:        r.Operation,
		PromptTokens:     r.PromptTokens,
		CompletionTokens: r.CompletionTokens,
		DurationMs:       r.DurationMs,
		Success:          r.Success,
	}
}

// TrackUsageBatchRequest 批量用量上报请求
type TrackUsageBatchRequest struct {
	Events []*TrackUsageRequest `json:"events" binding:"required"`
}

// UsageQuery 用量汇总查询参数
type UsageQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}
