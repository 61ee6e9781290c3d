// Package entity 定义领域实体
package entity

import (
	"time"
)

// AIOperation AI 调用类型
type AIOperation string

const (
	OperationGenerate    AIOperation = "generate"
	OperationTitles      AIOperation = "titles"
	OperationSocial      AIOperation = "social"
	OperationImage       AIOperation = "image"
	OperationValidateKey AIOperation = "validate_key"
)

// AIUsageEvent AI 用量事件，一次 LLM 调用记一条
type AIUsageEvent struct {
	ID               string      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID         string      `json:"tenant_id" gorm:"type:uuid;index;not null"`
	UserID           string      `json:"user_id,omitempty" gorm:"type:uuid"`
	Provider         AIProvider  `json:"provider" gorm:"type:varchar(50);not null"`
	Model            string      `json:"model" gorm:"type:varchar(100);not null"`
	Operation        AIOperation `json:"operation" gorm:"type:varchar(50);not null"`
	PromptTokens     int64       `json:"prompt_tokens" gorm:"default:0"`
	CompletionTokens int64       `json:"completion_tokens" gorm:"default:0"`
	TotalTokens      int64       `json:"total_tokens" gorm:"default:0"`
	DurationMs       int64       `json:"duration_ms" gorm:"default:0"`
	Success          bool        `json:"success" gorm:"default:true"`
	CreatedAt        time.Time   `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName 指定表名
func (AIUsageEvent) TableName() string {
	return "ai_usage_events"
}

// NewAIUsageEvent 创建用量事件
func NewAIUsageEvent(tenantID, userID string, provider AIProvider, model string, operation AIOperation) *AIUsageEvent {
	return &AIUsageEvent{
		TenantID:  tenantID,
		UserID:    userID,
		Provider:  provider,
		Model:     model,
		Operation: operation,
		Success:   true,
		CreatedAt: time.Now(),
	}
}

// SetTokens 记录 token 用量
func (e *AIUsageEvent) SetTokens(prompt, completion int64) {
	e.PromptTokens = prompt
	e.CompletionTokens = completion
	e.TotalTokens = prompt + completion
}
