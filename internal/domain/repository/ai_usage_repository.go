// Package repository 定义数据访问层接口
package repository

import (
	"context"
	"time"

	"inkwell-cms-api/internal/domain/entity"
)

// UsageSummaryRow 用量汇总行，按提供商与模型聚合
type UsageSummaryRow struct {
	Provider         entity.AIProvider `json:"provider"`
	Model            string            `json:"model"`
	Calls            int64             `json:"calls"`
	PromptTokens     int64             `json:"prompt_tokens"`
	CompletionTokens int64             `json:"completion_tokens"`
	TotalTokens      int64             `json:"total_tokens"`
}

// AIUsageRepository AI 用量仓储接口
type AIUsageRepository interface {
	// Create 记录一条用量事件
	Create(ctx context.Context, event *entity.AIUsageEvent) error

	// CreateBatch 批量记录用量事件
	CreateBatch(ctx context.Context, events []*entity.AIUsageEvent) error

	// TokensUsedSince 统计租户自某时刻起的 token 总量（配额检查用）
	TokensUsedSince(ctx context.Context, tenantID string, since time.Time) (int64, error)

	// Summarize 汇总时间窗内的用量，按提供商与模型分组
	Summarize(ctx context.Context, tenantID string, from, to time.Time) ([]*UsageSummaryRow, error)
}
