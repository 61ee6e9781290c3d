// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"
	"time"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
)

// AIUsageRepository AI 用量仓储实现
type AIUsageRepository struct {
	client *Client
}

// NewAIUsageRepository 创建 AI 用量仓储
func NewAIUsageRepository(client *Client) *AIUsageRepository {
	return &AIUsageRepository{client: client}
}

// Create 记录一条用量事件
func (r *AIUsageRepository) Create(ctx context.Context, event *entity.AIUsageEvent) error {
	ctx, span := tracer.Start(ctx, "postgres.AIUsageRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(event).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create usage event: %w", err)
	}
	return nil
}

// CreateBatch 批量记录用量事件
func (r *AIUsageRepository) CreateBatch(ctx context.Context, events []*entity.AIUsageEvent) error {
	ctx, span := tracer.Start(ctx, "postgres.AIUsageRepository.CreateBatch")
	defer span.End()

	if len(events) == 0 {
		return nil
	}
	db := getDB(ctx, r.client.db)
	if err := db.CreateInBatches(events, 100).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create usage events: %w", err)
	}
	return nil
}

// TokensUsedSince 统计租户自某时刻起的 token 总量
func (r *AIUsageRepository) TokensUsedSince(ctx context.Context, tenantID string, since time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.AIUsageRepository.TokensUsedSince")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var total int64
	err := db.Model(&entity.AIUsageEvent{}).
		Where("tenant_id = ? AND created_at >= ?", tenantID, since).
		Select("COALESCE(SUM(total_tokens), 0)").
		Scan(&total).Error
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to sum token usage: %w", err)
	}
	return total, nil
}

// Summarize 汇总时间窗内的用量，按提供商与模型分组
func (r *AIUsageRepository) Summarize(ctx context.Context, tenantID string, from, to time.Time) ([]*repository.UsageSummaryRow, error) {
	ctx, span := tracer.Start(ctx, "postgres.AIUsageRepository.Summarize")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var rows []*repository.UsageSummaryRow
	err := db.Model(&entity.AIUsageEvent{}).
		Where("tenant_id = ? AND created_at >= ? AND created_at < ?", tenantID, from, to).
		Select(`provider, model,
			COUNT(*) AS calls,
			COALESCE(SUM(prompt_tokens), 0) AS prompt_tokens,
			COALESCE(SUM(completion_tokens), 0) AS completion_tokens,
			COALESCE(SUM(total_tokens), 0) AS total_tokens`).
		Group("provider, model").
		Order("total_tokens DESC").
		Scan(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to summarize usage: %w", err)
	}
	return rows, nil
}
