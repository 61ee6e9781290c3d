// Package ai 提供 AI 代理应用服务
package ai

import (
	"context"
	"time"

	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/pkg/errors"
)

// QuotaChecker 租户每日 token 配额检查。
// 配额按 UTC 自然日计算，0 表示不限。
type QuotaChecker struct {
	tenantRepo repository.TenantRepository
	usageRepo  repository.AIUsageRepository
}

// NewQuotaChecker 创建配额检查器
func NewQuotaChecker(tenantRepo repository.TenantRepository, usageRepo repository.AIUsageRepository) *QuotaChecker {
	return &QuotaChecker{tenantRepo: tenantRepo, usageRepo: usageRepo}
}

// Check 校验租户当日 token 用量是否超限
func (q *QuotaChecker) Check(ctx context.Context, tenantID string) error {
	tenant, err := q.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return errors.ErrTenantNotFound
	}
	if tenant.Quota == nil {
		return nil
	}
	limit := tenant.Quota.MaxTokensPerDay
	if limit <= 0 {
		return nil
	}

	used, err := q.usageRepo.TokensUsedSince(ctx, tenantID, startOfDayUTC(time.Now()))
	if err != nil {
		return err
	}
	if used >= limit {
		return errors.ErrQuotaExceeded
	}
	return nil
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
