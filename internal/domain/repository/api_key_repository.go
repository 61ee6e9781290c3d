// Package repository 定义数据访问层接口
package repository

import (
	"context"
	"time"

	"inkwell-cms-api/internal/domain/entity"
)

// APIKeyRepository 托管密钥仓储接口
type APIKeyRepository interface {
	// Upsert 创建或更新租户某提供商的密钥（租户内每个提供商至多一条）
	Upsert(ctx context.Context, key *entity.APIKey) error

	// GetByID 根据 ID 获取密钥
	GetByID(ctx context.Context, tenantID, id string) (*entity.APIKey, error)

	// GetByProvider 获取租户某提供商的活跃密钥
	GetByProvider(ctx context.Context, tenantID string, provider entity.AIProvider) (*entity.APIKey, error)

	// ListByTenant 获取租户全部密钥
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.APIKey, error)

	// Delete 删除密钥
	Delete(ctx context.Context, tenantID, id string) error

	// TouchLastUsed 更新最近使用时间
	TouchLastUsed(ctx context.Context, id string, at time.Time) error
}
