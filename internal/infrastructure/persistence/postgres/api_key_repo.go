// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inkwell-cms-api/internal/domain/entity"
)

// APIKeyRepository 托管密钥仓储实现
type APIKeyRepository struct {
	client *Client
}

// NewAPIKeyRepository 创建托管密钥仓储
func NewAPIKeyRepository(client *Client) *APIKeyRepository {
	return &APIKeyRepository{client: client}
}

// Upsert 创建或更新租户某提供商的密钥
func (r *APIKeyRepository) Upsert(ctx context.Context, key *entity.APIKey) error {
	ctx, span := tracer.Start(ctx, "postgres.APIKeyRepository.Upsert")
	defer span.End()

	db := getDB(ctx, r.client.db)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"encrypted_key", "fingerprint", "label", "is_active", "updated_at",
		}),
	}).Create(key).Error
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to upsert api key: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取密钥
func (r *APIKeyRepository) GetByID(ctx context.Context, tenantID, id string) (*entity.APIKey, error) {
	ctx, span := tracer.Start(ctx, "postgres.APIKeyRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var key entity.APIKey
	if err := db.First(&key, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return &key, nil
}

// GetByProvider 获取租户某提供商的活跃密钥
func (r *APIKeyRepository) GetByProvider(ctx context.Context, tenantID string, provider entity.AIProvider) (*entity.APIKey, error) {
	ctx, span := tracer.Start(ctx, "postgres.APIKeyRepository.GetByProvider")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var key entity.APIKey
	if err := db.First(&key, "tenant_id = ? AND provider = ? AND is_active = true", tenantID, provider).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get api key by provider: %w", err)
	}
	return &key, nil
}

// ListByTenant 获取租户全部密钥
func (r *APIKeyRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.APIKey, error) {
	ctx, span := tracer.Start(ctx, "postgres.APIKeyRepository.ListByTenant")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var keys []*entity.APIKey
	if err := db.Where("tenant_id = ?", tenantID).Order("provider ASC").Find(&keys).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	return keys, nil
}

// Delete 删除密钥
func (r *APIKeyRepository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.APIKeyRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.APIKey{}, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete api key: %w", err)
	}
	return nil
}

// TouchLastUsed 更新最近使用时间
func (r *APIKeyRepository) TouchLastUsed(ctx context.Context, id string, at time.Time) error {
	ctx, span := tracer.Start(ctx, "postgres.APIKeyRepository.TouchLastUsed")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.APIKey{}).Where("id = ?", id).Update("last_used_at", at).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to touch api key: %w", err)
	}
	return nil
}
