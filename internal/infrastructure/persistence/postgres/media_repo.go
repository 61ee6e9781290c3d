// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
)

// MediaRepository 媒体仓储实现
type MediaRepository struct {
	client *Client
}

// NewMediaRepository 创建媒体仓储
func NewMediaRepository(client *Client) *MediaRepository {
	return &MediaRepository{client: client}
}

// Create 创建媒体记录
func (r *MediaRepository) Create(ctx context.Context, media *entity.Media) error {
	ctx, span := tracer.Start(ctx, "postgres.MediaRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(media).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create media: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取媒体记录
func (r *MediaRepository) GetByID(ctx context.Context, tenantID, id string) (*entity.Media, error) {
	ctx, span := tracer.Start(ctx, "postgres.MediaRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var media entity.Media
	if err := db.First(&media, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return &media, nil
}

// Update 更新媒体元数据
func (r *MediaRepository) Update(ctx context.Context, media *entity.Media) error {
	ctx, span := tracer.Start(ctx, "postgres.MediaRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	err := db.Model(&entity.Media{}).
		Where("tenant_id = ? AND id = ?", media.TenantID, media.ID).
		Updates(map[string]interface{}{
			"alt_text": media.AltText,
			"caption":  media.Caption,
		}).Error
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update media: %w", err)
	}
	return nil
}

// Delete 删除媒体记录
func (r *MediaRepository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.MediaRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Media{}, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete media: %w", err)
	}
	return nil
}

// List 获取媒体列表
func (r *MediaRepository) List(ctx context.Context, tenantID string, filter *repository.MediaFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Media], error) {
	ctx, span := tracer.Start(ctx, "postgres.MediaRepository.List")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Media{}).Where("tenant_id = ?", tenantID)

	if filter != nil {
		if filter.MimePrefix != "" {
			query = query.Where("mime_type LIKE ?", filter.MimePrefix+"%")
		}
		if filter.Search != "" {
			query = query.Where("filename ILIKE ?", "%"+filter.Search+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count media: %w", err)
	}

	var items []*entity.Media
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&items).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	return repository.NewPagedResult(items, total, pagination), nil
}

// SumSizeByTenant 统计租户已用存储字节数
func (r *MediaRepository) SumSizeByTenant(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.MediaRepository.SumSizeByTenant")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var total int64
	err := db.Model(&entity.Media{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(SUM(size_bytes), 0)").
		Scan(&total).Error
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to sum media size: %w", err)
	}
	return total, nil
}
