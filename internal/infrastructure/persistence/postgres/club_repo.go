// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inkwell-cms-api/internal/domain/entity"
)

// ClubRepository 社团仓储实现
type ClubRepository struct {
	client *Client
}

// NewClubRepository 创建社团仓储
func NewClubRepository(client *Client) *ClubRepository {
	return &ClubRepository{client: client}
}

// Create 创建社团
func (r *ClubRepository) Create(ctx context.Context, club *entity.Club) error {
	ctx, span := tracer.Start(ctx, "postgres.ClubRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(club).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create club: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取社团
func (r *ClubRepository) GetByID(ctx context.Context, tenantID, id string) (*entity.Club, error) {
	ctx, span := tracer.Start(ctx, "postgres.ClubRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var club entity.Club
	if err := db.First(&club, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return &club, nil
}

// GetBySlug 根据租户与 slug 获取社团
func (r *ClubRepository) GetBySlug(ctx context.Context, tenantID, slug string) (*entity.Club, error) {
	ctx, span := tracer.Start(ctx, "postgres.ClubRepository.GetBySlug")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var club entity.Club
	if err := db.First(&club, "tenant_id = ? AND slug = ?", tenantID, slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get club by slug: %w", err)
	}
	return &club, nil
}

// Update 更新社团
func (r *ClubRepository) Update(ctx context.Context, club *entity.Club) error {
	ctx, span := tracer.Start(ctx, "postgres.ClubRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(club).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update club: %w", err)
	}
	return nil
}

// Delete 删除社团
func (r *ClubRepository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.ClubRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Club{}, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete club: %w", err)
	}
	return nil
}

// ListByTenant 获取租户社团列表
func (r *ClubRepository) ListByTenant(ctx context.Context, tenantID string, activeOnly bool) ([]*entity.Club, error) {
	ctx, span := tracer.Start(ctx, "postgres.ClubRepository.ListByTenant")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Where("tenant_id = ?", tenantID)
	if activeOnly {
		query = query.Where("is_active = true")
	}

	var clubs []*entity.Club
	if err := query.Order("sort_order ASC, name ASC").Find(&clubs).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}
