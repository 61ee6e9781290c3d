// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"inkwell-cms-api/internal/domain/entity"
)

// ClubRepository 社团仓储接口
type ClubRepository interface {
	// Create 创建社团
	Create(ctx context.Context, club *entity.Club) error

	// GetByID 根据 ID 获取社团
	GetByID(ctx context.Context, tenantID, id string) (*entity.Club, error)

	// GetBySlug 根据租户与 slug 获取社团
	GetBySlug(ctx context.Context, tenantID, slug string) (*entity.Club, error)

	// Update 更新社团
	Update(ctx context.Context, club *entity.Club) error

	// Delete 删除社团
	Delete(ctx context.Context, tenantID, id string) error

	// ListByTenant 获取租户社团列表，activeOnly 只返回启用的
	ListByTenant(ctx context.Context, tenantID string, activeOnly bool) ([]*entity.Club, error)
}
