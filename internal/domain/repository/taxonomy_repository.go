// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"inkwell-cms-api/internal/domain/entity"
)

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	// Create 创建分类
	Create(ctx context.Context, category *entity.Category) error

	// GetBySlug 根据租户与 slug 获取分类
	GetBySlug(ctx context.Context, tenantID, slug string) (*entity.Category, error)

	// ListByTenant 获取租户全部分类
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Category, error)

	// ListByIDs 按 ID 批量获取分类
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Category, error)

	// Delete 删除分类
	Delete(ctx context.Context, tenantID, id string) error
}

// TagRepository 标签仓储接口
type TagRepository interface {
	// Create 创建标签
	Create(ctx context.Context, tag *entity.Tag) error

	// GetBySlug 根据租户与 slug 获取标签
	GetBySlug(ctx context.Context, tenantID, slug string) (*entity.Tag, error)

	// ListByTenant 获取租户全部标签
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Tag, error)

	// ListByIDs 按 ID 批量获取标签
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Tag, error)

	// Delete 删除标签
	Delete(ctx context.Context, tenantID, id string) error
}
