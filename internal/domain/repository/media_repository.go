// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"inkwell-cms-api/internal/domain/entity"
)

// MediaFilter 媒体过滤条件
type MediaFilter struct {
	MimePrefix string
	Search     string
}

// MediaRepository 媒体仓储接口
type MediaRepository interface {
	// Create 创建媒体记录
	Create(ctx context.Context, media *entity.Media) error

	// GetByID 根据 ID 获取媒体记录
	GetByID(ctx context.Context, tenantID, id string) (*entity.Media, error)

	// Update 更新媒体元数据（alt/caption）
	Update(ctx context.Context, media *entity.Media) error

	// Delete 删除媒体记录
	Delete(ctx context.Context, tenantID, id string) error

	// List 获取媒体列表
	List(ctx context.Context, tenantID string, filter *MediaFilter, pagination Pagination) (*PagedResult[*entity.Media], error)

	// SumSizeByTenant 统计租户已用存储字节数
	SumSizeByTenant(ctx context.Context, tenantID string) (int64, error)
}
