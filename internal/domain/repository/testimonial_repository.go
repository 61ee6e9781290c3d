// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"inkwell-cms-api/internal/domain/entity"
)

// TestimonialRepository 评价仓储接口
type TestimonialRepository interface {
	// Create 创建评价
	Create(ctx context.Context, testimonial *entity.Testimonial) error

	// GetByID 根据 ID 获取评价
	GetByID(ctx context.Context, tenantID, id string) (*entity.Testimonial, error)

	// Update 更新评价
	Update(ctx context.Context, testimonial *entity.Testimonial) error

	// Delete 删除评价
	Delete(ctx context.Context, tenantID, id string) error

	// ListByTenant 获取租户评价列表，publishedOnly 只返回已发布的
	ListByTenant(ctx context.Context, tenantID string, publishedOnly bool) ([]*entity.Testimonial, error)
}
