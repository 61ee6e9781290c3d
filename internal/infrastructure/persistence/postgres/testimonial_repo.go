// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inkwell-cms-api/internal/domain/entity"
)

// TestimonialRepository 评价仓储实现
type TestimonialRepository struct {
	client *Client
}

// NewTestimonialRepository 创建评价仓储
func NewTestimonialRepository(client *Client) *TestimonialRepository {
	return &TestimonialRepository{client: client}
}

// Create 创建评价
func (r *TestimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	ctx, span := tracer.Start(ctx, "postgres.TestimonialRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(testimonial).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取评价
func (r *TestimonialRepository) GetByID(ctx context.Context, tenantID, id string) (*entity.Testimonial, error) {
	ctx, span := tracer.Start(ctx, "postgres.TestimonialRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var testimonial entity.Testimonial
	if err := db.First(&testimonial, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return &testimonial, nil
}

// Update 更新评价
func (r *TestimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	ctx, span := tracer.Start(ctx, "postgres.TestimonialRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(testimonial).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	return nil
}

// Delete 删除评价
func (r *TestimonialRepository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.TestimonialRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Testimonial{}, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}

// ListByTenant 获取租户评价列表
func (r *TestimonialRepository) ListByTenant(ctx context.Context, tenantID string, publishedOnly bool) ([]*entity.Testimonial, error) {
	ctx, span := tracer.Start(ctx, "postgres.TestimonialRepository.ListByTenant")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Where("tenant_id = ?", tenantID)
	if publishedOnly {
		query = query.Where("is_published = true")
	}

	var testimonials []*entity.Testimonial
	if err := query.Order("sort_order ASC, created_at DESC").Find(&testimonials).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}
