// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inkwell-cms-api/internal/domain/entity"
)

// CategoryRepository 分类仓储实现
type CategoryRepository struct {
	client *Client
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

// Create 创建分类
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(category).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetBySlug 根据租户与 slug 获取分类
func (r *CategoryRepository) GetBySlug(ctx context.Context, tenantID, slug string) (*entity.Category, error) {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.GetBySlug")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var category entity.Category
	if err := db.First(&category, "tenant_id = ? AND slug = ?", tenantID, slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}
	return &category, nil
}

// ListByTenant 获取租户全部分类
func (r *CategoryRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Category, error) {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.ListByTenant")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var categories []*entity.Category
	if err := db.Where("tenant_id = ?", tenantID).Order("name ASC").Find(&categories).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListByIDs 按 ID 批量获取分类
func (r *CategoryRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Category, error) {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.ListByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}
	db := getDB(ctx, r.client.db)
	var categories []*entity.Category
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list categories by ids: %w", err)
	}
	return categories, nil
}

// Delete 删除分类
func (r *CategoryRepository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.CategoryRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Exec(`DELETE FROM post_categories WHERE category_id = ?`, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete category links: %w", err)
	}
	if err := db.Delete(&entity.Category{}, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// TagRepository 标签仓储实现
type TagRepository struct {
	client *Client
}

// NewTagRepository 创建标签仓储
func NewTagRepository(client *Client) *TagRepository {
	return &TagRepository{client: client}
}

// Create 创建标签
func (r *TagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	ctx, span := tracer.Start(ctx, "postgres.TagRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(tag).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create tag: %w", err)
	}
	return nil
}

// GetBySlug 根据租户与 slug 获取标签
func (r *TagRepository) GetBySlug(ctx context.Context, tenantID, slug string) (*entity.Tag, error) {
	ctx, span := tracer.Start(ctx, "postgres.TagRepository.GetBySlug")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var tag entity.Tag
	if err := db.First(&tag, "tenant_id = ? AND slug = ?", tenantID, slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get tag by slug: %w", err)
	}
	return &tag, nil
}

// ListByTenant 获取租户全部标签
func (r *TagRepository) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Tag, error) {
	ctx, span := tracer.Start(ctx, "postgres.TagRepository.ListByTenant")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var tags []*entity.Tag
	if err := db.Where("tenant_id = ?", tenantID).Order("use_count DESC, name ASC").Find(&tags).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// ListByIDs 按 ID 批量获取标签
func (r *TagRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Tag, error) {
	ctx, span := tracer.Start(ctx, "postgres.TagRepository.ListByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}
	db := getDB(ctx, r.client.db)
	var tags []*entity.Tag
	if err := db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list tags by ids: %w", err)
	}
	return tags, nil
}

// Delete 删除标签
func (r *TagRepository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.TagRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Exec(`DELETE FROM post_tags WHERE tag_id = ?`, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete tag links: %w", err)
	}
	if err := db.Delete(&entity.Tag{}, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}
