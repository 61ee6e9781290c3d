// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
)

// PostRepository 文章仓储实现
type PostRepository struct {
	client *Client
}

// NewPostRepository 创建文章仓储
func NewPostRepository(client *Client) *PostRepository {
	return &PostRepository{client: client}
}

// Create 创建文章
func (r *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	// 关联关系由 Attach/Detach 显式维护，不走 GORM 级联
	if err := db.Omit("Categories", "Tags").Create(post).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取文章
func (r *PostRepository) GetByID(ctx context.Context, tenantID, id string) (*entity.Post, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var post entity.Post
	if err := db.Preload("Categories").Preload("Tags").
		First(&post, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetBySlug 根据租户与 slug 获取文章
func (r *PostRepository) GetBySlug(ctx context.Context, tenantID, slug string) (*entity.Post, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.GetBySlug")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var post entity.Post
	if err := db.Preload("Categories").Preload("Tags").
		First(&post, "tenant_id = ? AND slug = ?", tenantID, slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return &post, nil
}

// Update 更新文章
func (r *PostRepository) Update(ctx context.Context, post *entity.Post) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Omit("Categories", "Tags").Save(post).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// Delete 删除文章。
// 先回收标签引用计数，再清理关联表，最后删主表。
func (r *PostRepository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)

	if err := db.Exec(
		`UPDATE tags SET use_count = GREATEST(use_count - 1, 0)
		 WHERE id IN (SELECT tag_id FROM post_tags WHERE post_id = ?)`, id,
	).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to release tag counts: %w", err)
	}

	if err := db.Exec(`DELETE FROM post_tags WHERE post_id = ?`, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete post tags: %w", err)
	}
	if err := db.Exec(`DELETE FROM post_categories WHERE post_id = ?`, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete post categories: %w", err)
	}

	if err := db.Delete(&entity.Post{}, "tenant_id = ? AND id = ?", tenantID, id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// List 获取文章列表
func (r *PostRepository) List(ctx context.Context, tenantID string, filter *repository.PostFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Post], error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.List")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Post{}).Where("posts.tenant_id = ?", tenantID)

	if filter != nil {
		if filter.PublicOnly {
			query = query.Where(
				"(posts.status = ? OR (posts.status = ? AND posts.scheduled_at <= ?))",
				entity.PostStatusPublished, entity.PostStatusScheduled, filter.Now,
			)
		} else if filter.Status != "" {
			query = query.Where("posts.status = ?", filter.Status)
		}
		if filter.CategorySlug != "" {
			query = query.Joins(
				`JOIN post_categories pc ON pc.post_id = posts.id
				 JOIN categories c ON c.id = pc.category_id AND c.slug = ? AND c.tenant_id = ?`,
				filter.CategorySlug, tenantID,
			)
		}
		if filter.TagSlug != "" {
			query = query.Joins(
				`JOIN post_tags pt ON pt.post_id = posts.id
				 JOIN tags t ON t.id = pt.tag_id AND t.slug = ? AND t.tenant_id = ?`,
				filter.TagSlug, tenantID,
			)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where("(posts.title ILIKE ? OR posts.excerpt ILIKE ?)", pattern, pattern)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	var posts []*entity.Post
	if err := query.Preload("Categories").Preload("Tags").
		Order("COALESCE(posts.published_at, posts.created_at) DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&posts).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return repository.NewPagedResult(posts, total, pagination), nil
}

// SlugExists 检查 slug 在租户内是否已占用
func (r *PostRepository) SlugExists(ctx context.Context, tenantID, slug, excludeID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.SlugExists")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.Post{}).Where("tenant_id = ? AND slug = ?", tenantID, slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to check slug exists: %w", err)
	}
	return count > 0, nil
}

// ListTitles 获取租户最近的文章标题
func (r *PostRepository) ListTitles(ctx context.Context, tenantID string, limit int) ([]string, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.ListTitles")
	defer span.End()

	if limit <= 0 {
		limit = 100
	}
	var titles []string
	db := getDB(ctx, r.client.db)
	if err := db.Model(&entity.Post{}).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("title", &titles).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list post titles: %w", err)
	}
	return titles, nil
}

// IncrementViewCount 原子自增阅读计数，返回新值
func (r *PostRepository) IncrementViewCount(ctx context.Context, tenantID, id string) (int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.IncrementViewCount")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	err := db.Raw(
		`UPDATE posts SET view_count = view_count + 1
		 WHERE tenant_id = ? AND id = ?
		 RETURNING view_count`, tenantID, id,
	).Scan(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}
	return count, nil
}

// ListCategoryIDs 获取文章关联的分类 ID
func (r *PostRepository) ListCategoryIDs(ctx context.Context, postID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.ListCategoryIDs")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var ids []string
	if err := db.Raw(`SELECT category_id FROM post_categories WHERE post_id = ?`, postID).Scan(&ids).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list category ids: %w", err)
	}
	return ids, nil
}

// ListTagIDs 获取文章关联的标签 ID
func (r *PostRepository) ListTagIDs(ctx context.Context, postID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.ListTagIDs")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var ids []string
	if err := db.Raw(`SELECT tag_id FROM post_tags WHERE post_id = ?`, postID).Scan(&ids).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list tag ids: %w", err)
	}
	return ids, nil
}

// AttachCategories 建立文章-分类关联
func (r *PostRepository) AttachCategories(ctx context.Context, postID string, categoryIDs []string) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.AttachCategories")
	defer span.End()

	db := getDB(ctx, r.client.db)
	for _, cid := range categoryIDs {
		if err := db.Exec(
			`INSERT INTO post_categories (post_id, category_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			postID, cid,
		).Error; err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to attach category: %w", err)
		}
	}
	return nil
}

// DetachCategories 解除文章-分类关联
func (r *PostRepository) DetachCategories(ctx context.Context, postID string, categoryIDs []string) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.DetachCategories")
	defer span.End()

	if len(categoryIDs) == 0 {
		return nil
	}
	db := getDB(ctx, r.client.db)
	if err := db.Exec(
		`DELETE FROM post_categories WHERE post_id = ? AND category_id IN ?`,
		postID, categoryIDs,
	).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to detach categories: %w", err)
	}
	return nil
}

// AttachTags 建立文章-标签关联并增加引用计数
func (r *PostRepository) AttachTags(ctx context.Context, postID string, tagIDs []string) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.AttachTags")
	defer span.End()

	db := getDB(ctx, r.client.db)
	for _, tid := range tagIDs {
		result := db.Exec(
			`INSERT INTO post_tags (post_id, tag_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			postID, tid,
		)
		if result.Error != nil {
			span.RecordError(result.Error)
			return fmt.Errorf("failed to attach tag: %w", result.Error)
		}
		// 只有真正新建的关联才计数，避免重复 attach 虚增
		if result.RowsAffected > 0 {
			if err := db.Exec(
				`UPDATE tags SET use_count = use_count + 1 WHERE id = ?`, tid,
			).Error; err != nil {
				span.RecordError(err)
				return fmt.Errorf("failed to increment tag count: %w", err)
			}
		}
	}
	return nil
}

// DetachTags 解除文章-标签关联并减少引用计数
func (r *PostRepository) DetachTags(ctx context.Context, postID string, tagIDs []string) error {
	ctx, span := tracer.Start(ctx, "postgres.PostRepository.DetachTags")
	defer span.End()

	if len(tagIDs) == 0 {
		return nil
	}
	db := getDB(ctx, r.client.db)
	result := db.Exec(
		`DELETE FROM post_tags WHERE post_id = ? AND tag_id IN ?`,
		postID, tagIDs,
	)
	if result.Error != nil {
		span.RecordError(result.Error)
		return fmt.Errorf("failed to detach tags: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		if err := db.Exec(
			`UPDATE tags SET use_count = GREATEST(use_count - 1, 0) WHERE id IN ?`, tagIDs,
		).Error; err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to decrement tag count: %w", err)
		}
	}
	return nil
}
