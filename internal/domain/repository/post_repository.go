// Package repository 定义数据访问层接口
package repository

import (
	"context"
	"time"

	"inkwell-cms-api/internal/domain/entity"
)

// PostFilter 文章过滤条件
type PostFilter struct {
	Status       entity.PostStatus
	CategorySlug string
	TagSlug      string
	Search       string
	// PublicOnly 只返回公共端可见的文章（已发布，或定时已到点）
	PublicOnly bool
	Now        time.Time
}

// PostRepository 文章仓储接口
type PostRepository interface {
	// Create 创建文章
	Create(ctx context.Context, post *entity.Post) error

	// GetByID 根据 ID 获取文章（含分类与标签）
	GetByID(ctx context.Context, tenantID, id string) (*entity.Post, error)

	// GetBySlug 根据租户与 slug 获取文章（含分类与标签）
	GetBySlug(ctx context.Context, tenantID, slug string) (*entity.Post, error)

	// Update 更新文章
	Update(ctx context.Context, post *entity.Post) error

	// Delete 删除文章，关联关系一并清理，标签引用计数回收
	Delete(ctx context.Context, tenantID, id string) error

	// List 获取文章列表
	List(ctx context.Context, tenantID string, filter *PostFilter, pagination Pagination) (*PagedResult[*entity.Post], error)

	// SlugExists 检查 slug 在租户内是否已占用，excludeID 用于更新时排除自身
	SlugExists(ctx context.Context, tenantID, slug, excludeID string) (bool, error)

	// ListTitles 获取租户最近的文章标题（选题引擎用）
	ListTitles(ctx context.Context, tenantID string, limit int) ([]string, error)

	// IncrementViewCount 原子自增阅读计数，返回新值
	IncrementViewCount(ctx context.Context, tenantID, id string) (int64, error)

	// ListCategoryIDs 获取文章关联的分类 ID
	ListCategoryIDs(ctx context.Context, postID string) ([]string, error)

	// ListTagIDs 获取文章关联的标签 ID
	ListTagIDs(ctx context.Context, postID string) ([]string, error)

	// AttachCategories 建立文章-分类关联
	AttachCategories(ctx context.Context, postID string, categoryIDs []string) error

	// DetachCategories 解除文章-分类关联
	DetachCategories(ctx context.Context, postID string, categoryIDs []string) error

	// AttachTags 建立文章-标签关联，并增加标签引用计数
	AttachTags(ctx context.Context, postID string, tagIDs []string) error

	// DetachTags 解除文章-标签关联，并减少标签引用计数
	DetachTags(ctx context.Context, postID string, tagIDs []string) error
}
