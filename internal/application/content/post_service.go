// Package content 提供内容管理应用服务
package content

import (
	"context"
	"encoding/json"
	"time"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/internal/infrastructure/persistence/redis"
	"inkwell-cms-api/pkg/errors"
	"inkwell-cms-api/pkg/logger"
	"inkwell-cms-api/pkg/metrics"
)

// PostService 文章应用服务
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	tx           repository.Transactor
	cache        *redis.Cache
	renderer     *MarkdownRenderer
	cacheTTL     time.Duration
}

// NewPostService 创建文章服务
func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
	tx repository.Transactor,
	cache *redis.Cache,
	renderer *MarkdownRenderer,
	cacheTTL time.Duration,
) *PostService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		tx:           tx,
		cache:        cache,
		renderer:     renderer,
		cacheTTL:     cacheTTL,
	}
}

// PostInput 文章写入参数
type PostInput struct {
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	CoverImage  string
	Status      string
	ScheduledAt *time.Time
	Meta        *entity.PostMeta
	CategoryIDs []string
	// Tags 按名称提交，不存在的标签自动创建
	Tags []string
}

// CreatePost 创建文章
func (s *PostService) CreatePost(ctx context.Context, tenantID, authorID string, input *PostInput) (*entity.Post, error) {
	status, err := resolveStatus(input)
	if err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = input.Title
	}
	slug = Slugify(slug)
	if slug == "" {
		return nil, errors.New(errors.CodeInvalidParam, "post slug is empty")
	}

	exists, err := s.postRepo.SlugExists(ctx, tenantID, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrSlugConflict
	}

	contentHTML, err := s.renderer.Render(input.Content)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidParam, "markdown render failed")
	}

	post := entity.NewPost(tenantID, authorID, input.Title, slug, input.Content)
	post.Excerpt = input.Excerpt
	post.CoverImage = input.CoverImage
	post.ContentHTML = contentHTML
	post.ScheduledAt = input.ScheduledAt
	if input.Meta != nil {
		post.Meta = input.Meta
	}
	applyStatus(post, status)

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.postRepo.Create(ctx, post); err != nil {
			return err
		}
		if err := s.syncCategories(ctx, tenantID, post.ID, input.CategoryIDs); err != nil {
			return err
		}
		return s.syncTags(ctx, tenantID, post.ID, input.Tags)
	})
	if err != nil {
		return nil, err
	}

	if status == entity.PostStatusPublished {
		metrics.PostsPublishedTotal.WithLabelValues(tenantID).Inc()
	}
	s.invalidate(ctx, tenantID)

	return s.postRepo.GetByID(ctx, tenantID, post.ID)
}

// UpdatePost 更新文章。分类与标签按差量同步，标签引用计数随之增减。
func (s *PostService) UpdatePost(ctx context.Context, tenantID, id string, input *PostInput) (*entity.Post, error) {
	post, err := s.postRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}

	status, err := resolveStatus(input)
	if err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = input.Title
	}
	slug = Slugify(slug)
	if slug == "" {
		return nil, errors.New(errors.CodeInvalidParam, "post slug is empty")
	}
	if slug != post.Slug {
		exists, err := s.postRepo.SlugExists(ctx, tenantID, slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.ErrSlugConflict
		}
	}

	contentHTML, err := s.renderer.Render(input.Content)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidParam, "markdown render failed")
	}

	wasPublished := post.Status == entity.PostStatusPublished

	post.Title = input.Title
	post.Slug = slug
	post.Content = input.Content
	post.ContentHTML = contentHTML
	post.Excerpt = input.Excerpt
	post.CoverImage = input.CoverImage
	post.ScheduledAt = input.ScheduledAt
	if input.Meta != nil {
		post.Meta = input.Meta
	}
	applyStatus(post, status)
	post.UpdatedAt = time.Now()

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.postRepo.Update(ctx, post); err != nil {
			return err
		}
		if err := s.syncCategories(ctx, tenantID, post.ID, input.CategoryIDs); err != nil {
			return err
		}
		return s.syncTags(ctx, tenantID, post.ID, input.Tags)
	})
	if err != nil {
		return nil, err
	}

	if !wasPublished && status == entity.PostStatusPublished {
		metrics.PostsPublishedTotal.WithLabelValues(tenantID).Inc()
	}
	s.invalidate(ctx, tenantID)

	return s.postRepo.GetByID(ctx, tenantID, post.ID)
}

// DeletePost 删除文章
func (s *PostService) DeletePost(ctx context.Context, tenantID, id string) error {
	post, err := s.postRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.ErrPostNotFound
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.postRepo.Delete(ctx, tenantID, id)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, tenantID)
	return nil
}

// GetPost 管理端按 ID 获取文章
func (s *PostService) GetPost(ctx context.Context, tenantID, id string) (*entity.Post, error) {
	post, err := s.postRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.ErrPostNotFound
	}
	return post, nil
}

// GetPublicPost 公共端按 slug 读取文章并累计阅读数。
// 文章正文走缓存，阅读计数始终落库，返回值带最新计数。
func (s *PostService) GetPublicPost(ctx context.Context, tenantID, slug string) (*entity.Post, error) {
	now := time.Now()

	data, err := s.cache.GetOrLoadSafe(ctx, "post", redis.PostKey(tenantID, slug), s.cacheTTL, func() (interface{}, error) {
		post, err := s.postRepo.GetBySlug(ctx, tenantID, slug)
		if err != nil {
			return nil, err
		}
		if post == nil || !post.IsPublic(now) {
			return nil, errors.ErrPostNotFound
		}
		return post, nil
	})
	if err != nil {
		return nil, err
	}

	var post entity.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, errors.Wrap(err, errors.CodeCacheError, "failed to decode cached post")
	}
	// 缓存可能早于定时下线/状态变更，读取后再校验一次可见性
	if !post.IsPublic(now) {
		return nil, errors.ErrPostNotFound
	}

	count, err := s.postRepo.IncrementViewCount(ctx, tenantID, post.ID)
	if err != nil {
		// 计数失败不阻断阅读
		logger.Warn(ctx, "failed to increment view count", "post_id", post.ID, "error", err)
	} else {
		post.ViewCount = count
		metrics.PostViewsTotal.WithLabelValues(tenantID).Inc()
	}

	return &post, nil
}

// ListPublicPosts 公共端文章列表
func (s *PostService) ListPublicPosts(ctx context.Context, tenantID string, filter *repository.PostFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Post], error) {
	if filter == nil {
		filter = &repository.PostFilter{}
	}
	filter.PublicOnly = true
	filter.Now = time.Now()

	// 搜索结果组合太多，不缓存
	if filter.Search != "" {
		return s.postRepo.List(ctx, tenantID, filter, pagination)
	}

	key := redis.PostListKey(tenantID, pagination.Page, pagination.PageSize, filter.CategorySlug, filter.TagSlug)
	data, err := s.cache.GetOrLoadSafe(ctx, "post_list", key, s.cacheTTL, func() (interface{}, error) {
		return s.postRepo.List(ctx, tenantID, filter, pagination)
	})
	if err != nil {
		return nil, err
	}

	var result repository.PagedResult[*entity.Post]
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrap(err, errors.CodeCacheError, "failed to decode cached post list")
	}
	return &result, nil
}

// ListPosts 管理端文章列表（全部状态可见）
func (s *PostService) ListPosts(ctx context.Context, tenantID string, filter *repository.PostFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Post], error) {
	return s.postRepo.List(ctx, tenantID, filter, pagination)
}

// syncCategories 差量同步文章分类
func (s *PostService) syncCategories(ctx context.Context, tenantID, postID string, wantIDs []string) error {
	// 校验归属，剔除不属于本租户的分类
	valid := make(map[string]bool)
	if len(wantIDs) > 0 {
		categories, err := s.categoryRepo.ListByIDs(ctx, wantIDs)
		if err != nil {
			return err
		}
		for _, c := range categories {
			if c.TenantID == tenantID {
				valid[c.ID] = true
			}
		}
	}

	currentIDs, err := s.postRepo.ListCategoryIDs(ctx, postID)
	if err != nil {
		return err
	}

	add, remove := diffIDs(currentIDs, keys(valid))
	if err := s.postRepo.AttachCategories(ctx, postID, add); err != nil {
		return err
	}
	return s.postRepo.DetachCategories(ctx, postID, remove)
}

// syncTags 差量同步文章标签，不存在的标签按名称创建
func (s *PostService) syncTags(ctx context.Context, tenantID, postID string, names []string) error {
	wantIDs := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		slug := Slugify(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true

		tag, err := s.tagRepo.GetBySlug(ctx, tenantID, slug)
		if err != nil {
			return err
		}
		if tag == nil {
			tag = entity.NewTag(tenantID, name, slug)
			if err := s.tagRepo.Create(ctx, tag); err != nil {
				return err
			}
		}
		wantIDs = append(wantIDs, tag.ID)
	}

	currentIDs, err := s.postRepo.ListTagIDs(ctx, postID)
	if err != nil {
		return err
	}

	add, remove := diffIDs(currentIDs, wantIDs)
	if err := s.postRepo.AttachTags(ctx, postID, add); err != nil {
		return err
	}
	return s.postRepo.DetachTags(ctx, postID, remove)
}

func (s *PostService) invalidate(ctx context.Context, tenantID string) {
	if err := s.cache.InvalidatePosts(ctx, tenantID); err != nil {
		logger.Warn(ctx, "failed to invalidate post cache", "tenant_id", tenantID, "error", err)
	}
}

// resolveStatus 校验状态闭集与定时发布参数
func resolveStatus(input *PostInput) (entity.PostStatus, error) {
	status := input.Status
	if status == "" {
		status = string(entity.PostStatusDraft)
	}
	if !entity.ValidPostStatus(status) {
		return "", errors.New(errors.CodeInvalidStatus, "invalid post status: "+status)
	}
	if entity.PostStatus(status) == entity.PostStatusScheduled && input.ScheduledAt == nil {
		return "", errors.New(errors.CodeInvalidParam, "scheduled post requires scheduled_at")
	}
	return entity.PostStatus(status), nil
}

// applyStatus 应用状态变化的附带字段
func applyStatus(post *entity.Post, status entity.PostStatus) {
	now := time.Now()
	post.Status = status
	switch status {
	case entity.PostStatusPublished:
		if post.PublishedAt == nil {
			post.PublishedAt = &now
		}
		post.ScheduledAt = nil
	case entity.PostStatusDraft:
		post.PublishedAt = nil
		post.ScheduledAt = nil
	}
}

// diffIDs 计算差量：want 中新增的与 current 中应移除的
func diffIDs(current, want []string) (add, remove []string) {
	currentSet := make(map[string]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	wantSet := make(map[string]bool, len(want))
	for _, id := range want {
		wantSet[id] = true
		if !currentSet[id] {
			add = append(add, id)
		}
	}
	for _, id := range current {
		if !wantSet[id] {
			remove = append(remove, id)
		}
	}
	return add, remove
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
