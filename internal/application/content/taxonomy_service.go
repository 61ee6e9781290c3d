// Package content 提供内容管理应用服务
package content

import (
	"context"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/pkg/errors"
)

// TaxonomyService 分类与标签应用服务
type TaxonomyService struct {
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

// NewTaxonomyService 创建分类标签服务
func NewTaxonomyService(categoryRepo repository.CategoryRepository, tagRepo repository.TagRepository) *TaxonomyService {
	return &TaxonomyService{
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// ListCategories 获取租户全部分类
func (s *TaxonomyService) ListCategories(ctx context.Context, tenantID string) ([]*entity.Category, error) {
	return s.categoryRepo.ListByTenant(ctx, tenantID)
}

// CreateCategory 创建分类，slug 由名称派生
func (s *TaxonomyService) CreateCategory(ctx context.Context, tenantID, name, description string) (*entity.Category, error) {
	slug := Slugify(name)
	if slug == "" {
		return nil, errors.New(errors.CodeInvalidParam, "category name is empty")
	}

	existing, err := s.categoryRepo.GetBySlug(ctx, tenantID, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrSlugConflict
	}

	category := entity.NewCategory(tenantID, name, slug)
	category.Description = description
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory 删除分类
func (s *TaxonomyService) DeleteCategory(ctx context.Context, tenantID, id string) error {
	return s.categoryRepo.Delete(ctx, tenantID, id)
}

// ListTags 获取租户全部标签
func (s *TaxonomyService) ListTags(ctx context.Context, tenantID string) ([]*entity.Tag, error) {
	return s.tagRepo.ListByTenant(ctx, tenantID)
}

// DeleteTag 删除标签
func (s *TaxonomyService) DeleteTag(ctx context.Context, tenantID, id string) error {
	return s.tagRepo.Delete(ctx, tenantID, id)
}
