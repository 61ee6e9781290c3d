// Package site 提供站点固定板块（社团、评价）的应用服务
package site

import (
	"context"
	"time"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/pkg/errors"
)

// TestimonialService 评价应用服务
type TestimonialService struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService 创建评价服务
func NewTestimonialService(repo repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// TestimonialInput 评价写入参数
type TestimonialInput struct {
	AuthorName  string
	AuthorRole  string
	AvatarURL   string
	Quote       string
	Rating      int
	SortOrder   int
	IsPublished *bool
}

// Create 创建评价
func (s *TestimonialService) Create(ctx context.Context, tenantID string, input *TestimonialInput) (*entity.Testimonial, error) {
	if input.AuthorName == "" || input.Quote == "" {
		return nil, errors.New(errors.CodeInvalidParam, "author name and quote are required")
	}
	if input.Rating != 0 && !entity.ValidRating(input.Rating) {
		return nil, errors.New(errors.CodeInvalidParam, "rating must be between 1 and 5")
	}

	testimonial := entity.NewTestimonial(tenantID, input.AuthorName, input.Quote)
	applyTestimonialInput(testimonial, input)
	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Update 更新评价
func (s *TestimonialService) Update(ctx context.Context, tenantID, id string, input *TestimonialInput) (*entity.Testimonial, error) {
	testimonial, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if testimonial == nil {
		return nil, errors.ErrNotFound
	}
	if input.Rating != 0 && !entity.ValidRating(input.Rating) {
		return nil, errors.New(errors.CodeInvalidParam, "rating must be between 1 and 5")
	}

	if input.AuthorName != "" {
		testimonial.AuthorName = input.AuthorName
	}
	if input.Quote != "" {
		testimonial.Quote = input.Quote
	}
	applyTestimonialInput(testimonial, input)
	testimonial.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Delete 删除评价
func (s *TestimonialService) Delete(ctx context.Context, tenantID, id string) error {
	testimonial, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if testimonial == nil {
		return errors.ErrNotFound
	}
	return s.repo.Delete(ctx, tenantID, id)
}

// ListPublic 公共端评价列表（仅已发布的）
func (s *TestimonialService) ListPublic(ctx context.Context, tenantID string) ([]*entity.Testimonial, error) {
	return s.repo.ListByTenant(ctx, tenantID, true)
}

// ListAll 管理端评价列表
func (s *TestimonialService) ListAll(ctx context.Context, tenantID string) ([]*entity.Testimonial, error) {
	return s.repo.ListByTenant(ctx, tenantID, false)
}

func applyTestimonialInput(t *entity.Testimonial, input *TestimonialInput) {
	t.AuthorRole = input.AuthorRole
	t.AvatarURL = input.AvatarURL
	if input.Rating != 0 {
		t.Rating = input.Rating
	}
	t.SortOrder = input.SortOrder
	if input.IsPublished != nil {
		t.IsPublished = *input.IsPublished
	}
}
