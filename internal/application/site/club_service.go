// Package site 提供站点固定板块（社团、评价）的应用服务
package site

import (
	"context"
	"time"

	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/pkg/errors"
)

// ClubService 社团应用服务
type ClubService struct {
	clubRepo repository.ClubRepository
}

// NewClubService 创建社团服务
func NewClubService(clubRepo repository.ClubRepository) *ClubService {
	return &ClubService{clubRepo: clubRepo}
}

// ClubInput 社团写入参数
type ClubInput struct {
	Name         string
	Description  string
	ImageURL     string
	Schedule     *entity.ClubSchedule
	ContactEmail string
	SortOrder    int
	IsActive     *bool
}

// Create 创建社团
func (s *ClubService) Create(ctx context.Context, tenantID string, input *ClubInput) (*entity.Club, error) {
	slug := content.Slugify(input.Name)
	if slug == "" {
		return nil, errors.New(errors.CodeInvalidParam, "club name is empty")
	}

	existing, err := s.clubRepo.GetBySlug(ctx, tenantID, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrSlugConflict
	}

	club := entity.NewClub(tenantID, input.Name, slug)
	applyClubInput(club, input)
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// Update 更新社团
func (s *ClubService) Update(ctx context.Context, tenantID, id string, input *ClubInput) (*entity.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, errors.ErrNotFound
	}

	if input.Name != "" && input.Name != club.Name {
		slug := content.Slugify(input.Name)
		if slug != club.Slug {
			existing, err := s.clubRepo.GetBySlug(ctx, tenantID, slug)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, errors.ErrSlugConflict
			}
			club.Slug = slug
		}
		club.Name = input.Name
	}
	applyClubInput(club, input)
	club.UpdatedAt = time.Now()

	if err := s.clubRepo.Update(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// Delete 删除社团
func (s *ClubService) Delete(ctx context.Context, tenantID, id string) error {
	club, err := s.clubRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if club == nil {
		return errors.ErrNotFound
	}
	return s.clubRepo.Delete(ctx, tenantID, id)
}

// ListPublic 公共端社团列表（仅启用的）
func (s *ClubService) ListPublic(ctx context.Context, tenantID string) ([]*entity.Club, error) {
	return s.clubRepo.ListByTenant(ctx, tenantID, true)
}

// ListAll 管理端社团列表
func (s *ClubService) ListAll(ctx context.Context, tenantID string) ([]*entity.Club, error) {
	return s.clubRepo.ListByTenant(ctx, tenantID, false)
}

func applyClubInput(club *entity.Club, input *ClubInput) {
	club.Description = input.Description
	club.ImageURL = input.ImageURL
	if input.Schedule != nil {
		club.Schedule = input.Schedule
	}
	club.ContactEmail = input.ContactEmail
	club.SortOrder = input.SortOrder
	if input.IsActive != nil {
		club.IsActive = *input.IsActive
	}
}
