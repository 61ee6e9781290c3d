package dto

import (
	"inkwell-cms-api/internal/application/site"
	"inkwell-cms-api/internal/domain/entity"
)

// ClubRequest 社团创建/更新请求
type ClubRequest struct {
	Name         string               `json:"name" binding:"required"`
	Description  string               `json:"description"`
	ImageURL     string               `json:"image_url"`
	Schedule     *entity.ClubSchedule `json:"schedule"`
	ContactEmail string               `json:"contact_email"`
	SortOrder    int                  `json:"sort_order"`
	IsActive     *bool                `json:"is_active"`
}

// ToInput 转换为应用层输入
func (r *ClubRequest) ToInput() *site.ClubInput {
	return &site.ClubInput{
		Name:         r.Name,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Schedule:     r.Schedule,
		ContactEmail: r.ContactEmail,
		SortOrder:    r.SortOrder,
		IsActive:     r.IsActive,
	}
}

// TestimonialRequest 评价创建/更新请求
type TestimonialRequest struct {
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorRole  string `json:"author_role"`
	AvatarURL   string `json:"avatar_url"`
	Quote       string `json:"quote" binding:"required"`
	Rating      int    `json:"rating"`
	SortOrder   int    `json:"sort_order"`
	IsPublished *bool  `json:"is_published"`
}

// ToInput 转换为应用层输入
func (r *TestimonialRequest) ToInput() *site.TestimonialInput {
	return &site.TestimonialInput{
		AuthorName:  r.AuthorName,
		AuthorRole:  r.AuthorRole,
		AvatarURL:   r.AvatarURL,
		Quote:       r.Quote,
		Rating:      r.Rating,
		SortOrder:   r.SortOrder,
		IsPublished: r.IsPublished,
	}
}
