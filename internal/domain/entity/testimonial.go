// Package entity 定义领域实体
package entity

import (
	"time"
)

// Testimonial 用户评价实体
type Testimonial struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID    string    `json:"tenant_id" gorm:"type:uuid;index;not null"`
	AuthorName  string    `json:"author_name" gorm:"type:varchar(255);not null"`
	AuthorRole  string    `json:"author_role,omitempty" gorm:"type:varchar(255)"`
	AvatarURL   string    `json:"avatar_url,omitempty" gorm:"type:varchar(1024)"`
	Quote       string    `json:"quote" gorm:"type:text;not null"`
	Rating      int       `json:"rating" gorm:"default:5"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Testimonial) TableName() string {
	return "testimonials"
}

// NewTestimonial 创建评价
func NewTestimonial(tenantID, authorName, quote string) *Testimonial {
	now := time.Now()
	return &Testimonial{
		TenantID:   tenantID,
		AuthorName: authorName,
		Quote:      quote,
		Rating:     5,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ValidRating 检查评分是否在 1-5 范围
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
