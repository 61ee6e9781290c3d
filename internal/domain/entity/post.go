// Package entity 定义领域实体
package entity

import (
	"time"
)

// PostStatus 文章状态，闭集枚举
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusScheduled PostStatus = "scheduled"
)

// ValidPostStatus 检查状态是否属于闭集
func ValidPostStatus(s string) bool {
	switch PostStatus(s) {
	case PostStatusDraft, PostStatusPublished, PostStatusScheduled:
		return true
	}
	return false
}

// PostMeta SEO 元信息
type PostMeta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	OGImage     string `json:"og_image,omitempty"`
}

// Post 文章实体。
// Content 保存 Markdown 原文，ContentHTML 是渲染后的 HTML，写入时生成。
type Post struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID    string     `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_posts_tenant_slug,priority:1"`
	AuthorID    string     `json:"author_id,omitempty" gorm:"type:uuid;index"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Slug        string     `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex:idx_posts_tenant_slug,priority:2"`
	Excerpt     string     `json:"excerpt,omitempty" gorm:"type:text"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	ContentHTML string     `json:"content_html,omitempty" gorm:"type:text"`
	CoverImage  string     `json:"cover_image,omitempty" gorm:"type:varchar(1024)"`
	Status      PostStatus `json:"status" gorm:"type:varchar(50);default:'draft';index"`
	PublishedAt *time.Time `json:"published_at,omitempty" gorm:"index"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	ViewCount   int64      `json:"view_count" gorm:"default:0"`
	Meta        *PostMeta  `json:"meta,omitempty" gorm:"type:jsonb;serializer:json"`
	Categories  []Category `json:"categories,omitempty" gorm:"many2many:post_categories"`
	Tags        []Tag      `json:"tags,omitempty" gorm:"many2many:post_tags"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// NewPost 创建新文章，初始为草稿
func NewPost(tenantID, authorID, title, slug, content string) *Post {
	now := time.Now()
	return &Post{
		TenantID:  tenantID,
		AuthorID:  authorID,
		Title:     title,
		Slug:      slug,
		Content:   content,
		Status:    PostStatusDraft,
		ViewCount: 0,
		Meta:      &PostMeta{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsPublic 检查文章是否对公共端可见。
// 定时文章到点后也视为可见，无需后台任务翻转状态。
func (p *Post) IsPublic(now time.Time) bool {
	switch p.Status {
	case PostStatusPublished:
		return true
	case PostStatusScheduled:
		return p.ScheduledAt != nil && !p.ScheduledAt.After(now)
	}
	return false
}

// Publish 将文章置为已发布
func (p *Post) Publish(now time.Time) {
	p.Status = PostStatusPublished
	p.PublishedAt = &now
	p.ScheduledAt = nil
	p.UpdatedAt = now
}
