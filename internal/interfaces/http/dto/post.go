package dto

import (
	"time"

	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/domain/entity"
)

// PostRequest 文章创建/更新请求
type PostRequest struct {
	Title       string           `json:"title" binding:"required"`
	Slug        string           `json:"slug"`
	Content     string           `json:"content" binding:"required"`
	Excerpt     string           `json:"excerpt"`
	CoverImage  string           `json:"cover_image"`
	Status      string           `json:"status"`
	ScheduledAt *time.Time       `json:"scheduled_at"`
	Meta        *entity.PostMeta `json:"meta"`
	CategoryIDs []string         `json:"category_ids"`
	Tags        []string         `json:"tags"`
}

// ToInput 转换为应用层输入
func (r *PostRequest) ToInput() *content.PostInput {
	return &content.PostInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		CoverImage:  r.CoverImage,
		Status:      r.Status,
		ScheduledAt: r.ScheduledAt,
		Meta:        r.Meta,
		CategoryIDs: r.CategoryIDs,
		Tags:        r.Tags,
	}
}

// PostListQuery 文章列表查询参数
type PostListQuery struct {
	PageQuery
	Status   string `form:"status"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Search   string `form:"search"`
}

// PostListResponse 文章列表响应
type PostListResponse struct {
	Posts []*entity.Post `json:"posts"`
}
