// Package entity 定义领域实体
package entity

import (
	"time"
)

// Category 文章分类
type Category struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID    string    `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_categories_tenant_slug,priority:1"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Slug        string    `json:"slug" gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_tenant_slug,priority:2"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// NewCategory 创建新分类
func NewCategory(tenantID, name, slug string) *Category {
	now := time.Now()
	return &Category{
		TenantID:  tenantID,
		Name:      name,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Tag 文章标签。
// UseCount 是引用计数，随文章标签变更增减，删除文章时一并回收。
type Tag struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID  string    `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_tags_tenant_slug,priority:1"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Slug      string    `json:"slug" gorm:"type:varchar(100);not null;uniqueIndex:idx_tags_tenant_slug,priority:2"`
	UseCount  int       `json:"use_count" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// NewTag 创建新标签
func NewTag(tenantID, name, slug string) *Tag {
	now := time.Now()
	return &Tag{
		TenantID:  tenantID,
		Name:      name,
		Slug:      slug,
		UseCount:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
