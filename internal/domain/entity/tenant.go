// Package entity 定义领域实体
package entity

import (
	"time"
)

// TenantStatus 租户状态
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusDeleted   TenantStatus = "deleted"
)

// TenantTheme 站点主题设置，整体以 JSONB 存储
type TenantTheme struct {
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	FontFamily     string `json:"font_family,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	FaviconURL     string `json:"favicon_url,omitempty"`
}

// TenantContact 站点联系方式
type TenantContact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
}

// TenantQuota 租户配额
type TenantQuota struct {
	MaxPosts        int   `json:"max_posts"`
	MaxMediaBytes   int64 `json:"max_media_bytes"`
	MaxTokensPerDay int64 `json:"max_tokens_per_day"`
}

// Tenant 租户实体，一个租户对应一个站点（按子域名路由）
type Tenant struct {
	ID          string         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Subdomain   string         `json:"subdomain" gorm:"type:varchar(63);uniqueIndex;not null"`
	Name        string         `json:"name" gorm:"type:varchar(255);not null"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Theme       *TenantTheme   `json:"theme,omitempty" gorm:"type:jsonb;serializer:json"`
	Contact     *TenantContact `json:"contact,omitempty" gorm:"type:jsonb;serializer:json"`
	Quota       *TenantQuota   `json:"quota,omitempty" gorm:"type:jsonb;serializer:json"`
	Status      TenantStatus   `json:"status" gorm:"type:varchar(50);default:'active'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant 创建新租户
func NewTenant(subdomain, name string) *Tenant {
	now := time.Now()
	return &Tenant{
		Subdomain: subdomain,
		Name:      name,
		Status:    TenantStatusActive,
		Theme:     &TenantTheme{},
		Contact:   &TenantContact{},
		Quota: &TenantQuota{
			MaxPosts:        10000,
			MaxMediaBytes:   10 << 30,
			MaxTokensPerDay: 1000000,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive 检查租户是否活跃
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}
