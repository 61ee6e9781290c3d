// Package entity 定义领域实体
package entity

import (
	"time"
)

// ClubSchedule 社团活动安排
type ClubSchedule struct {
	Day      string `json:"day,omitempty"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
	Cadence  string `json:"cadence,omitempty"`
}

// Club 社团/栏目实体，租户站点的固定板块
type Club struct {
	ID           string        `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID     string        `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_clubs_tenant_slug,priority:1"`
	Name         string        `json:"name" gorm:"type:varchar(255);not null"`
	Slug         string        `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex:idx_clubs_tenant_slug,priority:2"`
	Description  string        `json:"description,omitempty" gorm:"type:text"`
	ImageURL     string        `json:"image_url,omitempty" gorm:"type:varchar(1024)"`
	Schedule     *ClubSchedule `json:"schedule,omitempty" gorm:"type:jsonb;serializer:json"`
	ContactEmail string        `json:"contact_email,omitempty" gorm:"type:varchar(255)"`
	SortOrder    int           `json:"sort_order" gorm:"default:0"`
	IsActive     bool          `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Club) TableName() string {
	return "clubs"
}

// NewClub 创建社团
func NewClub(tenantID, name, slug string) *Club {
	now := time.Now()
	return &Club{
		TenantID:  tenantID,
		Name:      name,
		Slug:      slug,
		Schedule:  &ClubSchedule{},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
