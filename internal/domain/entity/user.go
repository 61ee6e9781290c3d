// Package entity 定义领域实体
package entity

import (
	"time"
)

// UserRole 用户角色
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
)

// User 管理端用户实体
type User struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID     string    `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_users_tenant_email,priority:1"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:idx_users_tenant_email,priority:2"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	DisplayName  string    `json:"display_name,omitempty" gorm:"type:varchar(255)"`
	Role         UserRole  `json:"role" gorm:"type:varchar(50);default:'editor'"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// NewUser 创建新用户
func NewUser(tenantID, email, passwordHash string, role UserRole) *User {
	now := time.Now()
	return &User{
		TenantID:     tenantID,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin 检查是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
