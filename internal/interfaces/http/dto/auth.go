package dto

import (
	"time"

	"inkwell-cms-api/internal/application/auth"
	"inkwell-cms-api/internal/domain/entity"
)

// LoginRequest 登录请求。
// Email 为空时走站点管理口令登录。
type LoginRequest struct {
	Tenant   string `json:"tenant" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      *UserView     `json:"user,omitempty"`
	Tenant    *entity.Tenant `json:"tenant"`
}

// UserView 用户视图，不含口令散列
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// NewUserView 从实体构建用户视图
func NewUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}
	return &UserView{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.DisplayName,
		Role:  string(user.Role),
	}
}

// NewLoginResponse 从登录结果构建响应
func NewLoginResponse(result *auth.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      NewUserView(result.User),
		Tenant:    result.Tenant,
	}
}
