package handler

import (
	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/application/auth"
	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/interfaces/http/dto"
	"inkwell-cms-api/internal/interfaces/http/middleware"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService   *auth.Service
	tenantService *content.TenantService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *auth.Service, tenantService *content.TenantService) *AuthHandler {
	return &AuthHandler{authService: authService, tenantService: tenantService}
}

// Login 管理端登录
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tenant, err := h.tenantService.Resolve(c.Request.Context(), req.Tenant)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), tenant.ID, req.Email, req.Password)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.NewLoginResponse(result))
}

// Me 当前登录身份
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.ClaimsFromGin(c)
	if claims == nil {
		dto.BadRequest(c, "missing token claims")
		return
	}

	user, tenant, err := h.authService.CurrentUser(c.Request.Context(), claims)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{
		"user":   dto.NewUserView(user),
		"tenant": tenant,
		"role":   claims.Role,
	})
}
