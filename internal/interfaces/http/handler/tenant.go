package handler

import (
	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/interfaces/http/dto"
	"inkwell-cms-api/internal/interfaces/http/middleware"
)

// TenantHandler 租户站点处理器
type TenantHandler struct {
	tenantService *content.TenantService
}

// NewTenantHandler 创建租户处理器
func NewTenantHandler(tenantService *content.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// GetPublic 公共端站点信息（主题、联系方式等）
// GET /api/site
func (h *TenantHandler) GetPublic(c *gin.Context) {
	tenant := middleware.TenantFromGin(c)
	if tenant == nil {
		dto.NotFound(c, "site not found")
		return
	}
	dto.Success(c, tenant)
}

// GetAdmin 管理端站点设置
// GET /api/admin/site
func (h *TenantHandler) GetAdmin(c *gin.Context) {
	tenant, err := h.tenantService.Get(c.Request.Context(), middleware.TenantIDFromGin(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, tenant)
}

// Update 更新站点设置
// PUT /api/admin/site
func (h *TenantHandler) Update(c *gin.Context) {
	var req dto.TenantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), middleware.TenantIDFromGin(c), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, tenant)
}
