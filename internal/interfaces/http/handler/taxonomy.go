package handler

import (
	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/interfaces/http/dto"
	"inkwell-cms-api/internal/interfaces/http/middleware"
)

// TaxonomyHandler 分类与标签处理器
type TaxonomyHandler struct {
	taxonomyService *content.TaxonomyService
}

// NewTaxonomyHandler 创建分类标签处理器
func NewTaxonomyHandler(taxonomyService *content.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

// ListCategories 分类列表
// GET /api/categories
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.taxonomyService.ListCategories(c.Request.Context(), middleware.TenantIDFromGin(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, categories)
}

// CreateCategory 创建分类
// POST /api/admin/categories
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	category, err := h.taxonomyService.CreateCategory(c.Request.Context(), middleware.TenantIDFromGin(c), req.Name, req.Description)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Created(c, category)
}

// DeleteCategory 删除分类
// DELETE /api/admin/categories/:id
func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	if err := h.taxonomyService.DeleteCategory(c.Request.Context(), middleware.TenantIDFromGin(c), c.Param("id")); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.NoContent(c)
}

// ListTags 标签列表，按引用量排序
// GET /api/tags
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.taxonomyService.ListTags(c.Request.Context(), middleware.TenantIDFromGin(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, tags)
}

// DeleteTag 删除标签
// DELETE /api/admin/tags/:id
func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	if err := h.taxonomyService.DeleteTag(c.Request.Context(), middleware.TenantIDFromGin(c), c.Param("id")); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.NoContent(c)
}
