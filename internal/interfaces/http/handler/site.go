package handler

import (
	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/application/site"
	"inkwell-cms-api/internal/interfaces/http/dto"
	"inkwell-cms-api/internal/interfaces/http/middleware"
)

// ClubHandler 社团处理器
type ClubHandler struct {
	clubService *site.ClubService
}

// NewClubHandler 创建社团处理器
func NewClubHandler(clubService *site.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// ListPublic 公共端社团列表（仅启用的）
// GET /api/clubs
func (h *ClubHandler) ListPublic(c *gin.Context) {
	clubs, err := h.clubService.ListPublic(c.Request.Context(), middleware.TenantIDFromGin(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, clubs)
}

// ListAdmin 管理端社团列表
// GET /api/admin/clubs
func (h *ClubHandler) ListAdmin(c *gin.Context) {
	clubs, err := h.clubService.ListAll(c.Request.Context(), middleware.TenantIDFromGin(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, clubs)
}

// Create 创建社团
// POST /api/admin/clubs
func (h *ClubHandler) Create(c *gin.Context) {
	var req dto.ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	club, err := h.clubService.Create(c.Request.Context(), middleware.TenantIDFromGin(c), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Created(c, club)
}

// Update 更新社团
// PUT /api/admin/clubs/:id
func (h *ClubHandler) Update(c *gin.Context) {
	var req dto.ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	club, err := h.clubService.Update(c.Request.Context(), middleware.TenantIDFromGin(c), c.Param("id"), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, club)
}

// Delete 删除社团
// DELETE /api/admin/clubs/:id
func (h *ClubHandler) Delete(c *gin.Context) {
	if err := h.clubService.Delete(c.Request.Context(), middleware.TenantIDFromGin(c), c.Param("id")); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.NoContent(c)
}

// TestimonialHandler 评价处理器
type TestimonialHandler struct {
	testimonialService *site.TestimonialService
}

// NewTestimonialHandler 创建评价处理器
func NewTestimonialHandler(testimonialService *site.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// ListPublic 公共端评价列表（仅已发布的）
// GET /api/testimonials
func (h *TestimonialHandler) ListPublic(c *gin.Context) {
	testimonials, err := h.testimonialService.ListPublic(c.Request.Context(), middleware.TenantIDFromGin(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, testimonials)
}

// ListAdmin 管理端评价列表
// GET /api/admin/testimonials
func (h *TestimonialHandler) ListAdmin(c *gin.Context) {
	testimonials, err := h.testimonialService.ListAll(c.Request.Context(), middleware.TenantIDFromGin(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, testimonials)
}

// Create 创建评价
// POST /api/admin/testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	testimonial, err := h.testimonialService.Create(c.Request.Context(), middleware.TenantIDFromGin(c), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Created(c, testimonial)
}

// Update 更新评价
// PUT /api/admin/testimonials/:id
func (h *TestimonialHandler) Update(c *gin.Context) {
	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	testimonial, err := h.testimonialService.Update(c.Request.Context(), middleware.TenantIDFromGin(c), c.Param("id"), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, testimonial)
}

// Delete 删除评价
// DELETE /api/admin/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonialService.Delete(c.Request.Context(), middleware.TenantIDFromGin(c), c.Param("id")); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.NoContent(c)
}
