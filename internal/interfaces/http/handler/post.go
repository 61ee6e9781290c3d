package handler

import (
	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/internal/interfaces/http/dto"
	"inkwell-cms-api/internal/interfaces/http/middleware"
)

// PostHandler 文章处理器
type PostHandler struct {
	postService *content.PostService
}

// NewPostHandler 创建文章处理器
func NewPostHandler(postService *content.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// ListPublic 公共端文章列表
// GET /api/posts
func (h *PostHandler) ListPublic(c *gin.Context) {
	var query dto.PostListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, "invalid query: "+err.Error())
		return
	}

	tenantID := middleware.TenantIDFromGin(c)
	filter := &repository.PostFilter{
		CategorySlug: query.Category,
		TagSlug:      query.Tag,
		Search:       query.Search,
		PublicOnly:   true,
	}

	result, err := h.postService.ListPublicPosts(c.Request.Context(), tenantID, filter, query.ToPagination())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.SuccessWithPage(c, result.Items, dto.NewPageMeta(result.Page, result.PageSize, result.Total))
}

// GetPublic 公共端按 slug 取文章，计一次阅读
// GET /api/posts/:slug
func (h *PostHandler) GetPublic(c *gin.Context) {
	tenantID := middleware.TenantIDFromGin(c)
	post, err := h.postService.GetPublicPost(c.Request.Context(), tenantID, c.Param("slug"))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, post)
}

// ListAdmin 管理端文章列表，含草稿与定时稿
// GET /api/admin/posts
func (h *PostHandler) ListAdmin(c *gin.Context) {
	var query dto.PostListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, "invalid query: "+err.Error())
		return
	}

	tenantID := middleware.TenantIDFromGin(c)
	filter := &repository.PostFilter{
		Status:       entity.PostStatus(query.Status),
		CategorySlug: query.Category,
		TagSlug:      query.Tag,
		Search:       query.Search,
	}

	result, err := h.postService.ListPosts(c.Request.Context(), tenantID, filter, query.ToPagination())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.SuccessWithPage(c, result.Items, dto.NewPageMeta(result.Page, result.PageSize, result.Total))
}

// GetAdmin 管理端按 ID 取文章
// GET /api/admin/posts/:id
func (h *PostHandler) GetAdmin(c *gin.Context) {
	tenantID := middleware.TenantIDFromGin(c)
	post, err := h.postService.GetPost(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, post)
}

// Create 创建文章
// POST /api/admin/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tenantID := middleware.TenantIDFromGin(c)
	authorID := middleware.UserIDFromGin(c)
	post, err := h.postService.CreatePost(c.Request.Context(), tenantID, authorID, req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Created(c, post)
}

// Update 更新文章
// PUT /api/admin/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	tenantID := middleware.TenantIDFromGin(c)
	post, err := h.postService.UpdatePost(c.Request.Context(), tenantID, c.Param("id"), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, post)
}

// Delete 删除文章
// DELETE /api/admin/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	tenantID := middleware.TenantIDFromGin(c)
	if err := h.postService.DeletePost(c.Request.Context(), tenantID, c.Param("id")); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.NoContent(c)
}
