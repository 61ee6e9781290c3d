package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/internal/interfaces/http/dto"
	"inkwell-cms-api/internal/interfaces/http/middleware"
)

// MediaHandler 媒体处理器
type MediaHandler struct {
	mediaService *content.MediaService
}

// NewMediaHandler 创建媒体处理器
func NewMediaHandler(mediaService *content.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload 多部分表单上传
// POST /api/admin/media
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		dto.BadRequest(c, "file field is required")
		return
	}
	// 超限在服务层校验，这里提前挡掉明显超大的请求体
	if fileHeader.Size > h.mediaService.MaxUploadBytes() {
		dto.BadRequest(c, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		dto.BadRequest(c, "failed to open uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.mediaService.MaxUploadBytes()+1))
	if err != nil {
		dto.BadRequest(c, "failed to read uploaded file")
		return
	}

	input := &content.UploadInput{
		Filename: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
		AltText:  c.PostForm("alt_text"),
	}

	media, err := h.mediaService.Upload(c.Request.Context(),
		middleware.TenantIDFromGin(c), middleware.UserIDFromGin(c), input)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Created(c, media)
}

// List 媒体列表
// GET /api/admin/media
func (h *MediaHandler) List(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, "invalid query: "+err.Error())
		return
	}
	filter := &repository.MediaFilter{
		MimePrefix: c.Query("type"),
		Search:     c.Query("search"),
	}

	result, err := h.mediaService.List(c.Request.Context(), middleware.TenantIDFromGin(c), filter, query.ToPagination())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.SuccessWithPage(c, result.Items, dto.NewPageMeta(result.Page, result.PageSize, result.Total))
}

// Update 更新媒体元数据
// PUT /api/admin/media/:id
func (h *MediaHandler) Update(c *gin.Context) {
	var req dto.MediaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	media, err := h.mediaService.Update(c.Request.Context(),
		middleware.TenantIDFromGin(c), c.Param("id"), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, media)
}

// Delete 删除媒体（对象与记录）
// DELETE /api/admin/media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.mediaService.Delete(c.Request.Context(), middleware.TenantIDFromGin(c), c.Param("id")); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.NoContent(c)
}

// Presign 生成限时下载链接
// GET /api/admin/media/:id/presign
func (h *MediaHandler) Presign(c *gin.Context) {
	url, err := h.mediaService.PresignDownload(c.Request.Context(), middleware.TenantIDFromGin(c), c.Param("id"))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{"url": url})
}
