package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/application/ai"
	"inkwell-cms-api/internal/interfaces/http/dto"
	"inkwell-cms-api/internal/interfaces/http/middleware"
)

// AIHandler AI 代理处理器
type AIHandler struct {
	generator  *ai.Generator
	keyService *ai.KeyService
	recorder   *ai.UsageRecorder
}

// NewAIHandler 创建 AI 处理器
func NewAIHandler(generator *ai.Generator, keyService *ai.KeyService, recorder *ai.UsageRecorder) *AIHandler {
	return &AIHandler{generator: generator, keyService: keyService, recorder: recorder}
}

// Generate 生成文章草稿
// POST /api/admin/ai/generate
func (h *AIHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.generator.Generate(c.Request.Context(),
		middleware.TenantIDFromGin(c), middleware.UserIDFromGin(c),
		&ai.GenerateInput{
			Provider:     req.Provider,
			Topic:        req.Topic,
			Tone:         req.Tone,
			Length:       req.Length,
			Instructions: req.Instructions,
		})
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, result)
}

// Titles 生成候选标题
// POST /api/admin/ai/titles
func (h *AIHandler) Titles(c *gin.Context) {
	var req dto.TitlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	titles, usage, err := h.generator.Titles(c.Request.Context(),
		middleware.TenantIDFromGin(c), middleware.UserIDFromGin(c),
		&ai.TitlesInput{Provider: req.Provider, Topic: req.Topic, Count: req.Count})
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{"titles": titles, "usage": usage})
}

// Social 生成社交平台文案
// POST /api/admin/ai/social
func (h *AIHandler) Social(c *gin.Context) {
	var req dto.SocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	posts, usage, err := h.generator.Social(c.Request.Context(),
		middleware.TenantIDFromGin(c), middleware.UserIDFromGin(c),
		&ai.SocialInput{Provider: req.Provider, Content: req.Content, Platforms: req.Platforms})
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{"posts": posts, "usage": usage})
}

// Images 生成配图
// POST /api/admin/ai/images
func (h *AIHandler) Images(c *gin.Context) {
	var req dto.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	images, err := h.generator.GenerateImage(c.Request.Context(),
		middleware.TenantIDFromGin(c), middleware.UserIDFromGin(c),
		&ai.ImageInput{Provider: req.Provider, Prompt: req.Prompt, Size: req.Size, Count: req.Count})
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{"images": images})
}

// SaveKey 保存托管 Key
// POST /api/admin/ai/keys
func (h *AIHandler) SaveKey(c *gin.Context) {
	var req dto.SaveKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	key, err := h.keyService.Save(c.Request.Context(), middleware.TenantIDFromGin(c),
		&ai.SaveKeyInput{Provider: req.Provider, APIKey: req.APIKey, Label: req.Label})
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Created(c, dto.NewKeyView(key))
}

// ListKeys 列出托管 Key（只含指纹摘要）
// GET /api/admin/ai/keys
func (h *AIHandler) ListKeys(c *gin.Context) {
	keys, err := h.keyService.List(c.Request.Context(), middleware.TenantIDFromGin(c))
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, dto.NewKeyViews(keys))
}

// DeleteKey 删除某 provider 的托管 Key
// DELETE /api/admin/ai/keys/:provider
func (h *AIHandler) DeleteKey(c *gin.Context) {
	if err := h.keyService.Delete(c.Request.Context(), middleware.TenantIDFromGin(c), c.Param("provider")); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.NoContent(c)
}

// ValidateKey 验证 Key 是否可用
// POST /api/admin/ai/validate-key
func (h *AIHandler) ValidateKey(c *gin.Context) {
	var req dto.ValidateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.generator.ValidateKey(c.Request.Context(), middleware.TenantIDFromGin(c), req.Provider, req.APIKey); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{"valid": true})
}

// Usage 用量汇总
// GET /api/admin/ai/usage
func (h *AIHandler) Usage(c *gin.Context) {
	var query dto.UsageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, "invalid query: "+err.Error())
		return
	}

	var from, to time.Time
	var err error
	if query.From != "" {
		if from, err = time.Parse(time.RFC3339, query.From); err != nil {
			dto.BadRequest(c, "invalid from timestamp")
			return
		}
	}
	if query.To != "" {
		if to, err = time.Parse(time.RFC3339, query.To); err != nil {
			dto.BadRequest(c, "invalid to timestamp")
			return
		}
	}

	rows, err := h.recorder.Summary(c.Request.Context(), middleware.TenantIDFromGin(c), from, to)
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, rows)
}

// TrackUsage 客户端单条用量上报
// POST /api/admin/ai/track-usage
func (h *AIHandler) TrackUsage(c *gin.Context) {
	var req dto.TrackUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.recorder.Track(c.Request.Context(),
		middleware.TenantIDFromGin(c), middleware.UserIDFromGin(c), req.ToInput()); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{"recorded": true})
}

// TrackUsageBatch 客户端批量用量上报
// POST /api/admin/ai/track-usage/batch
func (h *AIHandler) TrackUsageBatch(c *gin.Context) {
	var req dto.TrackUsageBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	inputs := make([]*ai.TrackInput, 0, len(req.Events))
	for _, event := range req.Events {
		inputs = append(inputs, event.ToInput())
	}
	if err := h.recorder.TrackBatch(c.Request.Context(),
		middleware.TenantIDFromGin(c), middleware.UserIDFromGin(c), inputs); err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{"recorded": len(inputs)})
}
