package handler

import (
	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/application/assist"
	"inkwell-cms-api/internal/interfaces/http/dto"
	"inkwell-cms-api/internal/interfaces/http/middleware"
)

// AssistHandler 写作助手处理器（确定性规则，不走模型）
type AssistHandler struct {
	critic *assist.Critic
	ideas  *assist.IdeaGenerator
}

// NewAssistHandler 创建写作助手处理器
func NewAssistHandler(critic *assist.Critic, ideas *assist.IdeaGenerator) *AssistHandler {
	return &AssistHandler{critic: critic, ideas: ideas}
}

// Critique 内容评审
// POST /api/admin/assist/critique
func (h *AssistHandler) Critique(c *gin.Context) {
	var req dto.CritiqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	suggestions, err := h.critic.Critique(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{"suggestions": suggestions})
}

// Ideas 选题建议
// POST /api/admin/assist/ideas
func (h *AssistHandler) Ideas(c *gin.Context) {
	var req dto.IdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	ideas, err := h.ideas.Ideas(c.Request.Context(), middleware.TenantIDFromGin(c),
		&assist.IdeasInput{Keywords: req.Keywords, Limit: req.Limit})
	if err != nil {
		dto.Fail(c, err)
		return
	}
	dto.Success(c, gin.H{"ideas": ideas})
}
