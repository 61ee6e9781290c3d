// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/infrastructure/messaging"
	"inkwell-cms-api/pkg/logger"
)

// Audit 管理端写操作审计中间件。
// 写请求（POST/PUT/PATCH/DELETE）完成后往 Redis Stream 发一条审计消息，
// 发布失败只告警，审计不阻断业务。
func Audit(producer *messaging.Producer) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		method := c.Request.Method

		logger.Info(c.Request.Context(), "api request",
			"method", method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", duration.Milliseconds(),
			"ip", c.ClientIP(),
			"tenant_id", c.GetString(CtxTenantID),
			"user_id", c.GetString(CtxUserID),
			"request_id", c.GetString("request_id"),
		)

		if producer == nil || method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			return
		}

		msg := &messaging.AuditLogMessage{
			RequestID: c.GetString("request_id"),
			TenantID:  c.GetString(CtxTenantID),
			UserID:    c.GetString(CtxUserID),
			Action:    method,
			Resource:  c.FullPath(),
			Method:    method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			ClientIP:  c.ClientIP(),
			At:        time.Now(),
		}
		if _, err := producer.PublishAuditLog(c.Request.Context(), msg); err != nil {
			logger.Warn(c.Request.Context(), "failed to publish audit log", "error", err)
		}
	}
}
