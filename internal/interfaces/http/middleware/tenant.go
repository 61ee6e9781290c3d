// Package middleware 提供 HTTP 中间件
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/pkg/logger"
)

// CtxTenant 已解析租户实体的 Gin Context 键
const CtxTenant = "tenant"

// ResolveTenant 公共端租户解析中间件。
// 依次尝试 ?tenant= 查询参数、X-Tenant 头、Host 的第一级子域。
// 解析失败返回 404，公共端不区分"不存在"与"已停用"。
func ResolveTenant(tenantService *content.TenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subdomain := c.Query("tenant")
		if subdomain == "" {
			subdomain = c.GetHeader("X-Tenant")
		}
		if subdomain == "" {
			subdomain = subdomainFromHost(c.Request.Host)
		}

		tenant, err := tenantService.Resolve(c.Request.Context(), subdomain)
		if err != nil || tenant == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "site not found",
			})
			return
		}

		c.Set(CtxTenant, tenant)
		c.Set(CtxTenantID, tenant.ID)

		ctx := logger.WithContext(c.Request.Context(), logger.TenantIDKey, tenant.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// TenantFromGin 从 Gin Context 取已解析的租户
func TenantFromGin(c *gin.Context) *entity.Tenant {
	if v, ok := c.Get(CtxTenant); ok {
		if tenant, ok := v.(*entity.Tenant); ok {
			return tenant
		}
	}
	return nil
}

// TenantIDFromGin 从 Gin Context 取租户 ID
func TenantIDFromGin(c *gin.Context) string {
	return c.GetString(CtxTenantID)
}

// UserIDFromGin 从 Gin Context 取用户 ID
func UserIDFromGin(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

// subdomainFromHost 取 Host 的第一级子域。
// "blog.example.com" -> "blog"；裸域或 localhost 返回空。
func subdomainFromHost(host string) string {
	if idx := strings.IndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}
	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}
	sub := parts[0]
	if sub == "www" || sub == "api" {
		return ""
	}
	return sub
}

// WithTenantContext 把租户 ID 塞进 request context（测试辅助）
func WithTenantContext(ctx context.Context, tenantID string) context.Context {
	return logger.WithContext(ctx, logger.TenantIDKey, tenantID)
}
