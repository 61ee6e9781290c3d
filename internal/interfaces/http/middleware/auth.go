// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"inkwell-cms-api/pkg/logger"
	"inkwell-cms-api/pkg/utils"
)

// Gin Context 键
const (
	CtxTenantID = "tenant_id"
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxClaims   = "claims"
)

// Auth 管理端认证中间件，校验 Bearer Token 并注入声明
func Auth(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization format")
			return
		}

		claims, err := jwtManager.ParseToken(parts[1])
		if err != nil {
			// 过期与篡改对客户端不做区分
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(CtxTenantID, claims.TenantID)
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxClaims, claims)

		ctx := logger.WithContext(c.Request.Context(), logger.TenantIDKey, claims.TenantID)
		if claims.UserID != "" {
			ctx = logger.WithContext(ctx, logger.UserIDKey, claims.UserID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin 仅管理员角色可通过
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "admin role required",
			})
			return
		}
		c.Next()
	}
}

// ClaimsFromGin 从 Gin Context 取 Token 声明
func ClaimsFromGin(c *gin.Context) *utils.Claims {
	if v, ok := c.Get(CtxClaims); ok {
		if claims, ok := v.(*utils.Claims); ok {
			return claims
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": msg,
	})
}
