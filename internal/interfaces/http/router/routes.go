// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"

	"inkwell-cms-api/internal/config"
)

// registerAPIRoutes 注册 /api 下的全部路由。
// 公共端经租户解析中间件，管理端经认证与审计中间件；
// 可选功能组按部署模式裁剪，未启用的路由不注册。
func registerAPIRoutes(api *gin.RouterGroup, cfg *config.Config, h *Handlers, m *Middlewares) {
	// 认证
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.GET("/me", m.Auth, h.Auth.Me)
	}

	// 公共端，按子域/参数解析租户
	public := api.Group("")
	public.Use(m.ResolveTenant)
	{
		public.GET("/site", h.Tenant.GetPublic)
		public.GET("/posts", h.Post.ListPublic)
		public.GET("/posts/:slug", h.Post.GetPublic)
		public.GET("/categories", h.Taxonomy.ListCategories)
		public.GET("/tags", h.Taxonomy.ListTags)

		if cfg.Features.Enabled(config.FeatureClubs) {
			public.GET("/clubs", h.Club.ListPublic)
		}
		if cfg.Features.Enabled(config.FeatureTestimonials) {
			public.GET("/testimonials", h.Testimonial.ListPublic)
		}
	}

	// 管理端，Token 认证 + 写操作审计
	admin := api.Group("/admin")
	admin.Use(m.Auth)
	admin.Use(m.Audit)
	{
		admin.GET("/site", h.Tenant.GetAdmin)
		admin.PUT("/site", h.Tenant.Update)

		posts := admin.Group("/posts")
		{
			posts.GET("", h.Post.ListAdmin)
			posts.POST("", h.Post.Create)
			posts.GET("/:id", h.Post.GetAdmin)
			posts.PUT("/:id", h.Post.Update)
			posts.DELETE("/:id", h.Post.Delete)
		}

		admin.GET("/categories", h.Taxonomy.ListCategories)
		admin.POST("/categories", h.Taxonomy.CreateCategory)
		admin.DELETE("/categories/:id", h.Taxonomy.DeleteCategory)
		admin.GET("/tags", h.Taxonomy.ListTags)
		admin.DELETE("/tags/:id", h.Taxonomy.DeleteTag)

		media := admin.Group("/media")
		{
			media.GET("", h.Media.List)
			media.POST("", h.Media.Upload)
			media.PUT("/:id", h.Media.Update)
			media.DELETE("/:id", h.Media.Delete)
			media.GET("/:id/presign", h.Media.Presign)
		}

		if cfg.Features.Enabled(config.FeatureAIAssistant) {
			ai := admin.Group("/ai")
			{
				ai.POST("/generate", h.AI.Generate)
				ai.POST("/titles", h.AI.Titles)
				ai.POST("/keys", h.AI.SaveKey)
				ai.GET("/keys", h.AI.ListKeys)
				ai.DELETE("/keys/:provider", h.AI.DeleteKey)
				ai.POST("/validate-key", h.AI.ValidateKey)
				ai.GET("/usage", h.AI.Usage)
				ai.POST("/track-usage", h.AI.TrackUsage)
				ai.POST("/track-usage/batch", h.AI.TrackUsageBatch)

				if cfg.Features.Enabled(config.FeatureSocialAdapter) {
					ai.POST("/social", h.AI.Social)
				}
				if cfg.Features.Enabled(config.FeatureImageGeneration) {
					ai.POST("/images", h.AI.Images)
				}
			}

			assist := admin.Group("/assist")
			{
				assist.POST("/critique", h.Assist.Critique)
				assist.POST("/ideas", h.Assist.Ideas)
			}
		}

		if cfg.Features.Enabled(config.FeatureClubs) {
			clubs := admin.Group("/clubs")
			{
				clubs.GET("", h.Club.ListAdmin)
				clubs.POST("", h.Club.Create)
				clubs.PUT("/:id", h.Club.Update)
				clubs.DELETE("/:id", h.Club.Delete)
			}
		}

		if cfg.Features.Enabled(config.FeatureTestimonials) {
			testimonials := admin.Group("/testimonials")
			{
				testimonials.GET("", h.Testimonial.ListAdmin)
				testimonials.POST("", h.Testimonial.Create)
				testimonials.PUT("/:id", h.Testimonial.Update)
				testimonials.DELETE("/:id", h.Testimonial.Delete)
			}
		}
	}
}
