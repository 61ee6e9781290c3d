// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inkwell-cms-api/internal/config"
	"inkwell-cms-api/internal/interfaces/http/handler"
	"inkwell-cms-api/internal/interfaces/http/middleware"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Tenant      *handler.TenantHandler
	Post        *handler.PostHandler
	Taxonomy    *handler.TaxonomyHandler
	Media       *handler.MediaHandler
	AI          *handler.AIHandler
	Assist      *handler.AssistHandler
	Club        *handler.ClubHandler
	Testimonial *handler.TestimonialHandler
}

// Middlewares 路由依赖的请求级中间件
type Middlewares struct {
	ResolveTenant gin.HandlerFunc
	Auth          gin.HandlerFunc
	RateLimit     gin.HandlerFunc
	Audit         gin.HandlerFunc
}

// Router HTTP 路由器
type Router struct {
	engine      *gin.Engine
	cfg         *config.Config
	handlers    *Handlers
	middlewares *Middlewares
}

// New 创建新的路由器
func New(cfg *config.Config, handlers *Handlers, middlewares *Middlewares) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:      engine,
		cfg:         cfg,
		handlers:    handlers,
		middlewares: middlewares,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置全局中间件
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CORS(r.cfg.Security.CORS))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	r.engine.GET("/health", r.handlers.Health.Ready)
	r.engine.GET("/ready", r.handlers.Health.Ready)
	r.engine.GET("/live", r.handlers.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		path := r.cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	api := r.engine.Group("/api")
	api.Use(r.middlewares.RateLimit)
	registerAPIRoutes(api, r.cfg, r.handlers, r.middlewares)
}
