// Package wire 提供依赖装配
package wire

import (
	"context"
	"fmt"

	"inkwell-cms-api/internal/application/ai"
	"inkwell-cms-api/internal/application/assist"
	"inkwell-cms-api/internal/application/auth"
	"inkwell-cms-api/internal/application/content"
	"inkwell-cms-api/internal/application/site"
	"inkwell-cms-api/internal/config"
	"inkwell-cms-api/internal/infrastructure/llm"
	"inkwell-cms-api/internal/infrastructure/messaging"
	"inkwell-cms-api/internal/infrastructure/persistence/postgres"
	"inkwell-cms-api/internal/infrastructure/persistence/redis"
	"inkwell-cms-api/internal/infrastructure/storage/s3"
	"inkwell-cms-api/internal/interfaces/http/handler"
	"inkwell-cms-api/internal/interfaces/http/middleware"
	"inkwell-cms-api/internal/interfaces/http/router"
	"inkwell-cms-api/pkg/crypto"
	"inkwell-cms-api/pkg/logger"
	"inkwell-cms-api/pkg/utils"
)

// DataLayer 数据层依赖容器
type DataLayer struct {
	// PostgreSQL
	PgClient        *postgres.Client
	TxManager       *postgres.TxManager
	TenantRepo      *postgres.TenantRepository
	UserRepo        *postgres.UserRepository
	PostRepo        *postgres.PostRepository
	CategoryRepo    *postgres.CategoryRepository
	TagRepo         *postgres.TagRepository
	MediaRepo       *postgres.MediaRepository
	APIKeyRepo      *postgres.APIKeyRepository
	AIUsageRepo     *postgres.AIUsageRepository
	ClubRepo        *postgres.ClubRepository
	TestimonialRepo *postgres.TestimonialRepository

	// Redis
	RedisClient *redis.Client
	Cache       *redis.Cache
	RateLimiter *redis.RateLimiter

	// Messaging
	Producer *messaging.Producer

	// Storage
	ObjectStore *s3.Client
}

// InitializeDataLayer 初始化数据层，返回清理函数
func InitializeDataLayer(ctx context.Context, cfg *config.Config) (*DataLayer, func(), error) {
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	redisClient, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		pgClient.Close()
		return nil, nil, fmt.Errorf("failed to init redis: %w", err)
	}

	objectStore, err := s3.NewClient(&cfg.Storage.S3)
	if err != nil {
		redisClient.Close()
		pgClient.Close()
		return nil, nil, fmt.Errorf("failed to init object store: %w", err)
	}

	dl := &DataLayer{
		PgClient:        pgClient,
		TxManager:       postgres.NewTxManager(pgClient),
		TenantRepo:      postgres.NewTenantRepository(pgClient),
		UserRepo:        postgres.NewUserRepository(pgClient),
		PostRepo:        postgres.NewPostRepository(pgClient),
		CategoryRepo:    postgres.NewCategoryRepository(pgClient),
		TagRepo:         postgres.NewTagRepository(pgClient),
		MediaRepo:       postgres.NewMediaRepository(pgClient),
		APIKeyRepo:      postgres.NewAPIKeyRepository(pgClient),
		AIUsageRepo:     postgres.NewAIUsageRepository(pgClient),
		ClubRepo:        postgres.NewClubRepository(pgClient),
		TestimonialRepo: postgres.NewTestimonialRepository(pgClient),
		RedisClient:     redisClient,
		Cache:           redis.NewCache(redisClient),
		RateLimiter:     redis.NewRateLimiter(redisClient),
		Producer:        messaging.NewProducer(redisClient.Redis(), int64(cfg.Messaging.RedisStream.MaxLen)),
		ObjectStore:     objectStore,
	}

	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn(ctx, "failed to close redis client", "error", err)
		}
		if err := pgClient.Close(); err != nil {
			logger.Warn(ctx, "failed to close postgres client", "error", err)
		}
	}
	return dl, cleanup, nil
}

// InitializeApp 装配整个应用，返回路由器与清理函数
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	dl, cleanup, err := InitializeDataLayer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	cipher, err := crypto.NewFieldCipher(cfg.Security.Encryption.Secret, cfg.Security.Encryption.Salt)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to init field cipher: %w", err)
	}

	jwtManager := utils.NewJWTManager(cfg.Security.JWT.Secret, cfg.Security.JWT.Issuer)

	// 内容域
	renderer := content.NewMarkdownRenderer()
	tenantService := content.NewTenantService(dl.TenantRepo, dl.Cache, cfg.Cache.PublicTTL)
	postService := content.NewPostService(dl.PostRepo, dl.CategoryRepo, dl.TagRepo,
		dl.TxManager, dl.Cache, renderer, cfg.Cache.PublicTTL)
	taxonomyService := content.NewTaxonomyService(dl.CategoryRepo, dl.TagRepo)
	mediaService := content.NewMediaService(dl.MediaRepo, dl.ObjectStore, cfg.Media.MaxUploadBytes)

	// 站点固定板块
	clubService := site.NewClubService(dl.ClubRepo)
	testimonialService := site.NewTestimonialService(dl.TestimonialRepo)

	// 认证
	authService := auth.NewService(dl.UserRepo, dl.TenantRepo, jwtManager,
		cfg.Security.JWT.Expiration, cfg.Security.AdminPassword)

	// AI 域
	modelFactory := llm.NewModelFactory(cfg)
	imageClient := llm.NewImageClient(cfg)
	keyService := ai.NewKeyService(dl.APIKeyRepo, cipher)
	quotaChecker := ai.NewQuotaChecker(dl.TenantRepo, dl.AIUsageRepo)
	usageRecorder := ai.NewUsageRecorder(dl.AIUsageRepo)
	generator := ai.NewGenerator(modelFactory, keyService, quotaChecker, usageRecorder, imageClient)

	// 写作助手
	critic := assist.NewCritic()
	ideaGenerator := assist.NewIdeaGenerator(dl.PostRepo)

	handlers := &router.Handlers{
		Health:      handler.NewHealthHandler(dl.PgClient, dl.RedisClient),
		Auth:        handler.NewAuthHandler(authService, tenantService),
		Tenant:      handler.NewTenantHandler(tenantService),
		Post:        handler.NewPostHandler(postService),
		Taxonomy:    handler.NewTaxonomyHandler(taxonomyService),
		Media:       handler.NewMediaHandler(mediaService),
		AI:          handler.NewAIHandler(generator, keyService, usageRecorder),
		Assist:      handler.NewAssistHandler(critic, ideaGenerator),
		Club:        handler.NewClubHandler(clubService),
		Testimonial: handler.NewTestimonialHandler(testimonialService),
	}

	middlewares := &router.Middlewares{
		ResolveTenant: middleware.ResolveTenant(tenantService),
		Auth:          middleware.Auth(jwtManager),
		RateLimit:     middleware.RateLimit(cfg.Security.RateLimit, dl.RateLimiter),
		Audit:         middleware.Audit(dl.Producer),
	}

	return router.New(cfg, handlers, middlewares), cleanup, nil
}
