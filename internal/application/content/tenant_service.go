// Package content 提供内容管理应用服务
package content

import (
	"context"
	"encoding/json"
	"time"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/internal/infrastructure/persistence/redis"
	"inkwell-cms-api/pkg/errors"
	"inkwell-cms-api/pkg/logger"
)

// TenantService 租户应用服务
type TenantService struct {
	tenantRepo repository.TenantRepository
	cache      *redis.Cache
	cacheTTL   time.Duration
}

// NewTenantService 创建租户服务
func NewTenantService(tenantRepo repository.TenantRepository, cache *redis.Cache, cacheTTL time.Duration) *TenantService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &TenantService{
		tenantRepo: tenantRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Resolve 根据子域名解析租户。每个公共请求都会经过这里，结果缓存。
func (s *TenantService) Resolve(ctx context.Context, subdomain string) (*entity.Tenant, error) {
	if subdomain == "" {
		return nil, errors.ErrTenantNotFound
	}

	data, err := s.cache.GetOrLoadSafe(ctx, "tenant", redis.TenantKey(subdomain), s.cacheTTL, func() (interface{}, error) {
		tenant, err := s.tenantRepo.GetBySubdomain(ctx, subdomain)
		if err != nil {
			return nil, err
		}
		if tenant == nil || !tenant.IsActive() {
			return nil, errors.ErrTenantNotFound
		}
		return tenant, nil
	})
	if err != nil {
		return nil, err
	}

	var tenant entity.Tenant
	if err := json.Unmarshal(data, &tenant); err != nil {
		return nil, errors.Wrap(err, errors.CodeCacheError, "failed to decode cached tenant")
	}
	if !tenant.IsActive() {
		return nil, errors.ErrTenantNotFound
	}
	return &tenant, nil
}

// Get 按 ID 获取租户
func (s *TenantService) Get(ctx context.Context, id string) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, errors.ErrTenantNotFound
	}
	return tenant, nil
}

// UpdateInput 租户更新参数
type TenantUpdateInput struct {
	Name        string
	Description string
	Theme       *entity.TenantTheme
	Contact     *entity.TenantContact
}

// Update 更新租户站点设置
func (s *TenantService) Update(ctx context.Context, id string, input *TenantUpdateInput) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, errors.ErrTenantNotFound
	}

	if input.Name != "" {
		tenant.Name = input.Name
	}
	tenant.Description = input.Description
	if input.Theme != nil {
		tenant.Theme = input.Theme
	}
	if input.Contact != nil {
		tenant.Contact = input.Contact
	}
	tenant.UpdatedAt = time.Now()

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateTenant(ctx, tenant.Subdomain); err != nil {
		logger.Warn(ctx, "failed to invalidate tenant cache", "subdomain", tenant.Subdomain, "error", err)
	}
	return tenant, nil
}
