// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"inkwell-cms-api/internal/domain/entity"
)

// TenantRepository 租户仓储接口
type TenantRepository interface {
	// Create 创建租户
	Create(ctx context.Context, tenant *entity.Tenant) error

	// GetByID 根据 ID 获取租户
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)

	// GetBySubdomain 根据子域名获取租户
	GetBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error)

	// Update 更新租户
	Update(ctx context.Context, tenant *entity.Tenant) error

	// UpdateStatus 更新租户状态
	UpdateStatus(ctx context.Context, id string, status entity.TenantStatus) error

	// List 获取租户列表
	List(ctx context.Context, pagination Pagination) (*PagedResult[*entity.Tenant], error)
}
