package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/pkg/errors"
)

// fakeTenantRepo 只实现配额检查需要的方法
type fakeTenantRepo struct {
	repository.TenantRepository

	tenant *entity.Tenant
}

func (f *fakeTenantRepo) GetByID(_ context.Context, _ string) (*entity.Tenant, error) {
	return f.tenant, nil
}

// fakeUsageRepo 内存版用量仓储
type fakeUsageRepo struct {
	repository.AIUsageRepository

	events []*entity.AIUsageEvent
	used   int64
	since  time.Time
}

func (f *fakeUsageRepo) Create(_ context.Context, event *entity.AIUsageEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeUsageRepo) CreateBatch(_ context.Context, events []*entity.AIUsageEvent) error {
	f.events = append(f.events, events...)
	return nil
}

func (f *fakeUsageRepo) TokensUsedSince(_ context.Context, _ string, since time.Time) (int64, error) {
	f.since = since
	return f.used, nil
}

func (f *fakeUsageRepo) Summarize(_ context.Context, _ string, _, _ time.Time) ([]*repository.UsageSummaryRow, error) {
	return nil, nil
}

func tenantWithQuota(maxTokensPerDay int64) *entity.Tenant {
	tenant := entity.NewTenant("demo", "Demo")
	tenant.ID = "tenant-1"
	tenant.Quota.MaxTokensPerDay = maxTokensPerDay
	return tenant
}

func TestQuotaCheckerCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown tenant", func(t *testing.T) {
		q := NewQuotaChecker(&fakeTenantRepo{}, &fakeUsageRepo{})
		err := q.Check(ctx, "tenant-1")
		assert.Equal(t, errors.ErrTenantNotFound, err)
	})

	t.Run("no quota configured", func(t *testing.T) {
		tenant := tenantWithQuota(0)
		tenant.Quota = nil
		q := NewQuotaChecker(&fakeTenantRepo{tenant: tenant}, &fakeUsageRepo{used: 1 << 40})
		assert.NoError(t, q.Check(ctx, "tenant-1"))
	})

	t.Run("zero limit means unlimited", func(t *testing.T) {
		q := NewQuotaChecker(&fakeTenantRepo{tenant: tenantWithQuota(0)}, &fakeUsageRepo{used: 1 << 40})
		assert.NoError(t, q.Check(ctx, "tenant-1"))
	})

	t.Run("under limit", func(t *testing.T) {
		usage := &fakeUsageRepo{used: 99}
		q := NewQuotaChecker(&fakeTenantRepo{tenant: tenantWithQuota(100)}, usage)
		require.NoError(t, q.Check(ctx, "tenant-1"))

		// 窗口必须从 UTC 当日零点起算
		assert.Equal(t, time.UTC, usage.since.Location())
		assert.Zero(t, usage.since.Hour())
		assert.Zero(t, usage.since.Minute())
	})

	t.Run("at limit", func(t *testing.T) {
		q := NewQuotaChecker(&fakeTenantRepo{tenant: tenantWithQuota(100)}, &fakeUsageRepo{used: 100})
		assert.Equal(t, errors.ErrQuotaExceeded, q.Check(ctx, "tenant-1"))
	})
}
