// Package auth 提供管理端认证应用服务
package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/pkg/errors"
	"inkwell-cms-api/pkg/logger"
	"inkwell-cms-api/pkg/utils"
)

// Service 认证服务
type Service struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	jwtManager *utils.JWTManager
	tokenTTL   time.Duration
	// adminPassword 站点级兜底口令，没有建用户的小站点用它登录
	adminPassword string
}

// NewService 创建认证服务
func NewService(
	userRepo repository.UserRepository,
	tenantRepo repository.TenantRepository,
	jwtManager *utils.JWTManager,
	tokenTTL time.Duration,
	adminPassword string,
) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 168 * time.Hour
	}
	return &Service{
		userRepo:      userRepo,
		tenantRepo:    tenantRepo,
		jwtManager:    jwtManager,
		tokenTTL:      tokenTTL,
		adminPassword: adminPassword,
	}
}

// LoginResult 登录结果
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
	Tenant    *entity.Tenant
}

// Login 管理端登录。
// 优先匹配租户用户；邮箱为空时退化为站点管理口令登录。
func (s *Service) Login(ctx context.Context, tenantID, email, password string) (*LoginResult, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil || !tenant.IsActive() {
		return nil, errors.ErrTenantNotFound
	}

	expiresAt := time.Now().Add(s.tokenTTL)

	if email == "" {
		if s.adminPassword == "" || password != s.adminPassword {
			return nil, errors.ErrBadCredentials
		}
		token, err := s.jwtManager.GenerateToken(tenant.ID, "", string(entity.RoleAdmin), tenant.Subdomain, s.tokenTTL)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternalError, "failed to sign token")
		}
		logger.Info(ctx, "admin password login", "tenant_id", tenant.ID)
		return &LoginResult{Token: token, ExpiresAt: expiresAt, Tenant: tenant}, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, tenantID, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrBadCredentials
	}

	token, err := s.jwtManager.GenerateToken(tenant.ID, user.ID, string(user.Role), tenant.Subdomain, s.tokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternalError, "failed to sign token")
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user, Tenant: tenant}, nil
}

// CurrentUser 根据 Token 声明取当前用户，口令登录时 user 为空
func (s *Service) CurrentUser(ctx context.Context, claims *utils.Claims) (*entity.User, *entity.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, claims.TenantID)
	if err != nil {
		return nil, nil, err
	}
	if tenant == nil {
		return nil, nil, errors.ErrTenantNotFound
	}

	if claims.UserID == "" {
		return nil, tenant, nil
	}
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	return user, tenant, nil
}

// HashPassword 生成口令散列（bootstrap 建号用）
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
