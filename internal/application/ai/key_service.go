// Package ai 提供 AI 代理应用服务
package ai

import (
	"context"
	"time"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/pkg/crypto"
	"inkwell-cms-api/pkg/errors"
	"inkwell-cms-api/pkg/logger"
)

// KeyService 租户托管 API Key 应用服务。
// 明文 Key 只在保存与解析两个瞬间出现在内存中，落库一律密文。
type KeyService struct {
	keyRepo repository.APIKeyRepository
	cipher  *crypto.FieldCipher
}

// NewKeyService 创建 Key 服务
func NewKeyService(keyRepo repository.APIKeyRepository, cipher *crypto.FieldCipher) *KeyService {
	return &KeyService{keyRepo: keyRepo, cipher: cipher}
}

// SaveKeyInput 保存 Key 参数
type SaveKeyInput struct {
	Provider string
	APIKey   string
	Label    string
}

// Save 加密保存租户 Key，同租户同 provider 覆盖写
func (s *KeyService) Save(ctx context.Context, tenantID string, input *SaveKeyInput) (*entity.APIKey, error) {
	if !entity.ValidProvider(input.Provider) {
		return nil, errors.New(errors.CodeInvalidParam, "unknown provider")
	}
	if input.APIKey == "" {
		return nil, errors.New(errors.CodeInvalidParam, "api key is required")
	}

	ciphertext, err := s.cipher.Encrypt(input.APIKey)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternalError, "failed to encrypt api key")
	}

	key := entity.NewAPIKey(tenantID, entity.AIProvider(input.Provider),
		ciphertext, crypto.Fingerprint(input.APIKey), input.Label)
	if err := s.keyRepo.Upsert(ctx, key); err != nil {
		return nil, err
	}

	logger.Info(ctx, "api key saved", "tenant_id", tenantID, "provider", input.Provider)
	return key, nil
}

// List 列出租户 Key，只回指纹摘要，不回密文
func (s *KeyService) List(ctx context.Context, tenantID string) ([]*entity.APIKey, error) {
	return s.keyRepo.ListByTenant(ctx, tenantID)
}

// Delete 删除某 provider 的托管 Key
func (s *KeyService) Delete(ctx context.Context, tenantID, provider string) error {
	if !entity.ValidProvider(provider) {
		return errors.New(errors.CodeInvalidParam, "unknown provider")
	}
	key, err := s.keyRepo.GetByProvider(ctx, tenantID, entity.AIProvider(provider))
	if err != nil {
		return err
	}
	if key == nil {
		return errors.ErrKeyNotFound
	}
	return s.keyRepo.Delete(ctx, tenantID, key.ID)
}

// ResolveKey 解出某 provider 的明文 Key。
// 无托管 Key 返回空串（调用方回退到平台 Key）；解密失败视为配置损坏，直接报错。
func (s *KeyService) ResolveKey(ctx context.Context, tenantID, provider string) (string, error) {
	key, err := s.keyRepo.GetByProvider(ctx, tenantID, entity.AIProvider(provider))
	if err != nil {
		return "", err
	}
	if key == nil || !key.IsActive {
		return "", nil
	}

	plaintext, err := s.cipher.Decrypt(key.EncryptedKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternalError, "failed to decrypt stored api key")
	}

	now := time.Now()
	if err := s.keyRepo.TouchLastUsed(ctx, key.ID, now); err != nil {
		logger.Warn(ctx, "failed to touch api key last_used_at", "key_id", key.ID, "error", err)
	}
	return plaintext, nil
}
