package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell-cms-api/internal/domain/entity"
	"inkwell-cms-api/internal/domain/repository"
	"inkwell-cms-api/pkg/crypto"
	"inkwell-cms-api/pkg/errors"
)

// fakeKeyRepo 内存版密钥仓储
type fakeKeyRepo struct {
	repository.APIKeyRepository

	keys      map[entity.AIProvider]*entity.APIKey
	deletedID string
	touchedID string
}

func newFakeKeyRepo() *fakeKeyRepo {
	return &fakeKeyRepo{keys: make(map[entity.AIProvider]*entity.APIKey)}
}

func (f *fakeKeyRepo) Upsert(_ context.Context, key *entity.APIKey) error {
	if key.ID == "" {
		key.ID = "key-" + string(key.Provider)
	}
	f.keys[key.Provider] = key
	return nil
}

func (f *fakeKeyRepo) GetByProvider(_ context.Context, _ string, provider entity.AIProvider) (*entity.APIKey, error) {
	return f.keys[provider], nil
}

func (f *fakeKeyRepo) ListByTenant(_ context.Context, _ string) ([]*entity.APIKey, error) {
	out := make([]*entity.APIKey, 0, len(f.keys))
	for _, k := range f.keys {
		out = append(out, k)
	}
	return out, nil
}

func (f *fakeKeyRepo) Delete(_ context.Context, _ string, id string) error {
	f.deletedID = id
	for p, k := range f.keys {
		if k.ID == id {
			delete(f.keys, p)
		}
	}
	return nil
}

func (f *fakeKeyRepo) TouchLastUsed(_ context.Context, id string, _ time.Time) error {
	f.touchedID = id
	return nil
}

func newTestKeyService(t *testing.T) (*KeyService, *fakeKeyRepo, *crypto.FieldCipher) {
	t.Helper()
	cipher, err := crypto.NewFieldCipher("test-secret", "test-salt")
	require.NoError(t, err)
	repo := newFakeKeyRepo()
	return NewKeyService(repo, cipher), repo, cipher
}

func TestKeyServiceSave(t *testing.T) {
	ctx := context.Background()

	t.Run("stores ciphertext and fingerprint", func(t *testing.T) {
		svc, repo, cipher := newTestKeyService(t)

		key, err := svc.Save(ctx, "tenant-1", &SaveKeyInput{
			Provider: "openai",
			APIKey:   "sk-secret",
			Label:    "prod",
		})
		require.NoError(t, err)

		stored := repo.keys[entity.ProviderOpenAI]
		require.NotNil(t, stored)
		assert.NotEqual(t, "sk-secret", stored.EncryptedKey)
		assert.Equal(t, crypto.Fingerprint("sk-secret"), stored.Fingerprint)
		assert.Equal(t, "prod", stored.Label)
		assert.True(t, key.IsActive)

		plain, err := cipher.Decrypt(stored.EncryptedKey)
		require.NoError(t, err)
		assert.Equal(t, "sk-secret", plain)
	})

	t.Run("unknown provider", func(t *testing.T) {
		svc, _, _ := newTestKeyService(t)
		_, err := svc.Save(ctx, "tenant-1", &SaveKeyInput{Provider: "gemini", APIKey: "x"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})

	t.Run("empty key", func(t *testing.T) {
		svc, _, _ := newTestKeyService(t)
		_, err := svc.Save(ctx, "tenant-1", &SaveKeyInput{Provider: "openai"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParam, errors.AsAppError(err).Code)
	})
}

func TestKeyServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes by resolved id", func(t *testing.T) {
		svc, repo, _ := newTestKeyService(t)
		_, err := svc.Save(ctx, "tenant-1", &SaveKeyInput{Provider: "openai", APIKey: "sk-secret"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, "tenant-1", "openai"))
		assert.Equal(t, "key-openai", repo.deletedID)
		assert.Empty(t, repo.keys)
	})

	t.Run("missing key", func(t *testing.T) {
		svc, _, _ := newTestKeyService(t)
		err := svc.Delete(ctx, "tenant-1", "openai")
		assert.Equal(t, errors.ErrKeyNotFound, err)
	})
}

func TestKeyServiceResolveKey(t *testing.T) {
	ctx := context.Background()

	t.Run("no stored key falls back to empty", func(t *testing.T) {
		svc, _, _ := newTestKeyService(t)
		plain, err := svc.ResolveKey(ctx, "tenant-1", "openai")
		require.NoError(t, err)
		assert.Empty(t, plain)
	})

	t.Run("inactive key treated as absent", func(t *testing.T) {
		svc, repo, _ := newTestKeyService(t)
		_, err := svc.Save(ctx, "tenant-1", &SaveKeyInput{Provider: "openai", APIKey: "sk-secret"})
		require.NoError(t, err)
		repo.keys[entity.ProviderOpenAI].IsActive = false

		plain, err := svc.ResolveKey(ctx, "tenant-1", "openai")
		require.NoError(t, err)
		assert.Empty(t, plain)
	})

	t.Run("decrypts and touches last used", func(t *testing.T) {
		svc, repo, _ := newTestKeyService(t)
		_, err := svc.Save(ctx, "tenant-1", &SaveKeyInput{Provider: "openai", APIKey: "sk-secret"})
		require.NoError(t, err)

		plain, err := svc.ResolveKey(ctx, "tenant-1", "openai")
		require.NoError(t, err)
		assert.Equal(t, "sk-secret", plain)
		assert.Equal(t, "key-openai", repo.touchedID)
	})

	t.Run("corrupted ciphertext", func(t *testing.T) {
		svc, repo, _ := newTestKeyService(t)
		_, err := svc.Save(ctx, "tenant-1", &SaveKeyInput{Provider: "openai", APIKey: "sk-secret"})
		require.NoError(t, err)
		repo.keys[entity.ProviderOpenAI].EncryptedKey = "not:a:ciphertext"

		_, err = svc.ResolveKey(ctx, "tenant-1", "openai")
		require.Error(t, err)
		assert.Equal(t, errors.CodeInternalError, errors.AsAppError(err).Code)
	})
}
